// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package postchat

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/0x16e8bea/LocationInquirer/internal/chatdb"
	"github.com/0x16e8bea/LocationInquirer/internal/httpapi"
	"github.com/0x16e8bea/LocationInquirer/internal/llm"
	"github.com/0x16e8bea/LocationInquirer/internal/store"
)

type locationInput struct {
	// Lat and Lng are pointers to distinguish absent from zero.
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	Address string   `json:"address"`
}

type request struct {
	Message      string         `json:"message"`
	Location     *locationInput `json:"location"`
	SystemPrompt string         `json:"systemPrompt"`
	Places       []chatdb.Place `json:"places"`
}

// NewHandler returns a Handler.
func NewHandler(chats store.Store, generator llm.Generator) *Handler {
	return &Handler{
		chats:     chats,
		generator: generator,
	}
}

// Handler answers a chat message about a map location and persists the
// exchange.
type Handler struct {
	chats     store.Store
	generator llm.Generator
}

func (h *Handler) PostChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.WriteError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" || req.Location == nil || req.Location.Lat == nil || req.Location.Lng == nil {
		httpapi.WriteError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	location := chatdb.Location{
		Lat:     *req.Location.Lat,
		Lng:     *req.Location.Lng,
		Address: req.Location.Address,
	}
	systemPrompt := req.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = llm.DefaultPersonaPrompt
	}

	res, err := h.generator.GenerateLocationResponse(ctx, llm.Request{
		Message:      req.Message,
		Location:     location,
		Places:       req.Places,
		SystemPrompt: systemPrompt,
	})
	if err != nil {
		slog.ErrorContext(ctx, "postchat: generating location response", "error", err)
		httpapi.WriteError(ctx, w, http.StatusInternalServerError, err.Error())
		return
	}

	rec, err := h.chats.CreateChat(ctx, chatdb.InsertChat{
		Message:      req.Message,
		Response:     res.Content,
		SystemPrompt: systemPrompt,
		Location:     location,
	})
	if err != nil {
		slog.ErrorContext(ctx, "postchat: storing chat", "error", err)
		httpapi.WriteError(ctx, w, http.StatusInternalServerError, "failed to store chat")
		return
	}

	httpapi.WriteJSON(ctx, w, http.StatusOK, rec)
}
