// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package clearchats

import (
	"log/slog"
	"net/http"

	"github.com/0x16e8bea/LocationInquirer/internal/httpapi"
	"github.com/0x16e8bea/LocationInquirer/internal/store"
)

type response struct {
	Cleared bool `json:"cleared"`
}

// NewHandler returns a Handler.
func NewHandler(chats store.Store) *Handler {
	return &Handler{
		chats: chats,
	}
}

// Handler removes all stored chats and resets the id sequence.
type Handler struct {
	chats store.Store
}

func (h *Handler) ClearChats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.chats.ClearChats(ctx); err != nil {
		slog.ErrorContext(ctx, "clearchats: clearing chats", "error", err)
		httpapi.WriteError(ctx, w, http.StatusInternalServerError, "failed to clear chats")
		return
	}

	httpapi.WriteJSON(ctx, w, http.StatusOK, response{Cleared: true})
}
