// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package listchats

import (
	"log/slog"
	"net/http"

	"github.com/0x16e8bea/LocationInquirer/internal/chatdb"
	"github.com/0x16e8bea/LocationInquirer/internal/httpapi"
	"github.com/0x16e8bea/LocationInquirer/internal/store"
)

// NewHandler returns a Handler.
func NewHandler(chats store.Store) *Handler {
	return &Handler{
		chats: chats,
	}
}

// Handler lists all stored chats.
type Handler struct {
	chats store.Store
}

func (h *Handler) ListChats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	chats, err := h.chats.Chats(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "listchats: listing chats", "error", err)
		httpapi.WriteError(ctx, w, http.StatusInternalServerError, "failed to list chats")
		return
	}
	if chats == nil {
		chats = []chatdb.ChatRecord{}
	}

	httpapi.WriteJSON(ctx, w, http.StatusOK, chats)
}
