// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package listpersonas

import (
	"net/http"

	"github.com/0x16e8bea/LocationInquirer/internal/config"
	"github.com/0x16e8bea/LocationInquirer/internal/httpapi"
)

// NewHandler returns a Handler.
func NewHandler(personas []config.Persona) *Handler {
	return &Handler{
		personas: personas,
	}
}

// Handler lists the personas the client can select a system prompt from.
type Handler struct {
	personas []config.Persona
}

func (h *Handler) ListPersonas(w http.ResponseWriter, r *http.Request) {
	personas := h.personas
	if personas == nil {
		personas = []config.Persona{}
	}
	httpapi.WriteJSON(r.Context(), w, http.StatusOK, personas)
}
