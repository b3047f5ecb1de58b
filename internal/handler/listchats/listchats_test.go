// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package listchats

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/0x16e8bea/LocationInquirer/internal/chatdb"
	"github.com/0x16e8bea/LocationInquirer/internal/store"
)

func TestListChats(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	h := NewHandler(s)

	w := httptest.NewRecorder()
	h.ListChats(w, httptest.NewRequest(http.MethodGet, "/api/chats", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Fatalf("empty store should render []: %q", got)
	}

	for _, msg := range []string{"first", "second"} {
		if _, err := s.CreateChat(ctx, chatdb.InsertChat{Message: msg, Response: `{"description":"hi"}`}); err != nil {
			t.Fatalf("creating chat: %v", err)
		}
	}

	w = httptest.NewRecorder()
	h.ListChats(w, httptest.NewRequest(http.MethodGet, "/api/chats", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}

	var chats []chatdb.ChatRecord
	if err := json.Unmarshal(w.Body.Bytes(), &chats); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(chats) != 2 {
		t.Fatalf("unexpected chat count: %d", len(chats))
	}
	if chats[0].Message != "first" || chats[1].Message != "second" {
		t.Fatalf("chats not in insertion order: %+v", chats)
	}
}
