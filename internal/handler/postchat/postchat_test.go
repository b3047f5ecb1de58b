// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package postchat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/0x16e8bea/LocationInquirer/internal/chatdb"
	"github.com/0x16e8bea/LocationInquirer/internal/llm"
	"github.com/0x16e8bea/LocationInquirer/internal/store"
)

type fakeGenerator struct {
	mu  sync.Mutex
	req *llm.Request
	res *llm.Result
	err error
}

func (g *fakeGenerator) GenerateLocationResponse(_ context.Context, req llm.Request) (*llm.Result, error) {
	g.mu.Lock()
	g.req = &req
	g.mu.Unlock()
	if g.err != nil {
		return nil, g.err
	}
	return g.res, nil
}

const modelContent = `{"description":"A lively area.","fun_fact":"F"}`

func post(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.PostChat(w, r)
	return w
}

func TestPostChat(t *testing.T) {
	s := store.NewMemory()
	gen := &fakeGenerator{res: &llm.Result{Content: modelContent}}
	h := NewHandler(s, gen)

	w := post(t, h, `{"message":"What is this area like?","location":{"lat":40.7,"lng":-74.0,"address":"Manhattan"},"systemPrompt":"You are a food critic."}`)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d, want %d, body %s", w.Code, http.StatusOK, w.Body)
	}

	var rec chatdb.ChatRecord
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if rec.ID != 1 {
		t.Fatalf("unexpected id: got %d, want 1", rec.ID)
	}
	if rec.Response != modelContent {
		t.Fatalf("model content not stored verbatim: %q", rec.Response)
	}
	if rec.Location.Address != "Manhattan" {
		t.Fatalf("unexpected location: %+v", rec.Location)
	}
	if rec.SystemPrompt != "You are a food critic." {
		t.Fatalf("unexpected system prompt: %q", rec.SystemPrompt)
	}
	if gen.req.Message != "What is this area like?" {
		t.Fatalf("unexpected generator message: %q", gen.req.Message)
	}

	chats, err := s.Chats(context.Background())
	if err != nil {
		t.Fatalf("listing chats: %v", err)
	}
	if len(chats) != 1 {
		t.Fatalf("unexpected store size: %d", len(chats))
	}
}

func TestPostChatDefaultPersona(t *testing.T) {
	gen := &fakeGenerator{res: &llm.Result{Content: modelContent}}
	h := NewHandler(store.NewMemory(), gen)

	w := post(t, h, `{"message":"hello","location":{"lat":1,"lng":2}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d, body %s", w.Code, w.Body)
	}
	if gen.req.SystemPrompt != llm.DefaultPersonaPrompt {
		t.Fatalf("default persona not applied: %q", gen.req.SystemPrompt)
	}
}

func TestPostChatInvalidBody(t *testing.T) {
	bodies := map[string]string{
		"malformed JSON": `{"message":`,
		"empty message":  `{"message":"","location":{"lat":1,"lng":2}}`,
		"no location":    `{"message":"hello"}`,
		"missing lat":    `{"message":"hello","location":{"lng":2}}`,
		"missing lng":    `{"message":"hello","location":{"lat":1}}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			s := store.NewMemory()
			gen := &fakeGenerator{res: &llm.Result{Content: modelContent}}
			h := NewHandler(s, gen)

			w := post(t, h, body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("unexpected status: got %d, want %d", w.Code, http.StatusBadRequest)
			}
			if gen.req != nil {
				t.Fatalf("generator called for invalid body")
			}
			chats, err := s.Chats(context.Background())
			if err != nil {
				t.Fatalf("listing chats: %v", err)
			}
			if len(chats) != 0 {
				t.Fatalf("record persisted for invalid body")
			}
		})
	}
}

func TestPostChatGenerationFailure(t *testing.T) {
	s := store.NewMemory()
	gen := &fakeGenerator{err: errors.New("llm: generation failed: provider unreachable")}
	h := NewHandler(s, gen)

	w := post(t, h, `{"message":"hello","location":{"lat":1,"lng":2}}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: got %d, want %d", w.Code, http.StatusInternalServerError)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if body.Error != "llm: generation failed: provider unreachable" {
		t.Fatalf("unexpected error message: %q", body.Error)
	}

	chats, err := s.Chats(context.Background())
	if err != nil {
		t.Fatalf("listing chats: %v", err)
	}
	if len(chats) != 0 {
		t.Fatalf("record persisted despite generation failure")
	}
}

func TestPostChatConcurrent(t *testing.T) {
	s := store.NewMemory()
	gen := &fakeGenerator{res: &llm.Result{Content: modelContent}}
	h := NewHandler(s, gen)

	done := make(chan int, 10)
	for range 10 {
		go func() {
			w := post(t, h, `{"message":"hello","location":{"lat":1,"lng":2}}`)
			var rec chatdb.ChatRecord
			if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
				done <- 0
				return
			}
			done <- rec.ID
		}()
	}

	seen := map[int]bool{}
	for range 10 {
		id := <-done
		if id == 0 || seen[id] {
			t.Fatalf("duplicate or missing id %d", id)
		}
		seen[id] = true
	}
}
