// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package store

import (
	"context"
	"sync"
	"time"

	"github.com/0x16e8bea/LocationInquirer/internal/chatdb"
)

// NewMemory returns a Memory store.
func NewMemory() *Memory {
	return &Memory{nextID: 1}
}

// Memory is an in-memory Store. State does not survive the process.
type Memory struct {
	mu     sync.Mutex
	chats  []chatdb.ChatRecord
	nextID int
}

func (s *Memory) Chats(_ context.Context) ([]chatdb.ChatRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	chats := make([]chatdb.ChatRecord, len(s.chats))
	copy(chats, s.chats)
	return chats, nil
}

func (s *Memory) CreateChat(_ context.Context, chat chatdb.InsertChat) (chatdb.ChatRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := chatdb.ChatRecord{
		ID:           s.nextID,
		Message:      chat.Message,
		Response:     chat.Response,
		SystemPrompt: chat.SystemPrompt,
		Location:     chat.Location,
		Timestamp:    time.Now(),
	}
	s.nextID++
	s.chats = append(s.chats, rec)
	return rec, nil
}

func (s *Memory) ClearChats(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats = nil
	s.nextID = 1
	return nil
}
