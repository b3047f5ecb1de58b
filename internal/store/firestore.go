// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/0x16e8bea/LocationInquirer/internal/chatdb"
)

const (
	chatsCollection = "chats"
	counterDocPath  = "meta/chats"
	counterField    = "nextId"
)

// NewFirestore returns a Firestore store backed by the given client.
func NewFirestore(client *firestore.Client) *Firestore {
	return &Firestore{client: client}
}

// Firestore is a Store persisting chat records to Firestore. Sequential
// id assignment goes through a counter document so ids stay unique and
// monotonic across concurrent writers.
type Firestore struct {
	client *firestore.Client
}

func (s *Firestore) Chats(ctx context.Context) ([]chatdb.ChatRecord, error) {
	var chats []chatdb.ChatRecord
	docs := s.client.Collection(chatsCollection).OrderBy("id", firestore.Asc).Documents(ctx)
	for {
		doc, err := docs.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("store: listing chat documents: %w", err)
		}
		var rec chatdb.ChatRecord
		if err := doc.DataTo(&rec); err != nil {
			return nil, fmt.Errorf("store: decoding chat document: %w", err)
		}
		chats = append(chats, rec)
	}
	return chats, nil
}

func (s *Firestore) CreateChat(ctx context.Context, chat chatdb.InsertChat) (chatdb.ChatRecord, error) {
	var rec chatdb.ChatRecord
	err := s.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		counter := s.client.Doc(counterDocPath)
		next := 1
		doc, err := tx.Get(counter)
		if err != nil && status.Code(err) != codes.NotFound {
			return fmt.Errorf("getting chat counter: %w", err)
		}
		if doc != nil && doc.Exists() {
			v, err := doc.DataAt(counterField)
			if err != nil {
				return fmt.Errorf("reading chat counter: %w", err)
			}
			if n, ok := v.(int64); ok {
				next = int(n)
			}
		}

		rec = chatdb.ChatRecord{
			ID:           next,
			Message:      chat.Message,
			Response:     chat.Response,
			SystemPrompt: chat.SystemPrompt,
			Location:     chat.Location,
			Timestamp:    time.Now(),
		}
		if err := tx.Set(s.client.Collection(chatsCollection).Doc(strconv.Itoa(next)), rec); err != nil {
			return fmt.Errorf("writing chat document: %w", err)
		}
		if err := tx.Set(counter, map[string]any{counterField: next + 1}); err != nil {
			return fmt.Errorf("writing chat counter: %w", err)
		}
		return nil
	})
	if err != nil {
		return chatdb.ChatRecord{}, fmt.Errorf("store: creating chat: %w", err)
	}
	return rec, nil
}

func (s *Firestore) ClearChats(ctx context.Context) error {
	docs := s.client.Collection(chatsCollection).Documents(ctx)
	for {
		doc, err := docs.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return fmt.Errorf("store: listing chat documents for clear: %w", err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return fmt.Errorf("store: deleting chat document: %w", err)
		}
	}
	if _, err := s.client.Doc(counterDocPath).Delete(ctx); err != nil {
		return fmt.Errorf("store: resetting chat counter: %w", err)
	}
	return nil
}
