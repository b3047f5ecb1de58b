// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package store persists chat records. Records are immutable after
// creation; the only mutations are insertion and a bulk clear.
package store

import (
	"context"

	"github.com/0x16e8bea/LocationInquirer/internal/chatdb"
)

// Store holds chat records.
type Store interface {
	// Chats returns all records in insertion order.
	Chats(ctx context.Context) ([]chatdb.ChatRecord, error)

	// CreateChat assigns the next sequential id starting from 1, stamps
	// the current time, and stores and returns the full record.
	CreateChat(ctx context.Context, chat chatdb.InsertChat) (chatdb.ChatRecord, error)

	// ClearChats removes all records and resets the id sequence to 1.
	// Clearing an empty store succeeds.
	ClearChats(ctx context.Context) error
}
