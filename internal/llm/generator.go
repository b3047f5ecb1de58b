// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package llm turns a user message and location context into a
// structured answer from an external language model.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/0x16e8bea/LocationInquirer/internal/chatdb"
)

var (
	// ErrNoContent indicates the model returned an empty payload.
	ErrNoContent = errors.New("no content in response")

	// ErrInvalidFormat indicates the model payload was not valid JSON.
	ErrInvalidFormat = errors.New("invalid response format")
)

// Request is the input for one location query.
type Request struct {
	// Message is the user's question. Must be non-empty.
	Message string

	// Location is the map location the question is about.
	Location chatdb.Location

	// Places is optional nearby-place context supplied by the client.
	Places []chatdb.Place

	// SystemPrompt is the persona instruction text. The default persona
	// is used when empty.
	SystemPrompt string
}

// Result is a successful generation.
type Result struct {
	// Content is the verbatim JSON payload returned by the model.
	Content string

	// Response is the parsed form of Content.
	Response chatdb.LocationResponse
}

// Generator answers location queries with an external language model.
type Generator interface {
	GenerateLocationResponse(ctx context.Context, req Request) (*Result, error)
}

// parseContent validates a model payload and builds a Result. An empty
// payload or one that is not valid JSON is a terminal failure; no
// recovery is attempted here.
func parseContent(content string) (*Result, error) {
	if content == "" {
		return nil, fmt.Errorf("llm: %w", ErrNoContent)
	}
	var resp chatdb.LocationResponse
	if err := json.Unmarshal([]byte(content), &resp); err != nil {
		return nil, fmt.Errorf("llm: %w: %w", ErrInvalidFormat, err)
	}
	return &Result{Content: content, Response: resp}, nil
}
