// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/0x16e8bea/LocationInquirer/internal/chatdb"
)

// NewGemini returns a Generator backed by the Gemini API.
func NewGemini(client *genai.Client, model string) *Gemini {
	return &Gemini{
		client: client,
		model:  model,
	}
}

// Gemini is a Generator backed by Gemini structured output.
type Gemini struct {
	client *genai.Client
	model  string
}

func (g *Gemini) GenerateLocationResponse(ctx context.Context, req Request) (*Result, error) {
	res, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{
		genai.NewContentFromText(req.Message, genai.RoleUser),
	}, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(LocationPrompt(req.SystemPrompt, req.Location, req.Places), genai.RoleModel),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    chatdb.LocationResponseSchema,
		// Low but nonzero so phrasing varies slightly between personas.
		Temperature: genai.Ptr[float32](0.3),
	})
	if err != nil {
		return nil, fmt.Errorf("llm: generation failed: %w", err)
	}
	if len(res.Candidates) != 1 || len(res.Candidates[0].Content.Parts) != 1 || res.Candidates[0].Content.Parts[0].Text == "" {
		return nil, fmt.Errorf("llm: %w", ErrNoContent)
	}
	return parseContent(res.Candidates[0].Content.Parts[0].Text)
}
