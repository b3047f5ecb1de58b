// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/shared"
)

// NewOpenAI returns a Generator backed by the OpenAI chat completions
// API.
func NewOpenAI(client *openai.Client, model string) *OpenAI {
	return &OpenAI{
		client: client,
		model:  model,
	}
}

// OpenAI is a Generator backed by OpenAI chat completions in JSON-object
// output mode.
type OpenAI struct {
	client *openai.Client
	model  string
}

func (g *OpenAI) GenerateLocationResponse(ctx context.Context, req Request) (*Result, error) {
	res, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(LocationPrompt(req.SystemPrompt, req.Location, req.Places)),
			openai.UserMessage(req.Message),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
		// Low but nonzero so phrasing varies slightly between personas.
		Temperature: openai.Float(0.3),
	})
	if err != nil {
		return nil, fmt.Errorf("llm: generation failed: %w", err)
	}
	if len(res.Choices) == 0 {
		return nil, fmt.Errorf("llm: %w", ErrNoContent)
	}
	return parseContent(res.Choices[0].Message.Content)
}
