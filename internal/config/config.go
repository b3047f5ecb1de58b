// Copyright (c) Choko (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"github.com/curioswitch/go-curiostack/config"
)

// Model selects and configures the language model provider.
type Model struct {
	// Provider is the model provider to answer chats with, either
	// "openai" or "gemini".
	Provider string `koanf:"provider"`

	// OpenAI is the model name used with the openai provider.
	OpenAI string `koanf:"openai"`

	// Gemini is the model name used with the gemini provider.
	Gemini string `koanf:"gemini"`
}

// Store selects the chat store backend.
type Store struct {
	// Backend is the store implementation, either "memory" or
	// "firestore".
	Backend string `koanf:"backend"`
}

// Persona is a named system-prompt variant biasing the model's tone and
// recommendation focus. Adding a persona is a configuration change.
type Persona struct {
	// ID is the stable identifier of the persona.
	ID string `koanf:"id" json:"id"`

	// Name is the display name of the persona.
	Name string `koanf:"name" json:"name"`

	// Description is a short description of the persona's focus.
	Description string `koanf:"description" json:"description"`

	// Prompt is the system instruction text for the persona.
	Prompt string `koanf:"prompt" json:"prompt"`
}

type Config struct {
	config.Common

	// Model is the configuration for the language model provider.
	Model Model `koanf:"model"`

	// Store is the configuration for the chat store.
	Store Store `koanf:"store"`

	// Personas are the selectable system-prompt variants.
	Personas []Persona `koanf:"personas"`
}
