// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/curioswitch/go-curiostack/server"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"
	"google.golang.org/genai"

	"github.com/0x16e8bea/LocationInquirer/internal/config"
	"github.com/0x16e8bea/LocationInquirer/internal/handler/clearchats"
	"github.com/0x16e8bea/LocationInquirer/internal/handler/listchats"
	"github.com/0x16e8bea/LocationInquirer/internal/handler/listpersonas"
	"github.com/0x16e8bea/LocationInquirer/internal/handler/postchat"
	"github.com/0x16e8bea/LocationInquirer/internal/llm"
	"github.com/0x16e8bea/LocationInquirer/internal/store"
)

//go:embed conf/*.yaml
var confFiles embed.FS

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("main: no .env file loaded", "error", err)
	}
	conf, _ := fs.Sub(confFiles, "conf")
	os.Exit(server.Main(&config.Config{}, conf, setupServer))
}

func setupServer(ctx context.Context, conf *config.Config, s *server.Server) error {
	mux := server.Mux(s)

	var chats store.Store
	switch conf.Store.Backend {
	case "firestore":
		client, err := firestore.NewClient(ctx, conf.Google.Project)
		if err != nil {
			return fmt.Errorf("main: create firestore client: %w", err)
		}
		defer func() {
			if err := client.Close(); err != nil {
				slog.ErrorContext(ctx, "main: close firestore client", "error", err)
			}
		}()
		chats = store.NewFirestore(client)
	default:
		chats = store.NewMemory()
	}

	var generator llm.Generator
	switch conf.Model.Provider {
	case "gemini":
		genAI, err := genai.NewClient(ctx, &genai.ClientConfig{
			Backend: genai.BackendGeminiAPI,
			Project: conf.Google.Project,
		})
		if err != nil {
			return fmt.Errorf("main: create genai client: %w", err)
		}
		generator = llm.NewGemini(genAI, conf.Model.Gemini)
	default:
		oai := openai.NewClient()
		generator = llm.NewOpenAI(&oai, conf.Model.OpenAI)
	}

	mux.Use(middleware.RequestSize(1 << 20))

	mux.Get("/api/chats", listchats.NewHandler(chats).ListChats)
	mux.Post("/api/chat", postchat.NewHandler(chats, generator).PostChat)
	mux.Delete("/api/chats", clearchats.NewHandler(chats).ClearChats)
	mux.Get("/api/personas", listpersonas.NewHandler(conf.Personas).ListPersonas)

	if err := server.Start(ctx, s); err != nil {
		return fmt.Errorf("main: starting server: %w", err)
	}
	return nil
}
