// Copyright (c) Petal (hello@petalchat.app)
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	firebase "firebase.google.com/go/v4"
	"github.com/curioswitch/go-curiostack/server"
	"github.com/go-chi/chi/v5/middleware"
	"google.golang.org/genai"

	"github.com/petalchat/server/internal/auth"
	"github.com/petalchat/server/internal/config"
	"github.com/petalchat/server/internal/handler/chat"
	"github.com/petalchat/server/internal/handler/deletememory"
	"github.com/petalchat/server/internal/handler/getchatmessages"
	"github.com/petalchat/server/internal/handler/getmemories"
	"github.com/petalchat/server/internal/handler/login"
	"github.com/petalchat/server/internal/handler/register"
	"github.com/petalchat/server/internal/httpapi"
	"github.com/petalchat/server/internal/llm"
	"github.com/petalchat/server/internal/memory"
	"github.com/petalchat/server/internal/petaldb"
	"github.com/petalchat/server/internal/quota"
)

//go:embed conf/*.yaml
var confFiles embed.FS

func main() {
	conf, _ := fs.Sub(confFiles, "conf")
	os.Exit(server.Main(&config.Config{}, conf, setupServer))
}

func setupServer(ctx context.Context, conf *config.Config, s *server.Server) error {
	mux := server.Mux(s)

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: conf.Google.Project})
	if err != nil {
		return fmt.Errorf("main: create firebase app: %w", err)
	}

	firestore, err := fbApp.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("main: create firestore client: %w", err)
	}
	defer func() {
		if err := firestore.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close firestore client", "error", err)
		}
	}()

	genAI, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		Project: conf.Google.Project,
	})
	if err != nil {
		return fmt.Errorf("main: creating genai client: %w", err)
	}

	store := petaldb.NewStore(firestore)
	issuer := auth.NewIssuer(conf.Token.Secret)
	quotas := quota.NewManager(store, conf.Chat.DailyLimit)
	memories := memory.NewManager(store)
	generator := llm.NewGemini(genAI, conf.Chat.Model)

	authMW := issuer.Middleware()
	mux.Use(middleware.Maybe(authMW, func(r *http.Request) bool {
		switch r.URL.Path {
		case "/", "/register", "/login":
			return false
		default:
			return true
		}
	}))

	mux.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Petal Backend is running 🌷"))
	})

	mux.Post("/register", httpapi.Handler(register.NewHandler(store).Register))
	mux.Post("/login", httpapi.Handler(login.NewHandler(store, issuer).Login))
	mux.Post("/chat", httpapi.Handler(
		chat.NewHandler(store, store, quotas, memories, generator, conf.Chat.HistoryLimit, conf.Chat.WindowSize).Chat))
	mux.Get("/chat", httpapi.Handler(getchatmessages.NewHandler(store).GetChatMessages))
	mux.Post("/delete-memory", httpapi.Handler(deletememory.NewHandler(store, memories).DeleteMemory))
	mux.Get("/get-memories", httpapi.Handler(getmemories.NewHandler(store).GetMemories))

	if err := server.Start(ctx, s); err != nil {
		return fmt.Errorf("main: starting server: %w", err)
	}
	return nil
}
