// Copyright (c) Petal (hello@petalchat.app)
// SPDX-License-Identifier: BUSL-1.1

package getchatmessages

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/petalchat/server/internal/auth"
	"github.com/petalchat/server/internal/httpapi"
	"github.com/petalchat/server/internal/petaldb"
)

// Request is the (empty) body of GET /chat.
type Request struct{}

// Response is the body of a successful GET /chat.
type Response struct {
	// Messages is the full persisted chat log, oldest first. Empty if
	// the account has not chatted yet.
	Messages []petaldb.ChatMessage `json:"messages"`
}

func NewHandler(chats petaldb.ChatStore) *Handler {
	return &Handler{
		chats: chats,
	}
}

type Handler struct {
	chats petaldb.ChatStore
}

func (h *Handler) GetChatMessages(ctx context.Context, _ *Request) (*Response, error) {
	userID := auth.UserID(ctx)
	if userID == "" {
		return nil, httpapi.NewError(http.StatusBadRequest, errors.New("getchatmessages: missing user"))
	}

	chat, err := h.chats.GetChat(ctx, userID)
	if err != nil {
		if errors.Is(err, petaldb.ErrChatNotFound) {
			return &Response{Messages: []petaldb.ChatMessage{}}, nil
		}
		return nil, fmt.Errorf("getchatmessages: loading chat: %w", err)
	}

	return &Response{Messages: chat.Messages}, nil
}
