// Copyright (c) Petal (hello@petalchat.app)
// SPDX-License-Identifier: BUSL-1.1

package chat

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/petalchat/server/internal/auth"
	"github.com/petalchat/server/internal/httpapi"
	"github.com/petalchat/server/internal/llm"
	"github.com/petalchat/server/internal/memory"
	"github.com/petalchat/server/internal/mood"
	"github.com/petalchat/server/internal/petaldb"
	"github.com/petalchat/server/internal/quota"
)

// user-facing copy for short-circuit responses.
const (
	quotaExceededMessage = "Daily limit reached. Come back tomorrow 🌷"
	memorySavedMessage   = "Got it, I'll remember that 🌷"
	memoryLimitMessage   = "My petals are full — I can only hold 5 memories. Delete one to make room 🌷"
)

// Request is the body of POST /chat.
type Request struct {
	Message string `json:"message"`
}

// Response is the body of a successful POST /chat.
type Response struct {
	// Reply is the companion's reply.
	Reply string `json:"reply"`

	// Remaining is the number of messages left today, or -1 for
	// unlimited plans. Absent on memory short-circuit responses, which
	// do not consume quota.
	Remaining *int `json:"remaining,omitempty"`

	// MemoryLimitReached is set when a memory declaration was rejected
	// because the account already holds the maximum number of memories.
	MemoryLimitReached bool `json:"memoryLimitReached,omitempty"`

	// Memories is the current memory list, included on memory
	// short-circuit responses.
	Memories []petaldb.Memory `json:"memories,omitempty"`
}

// NewHandler returns a Handler.
func NewHandler(accounts petaldb.AccountStore, chats petaldb.ChatStore, quotas *quota.Manager, memories *memory.Manager, generator llm.Generator, historyLimit, windowSize int) *Handler {
	return &Handler{
		accounts:     accounts,
		chats:        chats,
		quotas:       quotas,
		memories:     memories,
		generator:    generator,
		historyLimit: historyLimit,
		windowSize:   windowSize,
		locks:        newAccountLocks(),
		now:          time.Now,
	}
}

// Handler orchestrates one chat turn: memory commands, mood, quota, the
// content filter, generation, and history persistence.
type Handler struct {
	accounts     petaldb.AccountStore
	chats        petaldb.ChatStore
	quotas       *quota.Manager
	memories     *memory.Manager
	generator    llm.Generator
	historyLimit int
	windowSize   int
	locks        *accountLocks
	now          func() time.Time
}

func (h *Handler) Chat(ctx context.Context, req *Request) (*Response, error) {
	userID := auth.UserID(ctx)
	if userID == "" || req.Message == "" {
		return nil, httpapi.NewError(http.StatusBadRequest, errors.New("chat: missing user or message"))
	}

	unlock := h.locks.lock(userID)
	defer unlock()

	account, err := h.accounts.GetAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, petaldb.ErrAccountNotFound) {
			return nil, httpapi.NewError(http.StatusNotFound, errors.New("chat: account not found"))
		}
		return nil, fmt.Errorf("chat: loading account: %w", err)
	}

	if text, ok := memory.ParseRemember(req.Message); ok {
		return h.remember(ctx, account, text)
	}

	if next := mood.Classify(req.Message, account.Mood); next != account.Mood {
		account.Mood = next
		if err := h.accounts.UpdateAccount(ctx, account); err != nil {
			return nil, fmt.Errorf("chat: persisting mood: %w", err)
		}
	}

	remaining, err := h.quotas.Consume(ctx, account)
	if err != nil {
		if errors.Is(err, quota.ErrExceeded) {
			return nil, httpapi.NewCodedError(http.StatusForbidden, "quota_exhausted", errors.New(quotaExceededMessage))
		}
		return nil, fmt.Errorf("chat: consuming quota: %w", err)
	}

	if err := llm.CheckMessage(req.Message); err != nil {
		return nil, httpapi.NewCodedError(http.StatusBadRequest, "content_policy", errors.New("chat: message not allowed"))
	}

	chat, err := h.chats.GetChat(ctx, userID)
	if err != nil {
		if !errors.Is(err, petaldb.ErrChatNotFound) {
			return nil, fmt.Errorf("chat: loading chat: %w", err)
		}
		chat = &petaldb.Chat{UserID: userID, CreatedAt: h.now()}
	}

	window := llm.BuildWindow(account, chat.Messages, req.Message, h.windowSize)
	reply, err := h.generator.Generate(ctx, window)
	if err != nil {
		// Quota consumed above is not refunded on generation failure.
		if errors.Is(err, llm.ErrRateLimited) {
			return nil, httpapi.NewCodedError(http.StatusTooManyRequests, "provider_rate_limited", errors.New(quotaExceededMessage))
		}
		return nil, fmt.Errorf("chat: generating reply: %w", err)
	}

	chat.Append(h.historyLimit,
		petaldb.ChatMessage{Role: petaldb.ChatRoleUser, Content: req.Message},
		petaldb.ChatMessage{Role: petaldb.ChatRoleAssistant, Content: reply},
	)
	chat.UpdatedAt = h.now()
	if err := h.chats.SaveChat(ctx, chat); err != nil {
		return nil, fmt.Errorf("chat: saving chat: %w", err)
	}

	return &Response{Reply: reply, Remaining: &remaining}, nil
}

// remember handles a memory declaration, short-circuiting the rest of
// the pipeline: no quota consumption, no generation, no log append.
func (h *Handler) remember(ctx context.Context, account *petaldb.Account, text string) (*Response, error) {
	if err := h.memories.Add(ctx, account, text); err != nil {
		if errors.Is(err, memory.ErrLimitReached) {
			return &Response{
				Reply:              memoryLimitMessage,
				MemoryLimitReached: true,
				Memories:           account.Memories,
			}, nil
		}
		return nil, fmt.Errorf("chat: adding memory: %w", err)
	}
	return &Response{
		Reply:    memorySavedMessage,
		Memories: account.Memories,
	}, nil
}
