// Copyright (c) Petal (hello@petalchat.app)
// SPDX-License-Identifier: BUSL-1.1

package deletememory

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/petalchat/server/internal/auth"
	"github.com/petalchat/server/internal/httpapi"
	"github.com/petalchat/server/internal/memory"
	"github.com/petalchat/server/internal/petaldb"
)

// Request is the body of POST /delete-memory.
type Request struct {
	// Index is the zero-based position of the memory to delete.
	Index int `json:"index"`
}

// Response is the body of a successful POST /delete-memory.
type Response struct {
	// Memories is the memory list after deletion.
	Memories []petaldb.Memory `json:"memories"`
}

func NewHandler(accounts petaldb.AccountStore, memories *memory.Manager) *Handler {
	return &Handler{
		accounts: accounts,
		memories: memories,
	}
}

type Handler struct {
	accounts petaldb.AccountStore
	memories *memory.Manager
}

func (h *Handler) DeleteMemory(ctx context.Context, req *Request) (*Response, error) {
	userID := auth.UserID(ctx)
	if userID == "" {
		return nil, httpapi.NewError(http.StatusBadRequest, errors.New("deletememory: missing user"))
	}

	account, err := h.accounts.GetAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, petaldb.ErrAccountNotFound) {
			return nil, httpapi.NewError(http.StatusNotFound, errors.New("deletememory: account not found"))
		}
		return nil, fmt.Errorf("deletememory: loading account: %w", err)
	}

	if err := h.memories.Delete(ctx, account, req.Index); err != nil {
		if errors.Is(err, memory.ErrInvalidIndex) {
			return nil, httpapi.NewError(http.StatusBadRequest, errors.New("deletememory: invalid memory index"))
		}
		return nil, fmt.Errorf("deletememory: deleting memory: %w", err)
	}

	memories := account.Memories
	if memories == nil {
		memories = []petaldb.Memory{}
	}
	return &Response{Memories: memories}, nil
}
