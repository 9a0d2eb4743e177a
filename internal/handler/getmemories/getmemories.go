// Copyright (c) Petal (hello@petalchat.app)
// SPDX-License-Identifier: BUSL-1.1

package getmemories

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/petalchat/server/internal/auth"
	"github.com/petalchat/server/internal/httpapi"
	"github.com/petalchat/server/internal/petaldb"
)

// Request is the (empty) body of GET /get-memories.
type Request struct{}

// Response is the body of a successful GET /get-memories.
type Response struct {
	// Memories is the account's permanent memory list, oldest first.
	Memories []petaldb.Memory `json:"memories"`
}

func NewHandler(accounts petaldb.AccountStore) *Handler {
	return &Handler{
		accounts: accounts,
	}
}

type Handler struct {
	accounts petaldb.AccountStore
}

func (h *Handler) GetMemories(ctx context.Context, _ *Request) (*Response, error) {
	userID := auth.UserID(ctx)
	if userID == "" {
		return nil, httpapi.NewError(http.StatusBadRequest, errors.New("getmemories: missing user"))
	}

	account, err := h.accounts.GetAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, petaldb.ErrAccountNotFound) {
			return nil, httpapi.NewError(http.StatusNotFound, errors.New("getmemories: account not found"))
		}
		return nil, fmt.Errorf("getmemories: loading account: %w", err)
	}

	memories := account.Memories
	if memories == nil {
		memories = []petaldb.Memory{}
	}
	return &Response{Memories: memories}, nil
}
