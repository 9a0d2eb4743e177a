// Copyright (c) Petal (hello@petalchat.app)
// SPDX-License-Identifier: BUSL-1.1

package register

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/petalchat/server/internal/auth"
	"github.com/petalchat/server/internal/httpapi"
	"github.com/petalchat/server/internal/petaldb"
)

// Request is the body of POST /register.
type Request struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response is the body of a successful POST /register.
type Response struct {
	UserID string `json:"userId"`
}

func NewHandler(accounts petaldb.AccountStore) *Handler {
	return &Handler{
		accounts: accounts,
		now:      time.Now,
	}
}

type Handler struct {
	accounts petaldb.AccountStore
	now      func() time.Time
}

func (h *Handler) Register(ctx context.Context, req *Request) (*Response, error) {
	if req.Email == "" || req.Password == "" {
		return nil, httpapi.NewError(http.StatusBadRequest, errors.New("register: missing email or password"))
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("register: hashing password: %w", err)
	}

	now := h.now()
	account := &petaldb.Account{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		Plan:         petaldb.PlanFree,
		Mood:         petaldb.MoodNeutral,
		LastReset:    now,
		CreatedAt:    now,
	}
	if err := h.accounts.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, petaldb.ErrEmailTaken) {
			return nil, httpapi.NewError(http.StatusConflict, errors.New("register: email already registered"))
		}
		return nil, fmt.Errorf("register: creating account: %w", err)
	}

	return &Response{UserID: account.ID}, nil
}
