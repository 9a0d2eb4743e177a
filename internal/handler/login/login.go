// Copyright (c) Petal (hello@petalchat.app)
// SPDX-License-Identifier: BUSL-1.1

package login

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/petalchat/server/internal/auth"
	"github.com/petalchat/server/internal/httpapi"
	"github.com/petalchat/server/internal/petaldb"
)

// Request is the body of POST /login.
type Request struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response is the body of a successful POST /login.
type Response struct {
	Token string `json:"token"`
}

func NewHandler(accounts petaldb.AccountStore, issuer *auth.Issuer) *Handler {
	return &Handler{
		accounts: accounts,
		issuer:   issuer,
	}
}

type Handler struct {
	accounts petaldb.AccountStore
	issuer   *auth.Issuer
}

func (h *Handler) Login(ctx context.Context, req *Request) (*Response, error) {
	if req.Email == "" || req.Password == "" {
		return nil, httpapi.NewError(http.StatusBadRequest, errors.New("login: missing email or password"))
	}

	account, err := h.accounts.GetAccountByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, petaldb.ErrAccountNotFound) {
			return nil, httpapi.NewError(http.StatusNotFound, errors.New("login: account not found"))
		}
		return nil, fmt.Errorf("login: loading account: %w", err)
	}

	if !auth.CheckPassword(account.PasswordHash, req.Password) {
		return nil, httpapi.NewError(http.StatusUnauthorized, errors.New("login: wrong password"))
	}

	token, err := h.issuer.IssueToken(account.ID)
	if err != nil {
		return nil, fmt.Errorf("login: issuing token: %w", err)
	}
	return &Response{Token: token}, nil
}
