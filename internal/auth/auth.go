// Copyright (c) Petal (hello@petalchat.app)
// SPDX-License-Identifier: BUSL-1.1

// Package auth issues and verifies the bearer tokens protecting chat routes.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the lifetime of an issued bearer token.
const TokenTTL = 7 * 24 * time.Hour

// ErrTokenInvalid is returned when a token cannot be parsed, has a bad
// signature, or has expired.
var ErrTokenInvalid = errors.New("auth: invalid token")

type userIDContextKey struct{}

var userIDContextKeyInstance = userIDContextKey{}

// Issuer creates and verifies signed bearer tokens.
type Issuer struct {
	secret []byte
	now    func() time.Time
}

// NewIssuer returns an Issuer signing with the given secret.
func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret), now: time.Now}
}

// IssueToken returns a signed token carrying the account ID, valid for
// TokenTTL.
func (i *Issuer) IssueToken(userID string) (string, error) {
	now := i.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	})
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates a token and returns the account ID it carries.
func (i *Issuer) VerifyToken(token string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
	if claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}

// Middleware returns middleware that requires a valid bearer token and
// stores the authenticated account ID on the request context. Requests
// without a token get a 401, requests with an invalid or expired token
// a 403.
func (i *Issuer) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				http.Error(w, "missing token", http.StatusUnauthorized)
				return
			}
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, "missing token", http.StatusUnauthorized)
				return
			}

			userID, err := i.VerifyToken(token)
			if err != nil {
				http.Error(w, "permission denied", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID returns a context carrying the authenticated account ID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKeyInstance, userID)
}

// UserID returns the authenticated account ID from the context, or ""
// if the request was not authenticated.
func UserID(ctx context.Context) string {
	if id, ok := ctx.Value(userIDContextKeyInstance).(string); ok {
		return id
	}
	return ""
}
