// Copyright (c) Petal (hello@petalchat.app)
// SPDX-License-Identifier: BUSL-1.1

// Package httpapi adapts unary request/response handlers to JSON over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// Error is an error with an associated HTTP status code and an optional
// machine-readable code string for clients.
type Error struct {
	status int
	code   string
	err    error
}

// NewError creates an Error that renders with the given HTTP status.
func NewError(status int, err error) *Error {
	return &Error{status: status, err: err}
}

// NewCodedError creates an Error carrying a machine-readable code in the
// response body in addition to the HTTP status.
func NewCodedError(status int, code string, err error) *Error {
	return &Error{status: status, code: code, err: err}
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

// Status returns the HTTP status the error renders with.
func (e *Error) Status() int {
	return e.status
}

// Code returns the machine-readable code, or "" if none was set.
func (e *Error) Code() string {
	return e.code
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Handler adapts a unary handler function to an http.HandlerFunc. The
// request body is decoded into Req as JSON; requests without a body (GET)
// yield a zero Req. The response is encoded as JSON. Errors of type *Error
// render with their status; any other error is logged and rendered as a
// generic 500 without leaking internal detail.
func Handler[Req, Res any](handle func(ctx context.Context, req *Req) (*Res, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		req := new(Req)
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(req); err != nil {
				writeError(w, NewError(http.StatusBadRequest, fmt.Errorf("httpapi: decoding request body: %w", err)))
				return
			}
		}

		res, err := handle(ctx, req)
		if err != nil {
			var herr *Error
			if !errors.As(err, &herr) {
				slog.ErrorContext(ctx, "httpapi: unhandled error", "path", r.URL.Path, "error", err)
				herr = NewError(http.StatusInternalServerError, errors.New("server error"))
			}
			writeError(w, herr)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(res); err != nil {
			slog.ErrorContext(ctx, "httpapi: encoding response", "path", r.URL.Path, "error", err)
		}
	}
}

func writeError(w http.ResponseWriter, herr *Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(herr.Status())
	_ = json.NewEncoder(w).Encode(errorBody{Error: herr.Error(), Code: herr.Code()})
}
