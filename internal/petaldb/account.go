// Copyright (c) Petal (hello@petalchat.app)
// SPDX-License-Identifier: BUSL-1.1

package petaldb

import (
	"context"
	"errors"
	"time"
)

// sentinel errors returned by account stores.
var (
	// ErrAccountNotFound is returned when the requested account does not exist.
	ErrAccountNotFound = errors.New("petaldb: account not found")
	// ErrEmailTaken is returned when registering an email that already has an account.
	ErrEmailTaken = errors.New("petaldb: email already registered")
)

// Account represents a registered user stored in Firestore.
type Account struct {
	// ID is the unique identifier of the account.
	ID string `firestore:"id"`

	// Email is the login email, unique across accounts.
	Email string `firestore:"email"`

	// PasswordHash is the bcrypt hash of the login password.
	PasswordHash string `firestore:"passwordHash"`

	// Plan is the subscription plan of the account.
	Plan Plan `firestore:"plan"`

	// MessageCount is the number of chat messages sent since the last
	// quota reset.
	MessageCount int `firestore:"messageCount"`

	// LastReset is the time of the last quota reset. Only its calendar
	// date is significant.
	LastReset time.Time `firestore:"lastReset"`

	// Mood is the current conversational mood of the companion for
	// this account.
	Mood Mood `firestore:"mood"`

	// Memories are the permanent memories declared by the user, oldest
	// first, at most MaxMemories entries.
	Memories []Memory `firestore:"memories"`

	// CreatedAt is the timestamp when the account was registered.
	CreatedAt time.Time `firestore:"createdAt"`
}

// AccountStore persists accounts.
type AccountStore interface {
	// CreateAccount stores a new account. Returns ErrEmailTaken if an
	// account with the same email already exists.
	CreateAccount(ctx context.Context, account *Account) error

	// GetAccount returns the account with the given ID, or
	// ErrAccountNotFound.
	GetAccount(ctx context.Context, id string) (*Account, error)

	// GetAccountByEmail returns the account with the given email, or
	// ErrAccountNotFound.
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)

	// UpdateAccount overwrites the stored account.
	UpdateAccount(ctx context.Context, account *Account) error
}
