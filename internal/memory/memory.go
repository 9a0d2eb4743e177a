// Copyright (c) Petal (hello@petalchat.app)
// SPDX-License-Identifier: BUSL-1.1

// Package memory manages the permanent memories a user declares in chat.
package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/petalchat/server/internal/petaldb"
)

// rememberPrefix marks a chat message as a memory declaration.
const rememberPrefix = "remember "

// sentinel errors returned by Manager.
var (
	// ErrLimitReached is returned when an account already has
	// petaldb.MaxMemories memories.
	ErrLimitReached = errors.New("memory: memory limit reached")
	// ErrInvalidIndex is returned when deleting a memory index that
	// does not exist.
	ErrInvalidIndex = errors.New("memory: invalid memory index")
)

// ParseRemember reports whether the message is a memory declaration and
// returns the declared text. The prefix match is case-insensitive. A
// declaration with empty text is not treated as one; it falls through to
// normal chat handling.
func ParseRemember(message string) (string, bool) {
	if len(message) < len(rememberPrefix) || !strings.EqualFold(message[:len(rememberPrefix)], rememberPrefix) {
		return "", false
	}
	text := strings.TrimSpace(message[len(rememberPrefix):])
	if text == "" {
		return "", false
	}
	return text, true
}

// NewManager returns a Manager persisting memory changes through accounts.
func NewManager(accounts petaldb.AccountStore) *Manager {
	return &Manager{accounts: accounts, now: time.Now}
}

// Manager appends and deletes an account's permanent memories.
type Manager struct {
	accounts petaldb.AccountStore
	now      func() time.Time
}

// Add appends a memory to the account and persists it. Returns
// ErrLimitReached, leaving the account unchanged, when the account
// already holds petaldb.MaxMemories memories.
func (m *Manager) Add(ctx context.Context, account *petaldb.Account, text string) error {
	if len(account.Memories) >= petaldb.MaxMemories {
		return ErrLimitReached
	}

	account.Memories = append(account.Memories, petaldb.Memory{
		Text:      text,
		CreatedAt: m.now(),
	})
	if err := m.accounts.UpdateAccount(ctx, account); err != nil {
		return fmt.Errorf("memory: persisting memory: %w", err)
	}
	return nil
}

// Delete removes the memory at the given zero-based index, shifting
// subsequent entries, and persists the account. Returns ErrInvalidIndex
// when the index is out of range or the account has no memories.
func (m *Manager) Delete(ctx context.Context, account *petaldb.Account, index int) error {
	if index < 0 || index >= len(account.Memories) {
		return ErrInvalidIndex
	}

	account.Memories = append(account.Memories[:index], account.Memories[index+1:]...)
	if err := m.accounts.UpdateAccount(ctx, account); err != nil {
		return fmt.Errorf("memory: persisting memory deletion: %w", err)
	}
	return nil
}
