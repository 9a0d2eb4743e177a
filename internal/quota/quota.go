// Copyright (c) Petal (hello@petalchat.app)
// SPDX-License-Identifier: BUSL-1.1

// Package quota enforces the daily message quota of free-plan accounts.
package quota

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/petalchat/server/internal/petaldb"
)

// UnlimitedRemaining is the remaining value reported for accounts whose
// plan has no daily quota.
const UnlimitedRemaining = -1

// ErrExceeded is returned when an account has used up its daily quota.
var ErrExceeded = errors.New("quota: daily limit reached")

// NewManager returns a Manager persisting counter updates through accounts.
func NewManager(accounts petaldb.AccountStore, dailyLimit int) *Manager {
	return &Manager{
		accounts: accounts,
		limit:    dailyLimit,
		now:      time.Now,
	}
}

// Manager applies the day-boundary reset and the per-day message limit.
type Manager struct {
	accounts petaldb.AccountStore
	limit    int
	now      func() time.Time
}

// Consume records one message against the account's daily quota and
// returns the number of messages remaining today, or UnlimitedRemaining
// for pro accounts. The counter resets to zero the first time an account
// chats on a calendar date later than its stored reset marker, before the
// increment for the current message. Returns ErrExceeded, without
// mutating anything further, when the limit is already used up.
func (m *Manager) Consume(ctx context.Context, account *petaldb.Account) (int, error) {
	now := m.now()
	if !sameDay(account.LastReset, now) {
		account.MessageCount = 0
		account.LastReset = now
	}

	if account.Plan != petaldb.PlanPro && account.MessageCount >= m.limit {
		return 0, ErrExceeded
	}

	account.MessageCount++
	if err := m.accounts.UpdateAccount(ctx, account); err != nil {
		return 0, fmt.Errorf("quota: persisting counter: %w", err)
	}

	if account.Plan == petaldb.PlanPro {
		return UnlimitedRemaining, nil
	}
	return m.limit - account.MessageCount, nil
}

// sameDay reports whether both times fall on the same calendar date.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
