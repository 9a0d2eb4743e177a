// Copyright (c) Petal (hello@petalchat.app)
// SPDX-License-Identifier: BUSL-1.1

package quota

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/petalchat/server/internal/petaldb"
)

// fakeAccounts records account updates in memory.
type fakeAccounts struct {
	updates int
	err     error
}

func (f *fakeAccounts) CreateAccount(context.Context, *petaldb.Account) error {
	return nil
}

func (f *fakeAccounts) GetAccount(context.Context, string) (*petaldb.Account, error) {
	return nil, petaldb.ErrAccountNotFound
}

func (f *fakeAccounts) GetAccountByEmail(context.Context, string) (*petaldb.Account, error) {
	return nil, petaldb.ErrAccountNotFound
}

func (f *fakeAccounts) UpdateAccount(context.Context, *petaldb.Account) error {
	if f.err != nil {
		return f.err
	}
	f.updates++
	return nil
}

func newTestManager(accounts *fakeAccounts, limit int, now time.Time) *Manager {
	m := NewManager(accounts, limit)
	m.now = func() time.Time { return now }
	return m
}

func TestConsume_CountsWithinDay(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	accounts := &fakeAccounts{}
	m := newTestManager(accounts, 5, now)

	account := &petaldb.Account{ID: "u1", Plan: petaldb.PlanFree, LastReset: now}
	for i, want := range []int{4, 3, 2, 1, 0} {
		remaining, err := m.Consume(context.Background(), account)
		if err != nil {
			t.Fatalf("Consume call %d: %v", i+1, err)
		}
		if remaining != want {
			t.Errorf("call %d: remaining = %d, want %d", i+1, remaining, want)
		}
		if account.MessageCount != i+1 {
			t.Errorf("call %d: counter = %d, want %d", i+1, account.MessageCount, i+1)
		}
	}

	_, err := m.Consume(context.Background(), account)
	if !errors.Is(err, ErrExceeded) {
		t.Fatalf("sixth call: err = %v, want ErrExceeded", err)
	}
	if account.MessageCount != 5 {
		t.Errorf("counter mutated on rejected call: %d", account.MessageCount)
	}
	if accounts.updates != 5 {
		t.Errorf("updates = %d, want 5", accounts.updates)
	}
}

func TestConsume_ResetsOnNewCalendarDay(t *testing.T) {
	now := time.Date(2026, 3, 14, 0, 5, 0, 0, time.UTC)
	m := newTestManager(&fakeAccounts{}, 5, now)

	// Exhausted yesterday, barely any wall-clock time elapsed.
	account := &petaldb.Account{
		ID:           "u1",
		Plan:         petaldb.PlanFree,
		MessageCount: 5,
		LastReset:    now.Add(-10 * time.Minute),
	}

	remaining, err := m.Consume(context.Background(), account)
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if account.MessageCount != 1 {
		t.Errorf("counter = %d, want 1 after reset", account.MessageCount)
	}
	if remaining != 4 {
		t.Errorf("remaining = %d, want 4", remaining)
	}
	if !account.LastReset.Equal(now) {
		t.Errorf("LastReset = %v, want %v", account.LastReset, now)
	}
}

func TestConsume_SameDayDoesNotReset(t *testing.T) {
	now := time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC)
	m := newTestManager(&fakeAccounts{}, 5, now)

	account := &petaldb.Account{
		ID:           "u1",
		Plan:         petaldb.PlanFree,
		MessageCount: 3,
		LastReset:    now.Add(-20 * time.Hour),
	}

	remaining, err := m.Consume(context.Background(), account)
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if account.MessageCount != 4 {
		t.Errorf("counter = %d, want 4", account.MessageCount)
	}
	if remaining != 1 {
		t.Errorf("remaining = %d, want 1", remaining)
	}
}

func TestConsume_ProIsUnlimited(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	m := newTestManager(&fakeAccounts{}, 5, now)

	account := &petaldb.Account{
		ID:           "u1",
		Plan:         petaldb.PlanPro,
		MessageCount: 9000,
		LastReset:    now,
	}

	remaining, err := m.Consume(context.Background(), account)
	if err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if remaining != UnlimitedRemaining {
		t.Errorf("remaining = %d, want %d", remaining, UnlimitedRemaining)
	}
	if account.MessageCount != 9001 {
		t.Errorf("counter = %d, want 9001", account.MessageCount)
	}
}

func TestConsume_PersistError(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	storeErr := errors.New("firestore down")
	m := newTestManager(&fakeAccounts{err: storeErr}, 5, now)

	account := &petaldb.Account{ID: "u1", Plan: petaldb.PlanFree, LastReset: now}
	if _, err := m.Consume(context.Background(), account); !errors.Is(err, storeErr) {
		t.Fatalf("err = %v, want wrapped store error", err)
	}
}
