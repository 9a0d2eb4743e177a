// Copyright (c) Petal (hello@petalchat.app)
// SPDX-License-Identifier: BUSL-1.1

package chat

import "sync"

// accountLocks serializes chat requests per account so concurrent
// requests cannot both pass the quota check on the same pre-increment
// counter.
type accountLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: map[string]*sync.Mutex{}}
}

// lock acquires the lock of the given account and returns the unlock
// function.
func (l *accountLocks) lock(id string) func() {
	l.mu.Lock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
