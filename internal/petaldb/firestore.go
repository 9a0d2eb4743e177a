// Copyright (c) Petal (hello@petalchat.app)
// SPDX-License-Identifier: BUSL-1.1

package petaldb

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const (
	accountsCollection = "accounts"
	chatsCollection    = "chats"
)

// NewStore returns a Store backed by the given Firestore client.
func NewStore(client *firestore.Client) *Store {
	return &Store{client: client}
}

// Store implements AccountStore and ChatStore on Firestore.
type Store struct {
	client *firestore.Client
}

func (s *Store) CreateAccount(ctx context.Context, account *Account) error {
	_, err := s.GetAccountByEmail(ctx, account.Email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, ErrAccountNotFound) {
		return err
	}

	if _, err := s.client.Collection(accountsCollection).Doc(account.ID).Create(ctx, account); err != nil {
		return fmt.Errorf("petaldb: creating account: %w", err)
	}
	return nil
}

func (s *Store) GetAccount(ctx context.Context, id string) (*Account, error) {
	doc, err := s.client.Collection(accountsCollection).Where("id", "==", id).Limit(1).Documents(ctx).Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("petaldb: getting account document: %w", err)
	}

	var account Account
	if err := doc.DataTo(&account); err != nil {
		return nil, fmt.Errorf("petaldb: decoding account document: %w", err)
	}
	return &account, nil
}

func (s *Store) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
	doc, err := s.client.Collection(accountsCollection).Where("email", "==", email).Limit(1).Documents(ctx).Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("petaldb: getting account document by email: %w", err)
	}

	var account Account
	if err := doc.DataTo(&account); err != nil {
		return nil, fmt.Errorf("petaldb: decoding account document: %w", err)
	}
	return &account, nil
}

func (s *Store) UpdateAccount(ctx context.Context, account *Account) error {
	if _, err := s.client.Collection(accountsCollection).Doc(account.ID).Set(ctx, account); err != nil {
		return fmt.Errorf("petaldb: saving account: %w", err)
	}
	return nil
}

func (s *Store) GetChat(ctx context.Context, userID string) (*Chat, error) {
	doc, err := s.client.Collection(chatsCollection).Where("userId", "==", userID).Limit(1).Documents(ctx).Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return nil, ErrChatNotFound
		}
		return nil, fmt.Errorf("petaldb: getting chat document: %w", err)
	}

	var chat Chat
	if err := doc.DataTo(&chat); err != nil {
		return nil, fmt.Errorf("petaldb: decoding chat document: %w", err)
	}
	return &chat, nil
}

func (s *Store) SaveChat(ctx context.Context, chat *Chat) error {
	if _, err := s.client.Collection(chatsCollection).Doc(chat.UserID).Set(ctx, chat); err != nil {
		return fmt.Errorf("petaldb: saving chat: %w", err)
	}
	return nil
}
