// Copyright (c) Petal (hello@petalchat.app)
// SPDX-License-Identifier: BUSL-1.1

package petaldb

import (
	"context"
	"errors"
	"time"
)

// ErrChatNotFound is returned when an account has no chat log yet.
var ErrChatNotFound = errors.New("petaldb: chat not found")

type ChatRole string

const (
	// ChatRoleUser represents a user message.
	ChatRoleUser ChatRole = "user"
	// ChatRoleAssistant represents an assistant message.
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage represents a message in a chat conversation.
type ChatMessage struct {
	// Role is the role of the message sender.
	Role ChatRole `firestore:"role" json:"role"`

	// Content is the text content of the message.
	Content string `firestore:"content" json:"content"`
}

// Chat is the rolling conversation log of an account. There is exactly
// one chat document per account.
type Chat struct {
	// UserID is the ID of the account owning the chat.
	UserID string `firestore:"userId"`

	// Messages is the list of messages in the chat, oldest first.
	Messages []ChatMessage `firestore:"messages"`

	// CreatedAt is the timestamp when the chat was created.
	CreatedAt time.Time `firestore:"createdAt"`

	// UpdatedAt is the timestamp when the chat was last updated.
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// Append adds messages to the log and evicts the oldest entries so that
// at most limit remain.
func (c *Chat) Append(limit int, msgs ...ChatMessage) {
	c.Messages = append(c.Messages, msgs...)
	if limit > 0 && len(c.Messages) > limit {
		c.Messages = c.Messages[len(c.Messages)-limit:]
	}
}

// ChatStore persists chat logs.
type ChatStore interface {
	// GetChat returns the chat log of the given account, or
	// ErrChatNotFound if the account has not chatted yet.
	GetChat(ctx context.Context, userID string) (*Chat, error)

	// SaveChat overwrites the stored chat log of chat.UserID.
	SaveChat(ctx context.Context, chat *Chat) error
}
