// Copyright (c) Petal (hello@petalchat.app)
// SPDX-License-Identifier: BUSL-1.1

// Package llm builds model prompts and generates replies with Gemini.
package llm

import (
	"github.com/petalchat/server/internal/petaldb"
)

// memoryPrefix marks a window segment as a standing fact about the user.
const memoryPrefix = "Permanent memory about the user: "

// Segment is one role-tagged piece of the conversation window.
type Segment struct {
	Role petaldb.ChatRole
	Text string
}

// Window is the bounded prompt context for one generation request. It is
// rebuilt from persisted state on every request.
type Window struct {
	// SystemInstruction is the persona instruction.
	SystemInstruction string

	// Segments are the ordered conversation segments: one per permanent
	// memory, then the most recent history entries, then the current
	// message as a final user segment.
	Segments []Segment
}

// BuildWindow assembles the window for one request: the mood-conditioned
// persona instruction, one segment per permanent memory, the last
// windowSize entries of the chat log, and the current message.
func BuildWindow(account *petaldb.Account, history []petaldb.ChatMessage, message string, windowSize int) *Window {
	if windowSize > 0 && len(history) > windowSize {
		history = history[len(history)-windowSize:]
	}

	segments := make([]Segment, 0, len(account.Memories)+len(history)+1)
	for _, mem := range account.Memories {
		segments = append(segments, Segment{
			Role: petaldb.ChatRoleUser,
			Text: memoryPrefix + mem.Text,
		})
	}
	for _, msg := range history {
		segments = append(segments, Segment{
			Role: msg.Role,
			Text: msg.Content,
		})
	}
	segments = append(segments, Segment{
		Role: petaldb.ChatRoleUser,
		Text: message,
	})

	return &Window{
		SystemInstruction: PersonaPrompt(account.Mood),
		Segments:          segments,
	}
}
