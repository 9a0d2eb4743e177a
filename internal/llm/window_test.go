// Copyright (c) Petal (hello@petalchat.app)
// SPDX-License-Identifier: BUSL-1.1

package llm_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/petalchat/server/internal/llm"
	"github.com/petalchat/server/internal/petaldb"
)

func TestBuildWindow_Order(t *testing.T) {
	account := &petaldb.Account{
		ID:   "u1",
		Mood: petaldb.MoodSoft,
		Memories: []petaldb.Memory{
			{Text: "my cat is called Mochi"},
			{Text: "i work nights"},
		},
	}
	history := []petaldb.ChatMessage{
		{Role: petaldb.ChatRoleUser, Content: "hi"},
		{Role: petaldb.ChatRoleAssistant, Content: "hello 🌷"},
	}

	w := llm.BuildWindow(account, history, "how are you?", 10)

	if !strings.Contains(w.SystemInstruction, "Petal") {
		t.Errorf("system instruction missing persona: %q", w.SystemInstruction)
	}
	if !strings.Contains(w.SystemInstruction, "soft") {
		t.Errorf("system instruction not conditioned on mood: %q", w.SystemInstruction)
	}

	want := []llm.Segment{
		{Role: petaldb.ChatRoleUser, Text: "Permanent memory about the user: my cat is called Mochi"},
		{Role: petaldb.ChatRoleUser, Text: "Permanent memory about the user: i work nights"},
		{Role: petaldb.ChatRoleUser, Text: "hi"},
		{Role: petaldb.ChatRoleAssistant, Text: "hello 🌷"},
		{Role: petaldb.ChatRoleUser, Text: "how are you?"},
	}
	if len(w.Segments) != len(want) {
		t.Fatalf("segments = %d, want %d", len(w.Segments), len(want))
	}
	for i, seg := range want {
		if w.Segments[i] != seg {
			t.Errorf("segment %d = %+v, want %+v", i, w.Segments[i], seg)
		}
	}
}

func TestBuildWindow_TruncatesHistory(t *testing.T) {
	account := &petaldb.Account{ID: "u1", Mood: petaldb.MoodNeutral}
	var history []petaldb.ChatMessage
	for i := range 30 {
		history = append(history, petaldb.ChatMessage{Role: petaldb.ChatRoleUser, Content: fmt.Sprintf("msg %d", i)})
	}

	w := llm.BuildWindow(account, history, "latest", 10)

	// 10 history entries plus the current message.
	if len(w.Segments) != 11 {
		t.Fatalf("segments = %d, want 11", len(w.Segments))
	}
	if w.Segments[0].Text != "msg 20" {
		t.Errorf("first history segment = %q, want %q", w.Segments[0].Text, "msg 20")
	}
	if w.Segments[9].Text != "msg 29" {
		t.Errorf("last history segment = %q, want %q", w.Segments[9].Text, "msg 29")
	}
	if w.Segments[10].Text != "latest" {
		t.Errorf("final segment = %q, want the current message", w.Segments[10].Text)
	}
}

func TestBuildWindow_EmptyState(t *testing.T) {
	account := &petaldb.Account{ID: "u1", Mood: petaldb.MoodNeutral}

	w := llm.BuildWindow(account, nil, "first message ever", 10)

	if len(w.Segments) != 1 {
		t.Fatalf("segments = %d, want 1", len(w.Segments))
	}
	if w.Segments[0].Role != petaldb.ChatRoleUser || w.Segments[0].Text != "first message ever" {
		t.Errorf("segment = %+v", w.Segments[0])
	}
}

func TestCheckMessage(t *testing.T) {
	if err := llm.CheckMessage("tell me about your day"); err != nil {
		t.Errorf("clean message rejected: %v", err)
	}
	for _, msg := range []string{
		"send me a nude",
		"send me a NUDE please",
		"this is nsfw content",
	} {
		if err := llm.CheckMessage(msg); err == nil {
			t.Errorf("CheckMessage(%q) = nil, want error", msg)
		}
	}
}

func TestPersonaPrompt_UnknownMoodFallsBack(t *testing.T) {
	got := llm.PersonaPrompt(petaldb.Mood("sparkly"))
	if !strings.Contains(got, "neutral") {
		t.Errorf("unknown mood should fall back to neutral tone: %q", got)
	}
}
