// Copyright (c) Petal (hello@petalchat.app)
// SPDX-License-Identifier: BUSL-1.1

// Package mood derives the companion's mood from incoming messages.
package mood

import (
	"strings"

	"github.com/petalchat/server/internal/petaldb"
)

// Classify returns the mood resulting from the given message. It is a
// pure heuristic over substrings, not language understanding. Rules run
// in fixed order and later matches overwrite earlier ones: a short
// message containing "love" ends up soft, not neutral.
func Classify(message string, current petaldb.Mood) petaldb.Mood {
	next := current
	lower := strings.ToLower(message)

	if len(message) < 15 {
		next = petaldb.MoodNeutral
	}
	if strings.Contains(lower, "love") || strings.Contains(lower, "miss") {
		next = petaldb.MoodSoft
	}
	if strings.Contains(lower, "bored") || strings.Contains(lower, "hmm") {
		next = petaldb.MoodTease
	}
	if strings.Contains(message, "😏") || strings.Contains(message, "😉") {
		next = petaldb.MoodTease
	}

	return next
}
