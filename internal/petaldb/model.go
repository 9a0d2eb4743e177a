// Copyright (c) Petal (hello@petalchat.app)
// SPDX-License-Identifier: BUSL-1.1

package petaldb

import "time"

type Plan string

const (
	// PlanFree is the default plan with a daily message quota.
	PlanFree Plan = "free"
	// PlanPro is the paid plan with no daily message quota.
	PlanPro Plan = "pro"
)

type Mood string

const (
	// MoodNeutral is the default mood.
	MoodNeutral Mood = "neutral"
	// MoodSoft is an affectionate mood.
	MoodSoft Mood = "soft"
	// MoodTease is a playful, teasing mood.
	MoodTease Mood = "tease"
	// MoodDominant is an assertive mood.
	MoodDominant Mood = "dominant"
)

// Moods is the set of valid mood values.
var Moods = []Mood{MoodNeutral, MoodSoft, MoodTease, MoodDominant}

// MaxMemories is the maximum number of permanent memories per account.
const MaxMemories = 5

// Memory is a user-declared fact injected into every prompt.
type Memory struct {
	// Text is the content of the memory.
	Text string `firestore:"text" json:"text"`

	// CreatedAt is the timestamp when the memory was declared.
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}
