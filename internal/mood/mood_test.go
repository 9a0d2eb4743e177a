// Copyright (c) Petal (hello@petalchat.app)
// SPDX-License-Identifier: BUSL-1.1

package mood_test

import (
	"testing"

	"github.com/petalchat/server/internal/mood"
	"github.com/petalchat/server/internal/petaldb"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		current petaldb.Mood
		want    petaldb.Mood
	}{
		{
			name:    "short message resets to neutral",
			message: "hey",
			current: petaldb.MoodDominant,
			want:    petaldb.MoodNeutral,
		},
		{
			name:    "long plain message keeps current mood",
			message: "today was a pretty ordinary day at work honestly",
			current: petaldb.MoodDominant,
			want:    petaldb.MoodDominant,
		},
		{
			name:    "love makes it soft",
			message: "i love the way you always listen to me",
			current: petaldb.MoodNeutral,
			want:    petaldb.MoodSoft,
		},
		{
			name:    "miss makes it soft",
			message: "i really miss talking to you every day",
			current: petaldb.MoodTease,
			want:    petaldb.MoodSoft,
		},
		{
			name:    "short message with love is soft not neutral",
			message: "love u",
			current: petaldb.MoodNeutral,
			want:    petaldb.MoodSoft,
		},
		{
			name:    "bored overrides soft",
			message: "i love you but i am so bored right now",
			current: petaldb.MoodNeutral,
			want:    petaldb.MoodTease,
		},
		{
			name:    "hmm makes it tease",
			message: "hmm what should we talk about tonight",
			current: petaldb.MoodSoft,
			want:    petaldb.MoodTease,
		},
		{
			name:    "smirk emoji makes it tease",
			message: "guess what i did today 😏",
			current: petaldb.MoodNeutral,
			want:    petaldb.MoodTease,
		},
		{
			name:    "wink emoji overrides everything",
			message: "miss you 😉",
			current: petaldb.MoodNeutral,
			want:    petaldb.MoodTease,
		},
		{
			name:    "matching is case insensitive",
			message: "I LOVE spending time here with you",
			current: petaldb.MoodNeutral,
			want:    petaldb.MoodSoft,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mood.Classify(tt.message, tt.current); got != tt.want {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.message, tt.current, got, tt.want)
			}
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	msg := "i miss you so much today"
	first := mood.Classify(msg, petaldb.MoodNeutral)
	for range 5 {
		mood.Classify("unrelated account message that is long", petaldb.MoodDominant)
		if got := mood.Classify(msg, petaldb.MoodNeutral); got != first {
			t.Fatalf("Classify not stable: got %q, want %q", got, first)
		}
	}
}
