// Copyright (c) Petal (hello@petalchat.app)
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"errors"
	"strings"
)

// ErrForbiddenContent is returned when a message contains a disallowed
// term.
var ErrForbiddenContent = errors.New("llm: message contains forbidden content")

// forbiddenTerms are matched as case-insensitive substrings before any
// model call.
var forbiddenTerms = []string{
	"nude",
	"nsfw",
	"sexting",
	"explicit",
	"kill yourself",
}

// CheckMessage returns ErrForbiddenContent when the message contains a
// disallowed term. It must run before the model is invoked.
func CheckMessage(message string) error {
	lower := strings.ToLower(message)
	for _, term := range forbiddenTerms {
		if strings.Contains(lower, term) {
			return ErrForbiddenContent
		}
	}
	return nil
}
