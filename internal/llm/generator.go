// Copyright (c) Petal (hello@petalchat.app)
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/petalchat/server/internal/petaldb"
)

// ErrRateLimited is returned when the model provider rejects a request
// for rate-limiting reasons.
var ErrRateLimited = errors.New("llm: provider rate limit reached")

// Generator produces a reply for a conversation window.
type Generator interface {
	Generate(ctx context.Context, window *Window) (string, error)
}

// NewGemini returns a Generator backed by the given genai client and
// model name, e.g. gemini-2.5-flash.
func NewGemini(client *genai.Client, model string) *Gemini {
	return &Gemini{
		client: client,
		model:  model,
	}
}

// Gemini generates replies with the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

func (g *Gemini) Generate(ctx context.Context, window *Window) (string, error) {
	content := make([]*genai.Content, len(window.Segments))
	for i, segment := range window.Segments {
		role := genai.Role(genai.RoleUser)
		if segment.Role == petaldb.ChatRoleAssistant {
			role = genai.RoleModel
		}
		content[i] = genai.NewContentFromText(segment.Text, role)
	}

	res, err := g.client.Models.GenerateContent(ctx, g.model, content, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(window.SystemInstruction, genai.RoleModel),
	})
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
			return "", fmt.Errorf("%w: %w", ErrRateLimited, err)
		}
		return "", fmt.Errorf("llm: calling GenerateContent: %w", err)
	}
	if len(res.Candidates) != 1 || len(res.Candidates[0].Content.Parts) != 1 || res.Candidates[0].Content.Parts[0].Text == "" {
		return "", fmt.Errorf("llm: unexpected response from generate ai: %v", res)
	}
	return res.Candidates[0].Content.Parts[0].Text, nil
}
