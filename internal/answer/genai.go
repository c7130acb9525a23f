// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package answer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiSDK answers questions through the generative-ai-go client.
type GeminiSDK struct {
	client    *genai.Client
	modelName string
}

// NewGeminiSDK creates a client authenticated with apiKey. Callers must
// Close it when the run ends.
func NewGeminiSDK(ctx context.Context, apiKey, modelName string) (*GeminiSDK, error) {
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	if modelName == "" {
		modelName = DefaultModel
	}
	return &GeminiSDK{client: cl, modelName: modelName}, nil
}

// Close releases the underlying client connection.
func (g *GeminiSDK) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// Answer sends the rendered prompt and returns the first candidate's text.
func (g *GeminiSDK) Answer(ctx context.Context, question, manual string) (string, error) {
	prompt, err := renderPrompt(question, manual)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}

	m := g.client.GenerativeModel(g.modelName)
	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return candidateText(resp)
}

// candidateText joins the text parts of the first candidate.
func candidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyAnswer
	}

	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", ErrEmptyAnswer
	}
	return text, nil
}

var (
	_ Backend = (*GeminiSDK)(nil)
	_ Backend = (*GeminiREST)(nil)
)
