// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package answer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/lab-answers/pkg/types"
)

// ErrMissingAPIKey is returned when no Gemini credential is configured.
var ErrMissingAPIKey = errors.New("Gemini API key not set (use --api-key, GEMINI_API_KEY, or .secrets/gemini-api-key)")

// NewBackend builds the Backend selected by cfg.Backend. The returned
// close function releases client resources and is never nil.
func NewBackend(ctx context.Context, cfg types.AIConfig, log io.Writer) (Backend, func() error, error) {
	noop := func() error { return nil }
	if cfg.APIKey == "" {
		return nil, noop, ErrMissingAPIKey
	}

	switch cfg.Backend {
	case types.BackendREST, "":
		return &GeminiREST{
			APIKey:    cfg.APIKey,
			Model:     cfg.Model,
			Client:    &http.Client{Timeout: cfg.Timeout},
			UserAgent: cfg.UserAgent,
			Log:       log,
		}, noop, nil
	case types.BackendSDK:
		sdk, err := NewGeminiSDK(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, noop, err
		}
		return sdk, sdk.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown answer backend %q (want %q or %q)", cfg.Backend, types.BackendREST, types.BackendSDK)
	}
}
