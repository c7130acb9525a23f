// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package answer obtains a prose answer for each quiz question from the
// Gemini knowledge service. A failed call never aborts the run: the slot
// receives FailureAnswer and the remaining questions are still resolved.
package answer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/lab-answers/pkg/types"
)

// FailureAnswer is recorded for a question whose answer could not be generated.
const FailureAnswer = "Error generating answer."

// EmptyAnswer is recorded when the service replied but produced no text.
const EmptyAnswer = "No answer generated."

// DefaultContextLimit caps the manual text sent with each question.
const DefaultContextLimit = 10000

// ErrEmptyAnswer is returned by backends when the service replied without
// any candidate text.
var ErrEmptyAnswer = errors.New("no answer generated")

// Backend abstracts the knowledge service so tests can supply a fake.
type Backend interface {
	// Answer returns the answer text for question, given the manual context.
	Answer(ctx context.Context, question, context string) (string, error)
}

// Resolver maps questions to answers through a Backend. Answers keep the
// index of their question; with Concurrency above 1 several requests may
// be in flight, but each writes only its own slot.
type Resolver struct {
	backend      Backend
	contextLimit int
	concurrency  int
	w            io.Writer
	mu           sync.Mutex
}

// NewResolver creates a resolver. Progress and per-question failures are
// written to w.
func NewResolver(backend Backend, cfg types.AIConfig, w io.Writer) *Resolver {
	if w == nil {
		w = io.Discard
	}
	limit := cfg.ContextLimit
	if limit <= 0 {
		limit = DefaultContextLimit
	}
	return &Resolver{
		backend:      backend,
		contextLimit: limit,
		concurrency:  cfg.Concurrency,
		w:            w,
	}
}

// Resolve returns one QAPair per question, in question order. Context
// cancellation stops further calls; unanswered slots get FailureAnswer.
func (r *Resolver) Resolve(ctx context.Context, questions []string, manual string) []types.QAPair {
	pairs := make([]types.QAPair, len(questions))
	excerpt := Truncate(manual, r.contextLimit)

	if r.concurrency <= 1 {
		for i, q := range questions {
			pairs[i] = r.resolveOne(ctx, i, len(questions), q, excerpt)
		}
		return pairs
	}

	// Workers never return an error, so Wait only joins them.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, q := range questions {
		g.Go(func() error {
			pairs[i] = r.resolveOne(gctx, i, len(questions), q, excerpt)
			return nil
		})
	}
	_ = g.Wait()
	return pairs
}

func (r *Resolver) resolveOne(ctx context.Context, i, total int, question, excerpt string) types.QAPair {
	pair := types.QAPair{Index: i + 1, Question: question}

	text, err := r.call(ctx, question, excerpt)
	if err != nil {
		pair.Answer = FailureAnswer
		if errors.Is(err, ErrEmptyAnswer) {
			pair.Answer = EmptyAnswer
		}
		pair.Failed = true
		r.logf("failed  question %d/%d: %v\n", i+1, total, err)
		return pair
	}

	pair.Answer = text
	r.logf("answered question %d/%d\n", i+1, total)
	return pair
}

func (r *Resolver) call(ctx context.Context, question, excerpt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := r.backend.Answer(ctx, question, excerpt)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyAnswer
	}
	return text, nil
}

func (r *Resolver) logf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, format, args...)
}

// Truncate returns at most limit runes from the start of s.
func Truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
