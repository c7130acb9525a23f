// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one lab manual through conversion, quiz extraction,
// answer resolution, and PDF rendering, then writes the result once.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/lab-answers/internal/answer"
	"github.com/pdiddy/lab-answers/internal/convert"
	"github.com/pdiddy/lab-answers/internal/extract"
	"github.com/pdiddy/lab-answers/internal/render"
	"github.com/pdiddy/lab-answers/pkg/types"
)

// Stage names reported in StageError.
const (
	StageConvert = "convert"
	StageExtract = "extract"
	StageAnswer  = "answer"
	StageRender  = "render"
	StageWrite   = "write"
)

// StageError reports the stage that stopped a run.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Summary describes a completed run.
type Summary struct {
	Sections  int    `json:"sections" yaml:"sections"`
	Questions int    `json:"questions" yaml:"questions"`
	Failed    int    `json:"failed" yaml:"failed"`
	Pages     int    `json:"pages" yaml:"pages"`
	Output    string `json:"output" yaml:"output"`
}

// Driver holds the collaborators for a run.
type Driver struct {
	Converter convert.Converter
	Matcher   *extract.SectionMatcher
	Resolver  *answer.Resolver
	Render    types.RenderConfig
	Log       io.Writer
}

// New wires a driver from cfg. The backend is used for every question;
// progress from all stages goes to w.
func New(cfg types.PipelineConfig, backend answer.Backend, w io.Writer) (*Driver, error) {
	if w == nil {
		w = io.Discard
	}
	m, err := extract.NewSectionMatcher(cfg.Extraction.StartMarkers, cfg.Extraction.EndMarkers)
	if err != nil {
		return nil, fmt.Errorf("building section matcher: %w", err)
	}
	return &Driver{
		Converter: convert.NewDocconvConverter(cfg.Conversion),
		Matcher:   m,
		Resolver:  answer.NewResolver(backend, cfg.Answer, w),
		Render:    cfg.Render,
		Log:       w,
	}, nil
}

// Run processes inputPath and writes the answered PDF to outputPath.
// Conversion, extraction, rendering, and writing failures stop the run
// with a *StageError, as does cancellation of ctx; nothing is written
// unless every earlier stage succeeded. Answer failures are recorded per
// question and never stop it.
func (d *Driver) Run(ctx context.Context, inputPath, outputPath string) (Summary, error) {
	w := d.Log
	if w == nil {
		w = io.Discard
	}
	sum := Summary{Output: outputPath}

	fmt.Fprintf(w, "converting: %s\n", inputPath)
	text, err := d.Converter.Convert(inputPath)
	if err != nil {
		return sum, &StageError{Stage: StageConvert, Err: err}
	}

	res, err := extract.Questions(text, d.Matcher, w)
	sum.Sections = len(res.Sections)
	if err != nil {
		return sum, &StageError{Stage: StageExtract, Err: err}
	}
	sum.Questions = len(res.Questions)
	fmt.Fprintf(w, "extracted %d question(s) from %d section(s)\n", sum.Questions, sum.Sections)

	pairs := d.Resolver.Resolve(ctx, res.Questions, text)
	for _, p := range pairs {
		if p.Failed {
			sum.Failed++
		}
	}
	// A cancelled run leaves sentinels that are not answers; keep any
	// earlier output untouched.
	if err := ctx.Err(); err != nil {
		return sum, &StageError{Stage: StageAnswer, Err: err}
	}

	data, stats, err := render.RenderPDF(d.Render, types.Questions(pairs), types.Answers(pairs))
	if err != nil {
		return sum, &StageError{Stage: StageRender, Err: err}
	}
	sum.Pages = stats.Pages

	if err := writeFile(outputPath, data); err != nil {
		return sum, &StageError{Stage: StageWrite, Err: err}
	}
	fmt.Fprintf(w, "wrote %s (%d page(s), %d of %d answered)\n",
		outputPath, sum.Pages, sum.Questions-sum.Failed, sum.Questions)
	return sum, nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
