// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render lays question/answer pairs out as wrapped text lines across
// fixed-size pages. Drawing and text measurement go through a Canvas; the
// production Canvas writes a PDF with gofpdf.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/lab-answers/internal/wrap"
	"github.com/pdiddy/lab-answers/pkg/types"
)

// ErrLengthMismatch is returned when questions and answers differ in count.
var ErrLengthMismatch = errors.New("question and answer counts differ")

// Canvas is the drawing surface the renderer writes to. Coordinates are in
// points with the origin at the top-left corner; y is the text baseline.
type Canvas interface {
	// AddPage appends a blank page and makes it current.
	AddPage()

	// MeasureText returns the rendered width of s in the canvas font.
	MeasureText(s string) float64

	// DrawText draws s on the current page with its baseline at (x, y).
	DrawText(x, y float64, s string)

	// PageCount returns the number of pages added so far.
	PageCount() int

	// Output serializes all pages, in creation order, to w.
	Output(w io.Writer) error
}

// Stats summarizes a render pass.
type Stats struct {
	Pages int
	Lines int
}

// Renderer places labelled question and answer blocks on pages.
type Renderer struct {
	cfg types.RenderConfig
}

// New creates a renderer for the given page geometry.
func New(cfg types.RenderConfig) *Renderer {
	return &Renderer{cfg: cfg}
}

// Render draws each pair as "Q{n}: question", a half-line gap, "A{n}: answer"
// and a line-and-a-half gap. A new page starts whenever the next line's
// baseline would fall below the bottom margin, so a pair may break across
// pages between any two of its lines. The first page is created up front.
func (r *Renderer) Render(c Canvas, questions, answers []string) (Stats, error) {
	if len(questions) != len(answers) {
		return Stats{}, fmt.Errorf("%w: %d questions, %d answers", ErrLengthMismatch, len(questions), len(answers))
	}

	lh := r.cfg.LineHeight()
	p := &pager{
		c:      c,
		x:      r.cfg.Margin,
		top:    r.cfg.Margin,
		bottom: r.cfg.PageHeight - r.cfg.Margin,
		lh:     lh,
		budget: r.cfg.UsableWidth(),
	}
	c.AddPage()
	p.y = p.top

	for i := range questions {
		p.block(fmt.Sprintf("Q%d: %s", i+1, flatten(questions[i])))
		p.y += lh / 2
		p.block(fmt.Sprintf("A%d: %s", i+1, flatten(answers[i])))
		p.y += lh * 1.5
	}

	return Stats{Pages: c.PageCount(), Lines: p.lines}, nil
}

// pager carries the cursor between blocks and across pages.
type pager struct {
	c      Canvas
	x      float64
	y      float64
	top    float64
	bottom float64
	lh     float64
	budget float64
	lines  int
}

func (p *pager) block(text string) {
	for _, line := range wrap.Lines(text, p.budget, p.c.MeasureText) {
		if p.y > p.bottom {
			p.c.AddPage()
			p.y = p.top
		}
		p.c.DrawText(p.x, p.y, line)
		p.y += p.lh
		p.lines++
	}
}

// flatten replaces line breaks with spaces.
func flatten(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

// RenderPDF renders the pairs onto a fresh PDF canvas and returns the
// document bytes.
func RenderPDF(cfg types.RenderConfig, questions, answers []string) ([]byte, Stats, error) {
	c, err := NewPDFCanvas(cfg)
	if err != nil {
		return nil, Stats{}, err
	}

	stats, err := New(cfg).Render(c, questions, answers)
	if err != nil {
		return nil, Stats{}, err
	}

	var buf bytes.Buffer
	if err := c.Output(&buf); err != nil {
		return nil, Stats{}, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), stats, nil
}
