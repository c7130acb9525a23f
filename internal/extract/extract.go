// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract locates quiz sections in lab-manual text and segments
// them into numbered questions. Both passes are pure scans over the raw
// text; the only side effect is progress written to the caller's writer.
package extract

import (
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/lab-answers/pkg/types"
)

var (
	// ErrNoSections reports that no quiz section markers were found.
	ErrNoSections = errors.New("quiz sections not found")

	// ErrNoQuestions reports that quiz sections were found but none of
	// them contained a numbered question.
	ErrNoQuestions = errors.New("no questions found in the quiz sections")
)

// Result holds the sections located in a document and the questions
// segmented from them, in document order.
type Result struct {
	Sections  []types.QuizSection `json:"sections" yaml:"sections"`
	Questions []string            `json:"questions" yaml:"questions"`
}

// Questions runs section extraction and question segmentation over text.
// A section without questions is reported and skipped. It returns
// ErrNoSections when no section is found and ErrNoQuestions when the
// sections yield no questions in aggregate; the partial Result is returned
// alongside either error.
func Questions(text string, m *SectionMatcher, w io.Writer) (Result, error) {
	if m == nil {
		m = DefaultMatcher()
	}
	if w == nil {
		w = io.Discard
	}

	var res Result
	res.Sections = m.Sections(text)
	if len(res.Sections) == 0 {
		return res, ErrNoSections
	}

	for _, sec := range res.Sections {
		qs := Segment(sec.Body)
		if len(qs) == 0 {
			fmt.Fprintf(w, "section %d: no numbered questions, skipping\n", sec.Index)
			continue
		}
		fmt.Fprintf(w, "section %d: %d question(s)\n", sec.Index, len(qs))
		res.Questions = append(res.Questions, qs...)
	}

	if len(res.Questions) == 0 {
		return res, ErrNoQuestions
	}
	return res, nil
}
