// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/lab-answers/pkg/types"
)

// Start marker patterns. The first is templated: "Quiz(" followed by any
// text up to the nearest ")".
var defaultStartPatterns = []string{
	`Quiz\(.*?\)`,
	regexp.QuoteMeta("Quiz: (Sufficient space to be provided for the answers)"),
}

// End marker patterns, tried in order at each position. The longer
// "References used by the students" must precede the bare "References:".
var defaultEndPatterns = []string{
	`References used by the students:?`,
	`Suggested Reference:?`,
	`References:`,
}

// SectionMatcher locates quiz sections in raw manual text. A section runs
// from a start marker to the nearest following end marker, or to the end
// of the text when no end marker follows.
type SectionMatcher struct {
	re *regexp.Regexp
}

var defaultMatcher = mustMatcher(nil, nil)

// DefaultMatcher returns the matcher for the built-in marker variants.
func DefaultMatcher() *SectionMatcher {
	return defaultMatcher
}

// NewSectionMatcher builds a matcher that also accepts the given literal
// start and end phrases. Blank phrases are ignored.
func NewSectionMatcher(extraStart, extraEnd []string) (*SectionMatcher, error) {
	starts := append(append([]string(nil), defaultStartPatterns...), quoteAll(extraStart)...)
	ends := append(append([]string(nil), defaultEndPatterns...), quoteAll(extraEnd)...)

	// (?s) lets both the templated start and the body span newlines; the
	// lazy body pairs each start with the nearest end.
	expr := fmt.Sprintf(`(?s)(?:%s)(.*?)(?:%s|\z)`,
		strings.Join(starts, "|"), strings.Join(ends, "|"))

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling section pattern: %w", err)
	}
	return &SectionMatcher{re: re}, nil
}

func mustMatcher(extraStart, extraEnd []string) *SectionMatcher {
	m, err := NewSectionMatcher(extraStart, extraEnd)
	if err != nil {
		panic(err)
	}
	return m
}

func quoteAll(phrases []string) []string {
	var out []string
	for _, p := range phrases {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, regexp.QuoteMeta(p))
		}
	}
	return out
}

// Sections returns every non-overlapping quiz section in text, left to
// right. Bodies are trimmed of surrounding whitespace.
func (m *SectionMatcher) Sections(text string) []types.QuizSection {
	var sections []types.QuizSection
	for _, match := range m.re.FindAllStringSubmatchIndex(text, -1) {
		sections = append(sections, types.QuizSection{
			Index: len(sections) + 1,
			Body:  strings.TrimSpace(text[match[2]:match[3]]),
			Start: match[0],
			End:   match[1],
		})
	}
	return sections
}
