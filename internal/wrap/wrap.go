// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wrap breaks text into lines that fit a width budget.
package wrap

import "strings"

// MeasureFunc returns the rendered width of s in the caller's units.
type MeasureFunc func(s string) float64

// Lines greedily packs the whitespace-delimited words of text into lines
// whose measured width stays within budget. Each candidate line is measured
// with a trailing space, so a word joins the current line only if the line
// plus the word plus one space fits.
//
// A word that does not fit on an empty line becomes a line of its own and
// overflows the budget; words are never split. Empty input yields nil.
func Lines(text string, budget float64, widthOf MeasureFunc) []string {
	var lines []string
	current := ""

	for _, word := range strings.Fields(text) {
		candidate := current + word + " "
		if current == "" || widthOf(candidate) <= budget {
			current = candidate
			continue
		}
		lines = append(lines, strings.TrimSpace(current))
		current = word + " "
	}

	if last := strings.TrimSpace(current); last != "" {
		lines = append(lines, last)
	}
	return lines
}
