// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Segment splits a quiz section body into questions. A question opens at
// an ordinal marker (digits then a period), skips the whitespace after it,
// and runs to the earliest following "digits, period, whitespace" boundary
// or to the end of body. Each question is trimmed.
//
// Ordinal values are not checked: repeated or skipped numbers still split
// on marker text alone. A marker followed directly by another marker
// yields an empty question.
func Segment(body string) []string {
	var questions []string
	pos := 0
	for {
		textStart, ok := nextMarker(body, pos)
		if !ok {
			break
		}

		end := len(body)
		for j := textStart; j < len(body); j++ {
			if !isDigit(body[j]) {
				continue
			}
			if isBoundary(body, j) {
				end = j
				break
			}
			// Every suffix of this digit run fails the same way.
			j = skipDigits(body, j) - 1
		}

		questions = append(questions, strings.TrimSpace(body[textStart:end]))
		pos = end
	}
	return questions
}

// nextMarker finds the leftmost "digits ." at or after from and returns
// the offset just past it and any whitespace that follows.
func nextMarker(s string, from int) (int, bool) {
	for i := from; i < len(s); i++ {
		if !isDigit(s[i]) {
			continue
		}
		j := skipDigits(s, i)
		if j < len(s) && s[j] == '.' {
			return skipSpace(s, j+1), true
		}
		// No digit inside this run can start a marker either.
		i = j - 1
	}
	return 0, false
}

// isBoundary reports whether "digits . whitespace" begins at i.
func isBoundary(s string, i int) bool {
	if !isDigit(s[i]) {
		return false
	}
	j := skipDigits(s, i)
	if j >= len(s) || s[j] != '.' {
		return false
	}
	r, size := utf8.DecodeRuneInString(s[j+1:])
	return size > 0 && unicode.IsSpace(r)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func skipDigits(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func skipSpace(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}
