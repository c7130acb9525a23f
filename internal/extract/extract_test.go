// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Sections ---

func sectionBodies(t *testing.T, m *SectionMatcher, text string) []string {
	t.Helper()
	var bodies []string
	for _, s := range m.Sections(text) {
		bodies = append(bodies, s.Body)
	}
	return bodies
}

func TestSections(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lazy pairing keeps sections apart",
			text: "Quiz(A) q1 References: r1 Quiz(B) q2 Suggested Reference: r2",
			want: []string{"q1", "q2"},
		},
		{
			name: "sufficient space variant",
			text: "Aim\nQuiz: (Sufficient space to be provided for the answers)\n1. What is a hub?\nSuggested Reference:\nTanenbaum",
			want: []string{"1. What is a hub?"},
		},
		{
			name: "references used by the students",
			text: "Quiz(Sufficient space to be provided)\n1. Define LAN.\nReferences used by the students:\nnotes",
			want: []string{"1. Define LAN."},
		},
		{
			name: "templated start spans a newline",
			text: "Quiz(\nwrite answers\n) 1. Define MAN. References: x",
			want: []string{"1. Define MAN."},
		},
		{
			name: "end of text closes the last section",
			text: "Quiz(A) q1 References: r1 Quiz(B) 1. trailing question",
			want: []string{"q1", "1. trailing question"},
		},
		{
			name: "no markers",
			text: "Experiment 1\nAim: study network cables.",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "quiz word without parenthesis is not a marker",
			text: "Quiz time. 1. What? References: none",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sectionBodies(t, DefaultMatcher(), tt.text))
		})
	}
}

func TestSections_Offsets(t *testing.T) {
	text := "intro Quiz(A) q1 References: tail"
	sections := DefaultMatcher().Sections(text)
	require.Len(t, sections, 1)

	s := sections[0]
	assert.Equal(t, 1, s.Index)
	assert.Equal(t, "Quiz(A) q1 References:", text[s.Start:s.End])
}

func TestNewSectionMatcher_ExtraMarkers(t *testing.T) {
	m, err := NewSectionMatcher([]string{"Viva Questions:", "  "}, []string{"Conclusion (if any)"})
	require.NoError(t, err)

	text := "Viva Questions: 1. What is ARP? Conclusion (if any) done " +
		"Quiz(B) 1. What is RARP? References: r"
	assert.Equal(t, []string{"1. What is ARP?", "1. What is RARP?"}, sectionBodies(t, m, text))

	// Built-in matcher ignores the custom phrases.
	assert.Equal(t, []string{"1. What is RARP?"}, sectionBodies(t, DefaultMatcher(), text))
}

// --- Segment ---

func TestSegment(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "two questions on one line",
			body: "1. What is TCP? 2. What is UDP?",
			want: []string{"What is TCP?", "What is UDP?"},
		},
		{
			name: "questions across lines",
			body: "1. Define protocol.\n2. List OSI layers\n3.\tExplain routing",
			want: []string{"Define protocol.", "List OSI layers", "Explain routing"},
		},
		{
			name: "misnumbered ordinals still split",
			body: "1. First 1. Second 7. Third",
			want: []string{"First", "Second", "Third"},
		},
		{
			name: "multi-digit ordinals",
			body: "9. Ninth 10. Tenth 11. Eleventh",
			want: []string{"Ninth", "Tenth", "Eleventh"},
		},
		{
			name: "decimal inside a question is not a boundary",
			body: "1. Why is IPv4 limited to 4.3 billion addresses? 2. Next",
			want: []string{"Why is IPv4 limited to 4.3 billion addresses?", "Next"},
		},
		{
			name: "text before the first marker is dropped",
			body: "Answer briefly. 1. What is a MAC address?",
			want: []string{"What is a MAC address?"},
		},
		{
			name: "adjacent markers yield an empty question",
			body: "1. 2. Real question",
			want: []string{"", "Real question"},
		},
		{
			name: "marker without trailing whitespace opens a question",
			body: "1.What is DNS?",
			want: []string{"What is DNS?"},
		},
		{
			name: "marker-free body",
			body: "Write a short note on switching.",
			want: nil,
		},
		{
			name: "empty body",
			body: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Segment(tt.body))
		})
	}
}

func TestSegment_LongDigitRuns(t *testing.T) {
	digits := strings.Repeat("9", 200000)
	body := "1. Compute " + digits + " modulo eleven. 2. Is 3.14 rational? 3. Last"

	got := Segment(body)
	require.Len(t, got, 3)
	assert.Equal(t, "Compute "+digits+" modulo eleven.", got[0])
	assert.Equal(t, "Is 3.14 rational?", got[1])
	assert.Equal(t, "Last", got[2])
}

// --- Questions ---

func TestQuestions(t *testing.T) {
	text := "Experiment 1\nQuiz(Sufficient space)\n1. What is TCP? 2. What is UDP?\nReferences: book\n" +
		"Experiment 2\nQuiz(Sufficient space)\nWrite a note.\nSuggested Reference: site\n" +
		"Experiment 3\nQuiz(Sufficient space)\n1. What is ARP?\nReferences used by the students: web"

	var buf bytes.Buffer
	res, err := Questions(text, nil, &buf)
	require.NoError(t, err)

	assert.Len(t, res.Sections, 3)
	assert.Equal(t, []string{"What is TCP?", "What is UDP?", "What is ARP?"}, res.Questions)

	log := buf.String()
	assert.Contains(t, log, "section 1: 2 question(s)")
	assert.Contains(t, log, "section 2: no numbered questions, skipping")
	assert.Contains(t, log, "section 3: 1 question(s)")
}

func TestQuestions_Errors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{name: "empty text", text: "", wantErr: ErrNoSections},
		{name: "no markers", text: "1. What is TCP?", wantErr: ErrNoSections},
		{name: "sections without questions", text: "Quiz(A) none here References: r", wantErr: ErrNoQuestions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			_, err := Questions(tt.text, DefaultMatcher(), &buf)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
