// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the lab-answers pipeline:
// quiz sections located in a lab manual, question/answer pairs, and the
// per-stage configuration structs.
package types

// QuizSection is a contiguous region of the manual text bounded by a quiz
// start marker and a references end marker (or end of text).
type QuizSection struct {
	// Index is the 1-based position of the section in document order.
	Index int `json:"index" yaml:"index"`

	// Body is the text strictly between the markers, trimmed.
	Body string `json:"body" yaml:"body"`

	// Start and End are byte offsets of the whole match, markers included.
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// QAPair couples a question with the answer produced for it. Index is
// 1-based and matches the Q/A labels in the rendered document.
type QAPair struct {
	Index    int    `json:"index" yaml:"index"`
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer,omitempty" yaml:"answer,omitempty"`

	// Failed is set when Answer holds the failure placeholder rather than
	// text returned by the knowledge service.
	Failed bool `json:"failed,omitempty" yaml:"failed,omitempty"`
}

// Questions returns the question strings of pairs in order.
func Questions(pairs []QAPair) []string {
	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = p.Question
	}
	return out
}

// Answers returns the answer strings of pairs in order.
func Answers(pairs []QAPair) []string {
	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = p.Answer
	}
	return out
}
