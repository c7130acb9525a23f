// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package answer

import (
	"bytes"
	"text/template"
)

// answerPromptTmpl is the instruction sent with every question. It asks for
// a single plain-text paragraph so the answer wraps cleanly in the PDF.
var answerPromptTmpl = template.Must(template.New("answer").Parse(`You are an expert tutor writing content for a lab manual.
Please generate a clear, concise, and well-structured answer in plain text (no bullet points, no line breaks, no markdown) to the following question based on the lab manual content.

Ensure the answer reads like a textbook explanation or model written response.

Question: {{.Question}}

Context: {{.Context}}
`))

// renderPrompt executes the answer prompt template for one question.
func renderPrompt(question, context string) (string, error) {
	var buf bytes.Buffer
	data := struct{ Question, Context string }{Question: question, Context: context}
	if err := answerPromptTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
