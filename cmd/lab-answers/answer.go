// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/lab-answers/internal/answer"
	"github.com/pdiddy/lab-answers/internal/pipeline"
)

var answerCmd = &cobra.Command{
	Use:   "answer <manual>",
	Short: "Answer every quiz question in a lab manual and write a PDF",
	Long: `Answer converts the manual to text, finds its quiz sections, asks Gemini
for a plain-prose answer to each numbered question, and writes the
question/answer pairs to a PDF.

A question whose answer cannot be generated is kept with the answer
"Error generating answer." so numbering stays aligned. The run stops without
writing anything when no quiz section or question is found.

The API key is taken from --api-key, then GEMINI_API_KEY (also read from
.env), then .secrets/gemini-api-key.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnswer,
}

func runAnswer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := pipelineConfig()
	backend, closeBackend, err := answer.NewBackend(ctx, cfg.Answer, os.Stderr)
	if err != nil {
		return err
	}
	defer closeBackend()

	driver, err := pipeline.New(cfg, backend, os.Stdout)
	if err != nil {
		return err
	}

	output := viper.GetString("render.output")
	sum, err := driver.Run(ctx, args[0], output)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "\n%d section(s), %d question(s), %d failed, %d page(s) -> %s\n",
		sum.Sections, sum.Questions, sum.Failed, sum.Pages, sum.Output)
	return nil
}

func init() {
	f := answerCmd.Flags()
	f.StringP("output", "o", "answered.pdf", "output PDF path")
	f.String("model", answer.DefaultModel, "Gemini model name")
	f.String("backend", "rest", "answer backend: rest or sdk")
	f.String("api-key", "", "Gemini API key")
	f.Int("context-limit", answer.DefaultContextLimit, "characters of manual text sent with each question")
	f.Int("concurrency", 1, "questions answered in parallel")
	f.Duration("timeout", 0, "per-request HTTP timeout (default 60s)")
	f.Float64("font-size", 12, "body font size in points")
	f.Float64("margin", 50, "page margin in points")

	for key, flag := range map[string]string{
		"render.output":        "output",
		"answer.model":         "model",
		"answer.backend":       "backend",
		"answer.api_key":       "api-key",
		"answer.context_limit": "context-limit",
		"answer.concurrency":   "concurrency",
		"answer.timeout":       "timeout",
		"render.font_size":     "font-size",
		"render.margin":        "margin",
	} {
		if err := viper.BindPFlag(key, f.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(answerCmd)
}
