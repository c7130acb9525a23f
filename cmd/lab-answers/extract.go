// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/lab-answers/internal/convert"
	"github.com/pdiddy/lab-answers/internal/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract <manual>",
	Short: "Print the quiz sections and questions found in a lab manual",
	Long: `Extract converts the manual to text and prints the quiz sections and
numbered questions it finds as YAML. No API calls are made and no files
are written.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()

	m, err := extract.NewSectionMatcher(cfg.Extraction.StartMarkers, cfg.Extraction.EndMarkers)
	if err != nil {
		return err
	}

	text, err := convert.NewDocconvConverter(cfg.Conversion).Convert(args[0])
	if err != nil {
		return err
	}

	res, err := extract.Questions(text, m, os.Stderr)
	if err != nil {
		return err
	}
	return writeYAML(os.Stdout, res)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
