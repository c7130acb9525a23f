// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns an input document (PDF, DOCX, ODT, RTF, HTML or
// plain text) into the raw text the quiz extractor scans.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"

	"github.com/pdiddy/lab-answers/pkg/types"
)

// Converter transforms a document on disk into plain text.
type Converter interface {
	// Convert reads the document at path and returns its text content.
	Convert(path string) (string, error)
}

// docconvConvert is the docconv entry point. Package-level var for test
// substitution, since the real call shells out to pdftotext and friends.
var docconvConvert = func(r io.Reader, mimeType string, readability bool) (string, error) {
	res, err := docconv.Convert(r, mimeType, readability)
	if err != nil {
		return "", err
	}
	return res.Body, nil
}

// DocconvConverter extracts text with code.sajari.com/docconv. Files with a
// .txt extension are read as-is.
type DocconvConverter struct {
	readability bool
}

// NewDocconvConverter creates a converter from the conversion settings.
func NewDocconvConverter(cfg types.ConversionConfig) *DocconvConverter {
	return &DocconvConverter{readability: cfg.Readability}
}

// Convert reads the document at path and returns its text. An empty result
// is an error: nothing downstream can work without text.
func (d *DocconvConverter) Convert(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".txt" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return string(data), nil
	}

	mimeType := docconv.MimeTypeByExtension(path)
	if mimeType == "" || mimeType == "application/octet-stream" {
		return "", fmt.Errorf("unsupported document type %q for %s", ext, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	body, err := docconvConvert(f, mimeType, d.readability)
	if err != nil {
		return "", fmt.Errorf("converting %s (%s): %w", path, mimeType, err)
	}
	if strings.TrimSpace(body) == "" {
		return "", fmt.Errorf("no text extracted from %s", path)
	}
	return body, nil
}
