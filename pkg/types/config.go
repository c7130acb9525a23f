package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "lab-answers/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ConversionConfig holds settings for turning the input document into text.
type ConversionConfig struct {
	// Readability enables docconv's readability filter for HTML inputs.
	Readability bool `json:"readability" yaml:"readability"`
}

// ExtractionConfig holds extra quiz marker phrases on top of the built-in ones.
type ExtractionConfig struct {
	// StartMarkers are literal phrases that open a quiz section.
	StartMarkers []string `json:"start_markers,omitempty" yaml:"start_markers,omitempty"`

	// EndMarkers are literal phrases that close a quiz section.
	EndMarkers []string `json:"end_markers,omitempty" yaml:"end_markers,omitempty"`
}

// AnswerBackend identifies how the knowledge service is reached.
type AnswerBackend string

const (
	// BackendREST posts JSON to the generateContent endpoint directly.
	BackendREST AnswerBackend = "rest"
	// BackendSDK goes through the generative-ai-go client.
	BackendSDK AnswerBackend = "sdk"
)

// AIConfig holds settings for the answer stage.
type AIConfig struct {
	HTTPConfig `yaml:",inline"`

	// Backend selects the client implementation: rest or sdk.
	Backend AnswerBackend `json:"backend" yaml:"backend"`

	// Model is the Gemini model identifier (e.g. "gemini-2.0-flash").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the Gemini API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// ContextLimit caps how many characters of manual text accompany each
	// question (default 10000).
	ContextLimit int `json:"context_limit" yaml:"context_limit"`

	// Concurrency bounds in-flight requests. Values below 2 resolve
	// questions one at a time.
	Concurrency int `json:"concurrency" yaml:"concurrency"`
}

// RenderConfig holds page geometry and typography for the output PDF.
type RenderConfig struct {
	// PageWidth and PageHeight are in points.
	PageWidth  float64 `json:"page_width" yaml:"page_width"`
	PageHeight float64 `json:"page_height" yaml:"page_height"`

	// Margin applies to all four edges, in points.
	Margin float64 `json:"margin" yaml:"margin"`

	// FontFamily names a PDF core font (e.g. "Helvetica").
	FontFamily string `json:"font_family" yaml:"font_family"`

	// FontSize is in points.
	FontSize float64 `json:"font_size" yaml:"font_size"`

	// LineSpacing multiplies FontSize to give the line height.
	LineSpacing float64 `json:"line_spacing" yaml:"line_spacing"`

	// Title is written to the PDF metadata.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

// DefaultRenderConfig returns an A4 layout with 50pt margins and 12pt
// Helvetica at 1.5 line spacing.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		PageWidth:   595.28,
		PageHeight:  841.89,
		Margin:      50,
		FontFamily:  "Helvetica",
		FontSize:    12,
		LineSpacing: 1.5,
		Title:       "Lab Manual Answers",
	}
}

// LineHeight returns the vertical advance of one line.
func (c RenderConfig) LineHeight() float64 {
	return c.FontSize * c.LineSpacing
}

// UsableWidth returns the page width minus left and right margins.
func (c RenderConfig) UsableWidth() float64 {
	return c.PageWidth - 2*c.Margin
}

// PipelineConfig groups all stage configurations for a run.
type PipelineConfig struct {
	Conversion ConversionConfig `json:"conversion" yaml:"conversion"`
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Answer     AIConfig         `json:"answer" yaml:"answer"`
	Render     RenderConfig     `json:"render" yaml:"render"`
}
