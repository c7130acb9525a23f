// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/lab-answers/internal/secrets"
	"github.com/pdiddy/lab-answers/pkg/types"
)

// pipelineConfig assembles stage settings from flags, config file, and
// environment, in viper's precedence order.
func pipelineConfig() types.PipelineConfig {
	render := types.DefaultRenderConfig()
	if v := viper.GetFloat64("render.font_size"); v > 0 {
		render.FontSize = v
	}
	if v := viper.GetFloat64("render.margin"); v >= 0 {
		render.Margin = v
	}

	return types.PipelineConfig{
		Conversion: types.ConversionConfig{
			Readability: viper.GetBool("convert.readability"),
		},
		Extraction: types.ExtractionConfig{
			StartMarkers: viper.GetStringSlice("extract.start_markers"),
			EndMarkers:   viper.GetStringSlice("extract.end_markers"),
		},
		Answer: types.AIConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("answer.timeout"),
				UserAgent: "lab-answers/" + version,
			},
			Backend:      types.AnswerBackend(viper.GetString("answer.backend")),
			Model:        viper.GetString("answer.model"),
			APIKey:       secrets.Resolve(viper.GetString("answer.api_key"), secrets.GeminiEnv, secrets.GeminiAPIKey, loadedSecrets),
			ContextLimit: viper.GetInt("answer.context_limit"),
			Concurrency:  viper.GetInt("answer.concurrency"),
		},
		Render: render,
	}
}
