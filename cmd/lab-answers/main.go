// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the lab-answers CLI. It reads a lab
// manual, answers the numbered quiz questions with Gemini, and writes the
// question/answer pairs to a PDF.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/lab-answers/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the lab-answers CLI.
var rootCmd = &cobra.Command{
	Use:   "lab-answers",
	Short: "Answer the quiz questions in a lab manual",
	Long: `lab-answers extracts the quiz sections of a lab manual, splits them into
numbered questions, asks Gemini for a short prose answer to each, and renders
the results as a paginated PDF.

Use "extract" to preview the questions without calling the API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := secrets.LoadDotenv(".env"); err != nil {
			return err
		}
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./lab-answers.yaml or ~/.config/lab-answers/config.yaml)")

	viper.SetDefault("answer.backend", "rest")
	viper.SetDefault("answer.model", "gemini-2.0-flash")
	viper.SetDefault("answer.context_limit", 10000)
	viper.SetDefault("answer.concurrency", 1)
	viper.SetDefault("answer.timeout", "60s")
	viper.SetDefault("render.output", "answered.pdf")
	viper.SetDefault("render.font_size", 12)
	viper.SetDefault("render.margin", 50)
	viper.SetDefault("convert.readability", false)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("lab-answers")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "lab-answers"))
		}
	}

	// LAB_ANSWERS_ANSWER_MODEL overrides answer.model.
	viper.SetEnvPrefix("LAB_ANSWERS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
