package main

import (
	"strings"

	"github.com/spf13/cobra"

	"syllabus-analyzer/internal/shared/config"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagProvider string
	flagModel    string
	flagAPIKey   string
)

var rootCmd = &cobra.Command{
	Use:   "tosctl",
	Short: "Map exam questions to syllabus learning outcomes and Bloom's levels",
	Long: "tosctl sends a syllabus and an exam to a generative AI model, then shows each\n" +
		"question's topic, intended learning outcome, Bloom's level and a suggested\n" +
		"Table of Specifications row.",
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagProvider, "provider", "", "LLM provider: gemini or openai (default $LLM_PROVIDER)")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "LLM model (default $LLM_MODEL or the provider default)")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "API key (default $AI_API_KEY / $API_KEY)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig() config.Config {
	cfg := config.Load()
	if p := strings.ToLower(strings.TrimSpace(flagProvider)); p != "" && p != cfg.LLMProvider {
		cfg.LLMProvider = p
		cfg.LLMModel = config.DefaultModel(p)
		cfg.APIKey = config.APIKeyFor(p)
	}
	if m := strings.TrimSpace(flagModel); m != "" {
		cfg.LLMModel = m
	}
	if k := strings.TrimSpace(flagAPIKey); k != "" {
		cfg.APIKey = k
	}
	return cfg
}
