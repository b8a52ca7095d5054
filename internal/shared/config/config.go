package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// EnvProduction is what ENV=prod and ENV=production normalize to.
const EnvProduction = "production"

// MissingKeyBanner is shown by every surface while AIEnabled is false.
const MissingKeyBanner = "Configuration Required: AI features are disabled. Please set up your API_KEY."

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	LLMProvider     string
	LLMModel        string
	APIKey          string
	LLMTimeout      time.Duration
	RateLimitRPS    float64
	RateLimitBurst  int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	provider := normalizeProvider(getEnv("LLM_PROVIDER", ProviderGemini))
	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		LLMProvider:     provider,
		LLMModel:        getEnv("LLM_MODEL", DefaultModel(provider)),
		APIKey:          APIKeyFor(provider),
		LLMTimeout:      getDuration("LLM_TIMEOUT_SECONDS", 120*time.Second),
		RateLimitRPS:    getFloat("RATE_LIMIT_RPS", 0.5),
		RateLimitBurst:  getInt("RATE_LIMIT_BURST", 5),
	}
	if !cfg.AIEnabled() {
		log.Printf("config: no API key for provider %s; AI features are disabled", provider)
	}
	return cfg
}

// AIEnabled reports whether a credential for the AI provider is configured.
// A missing key puts the app in degraded mode instead of failing startup.
func (c Config) AIEnabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// DefaultModel returns the model used when LLM_MODEL is unset.
func DefaultModel(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	default:
		return "gemini-2.5-flash"
	}
}

// APIKeyFor returns the first non-empty credential variable for provider.
func APIKeyFor(provider string) string {
	keys := []string{"AI_API_KEY", "API_KEY"}
	switch provider {
	case ProviderOpenAI:
		keys = append(keys, "OPENAI_API_KEY")
	default:
		keys = append(keys, "GEMINI_API_KEY", "GOOGLE_API_KEY")
	}
	for _, key := range keys {
		if val := strings.TrimSpace(os.Getenv(key)); val != "" {
			return val
		}
	}
	return ""
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return def
	}
	return time.Duration(parsed) * time.Second
}

func getFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil || parsed < 0 {
		return def
	}
	return parsed
}

func getInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// IsProduction reports whether the service runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return EnvProduction
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "openai":
		return ProviderOpenAI
	default:
		return ProviderGemini
	}
}
