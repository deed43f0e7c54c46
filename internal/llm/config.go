package llm

import (
	"fmt"
	"os"
)

// Config selects and configures the LLM backend.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig

	Retry RetryConfig
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// DefaultConfig returns the config used when nothing is set in the
// environment: Anthropic with a small fast model.
func DefaultConfig() Config {
	return Config{
		Provider: "anthropic",
		Anthropic: AnthropicConfig{
			Model: "claude-3-5-haiku-latest",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.0-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "anthropic/claude-3.5-haiku",
		},
		Retry: DefaultRetryConfig(),
	}
}

// ConfigFromEnv layers PUMI_* environment variables over the defaults.
// Provider API keys also fall back to the vendor-conventional variables
// (ANTHROPIC_API_KEY etc.) so existing shells keep working.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PUMI_LLM_PROVIDER"); v != "" {
		cfg.Provider = v
	}

	cfg.Anthropic.APIKey = firstEnv("PUMI_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	if v := os.Getenv("PUMI_ANTHROPIC_MODEL"); v != "" {
		cfg.Anthropic.Model = v
	}

	cfg.OpenAI.APIKey = firstEnv("PUMI_OPENAI_API_KEY", "OPENAI_API_KEY")
	if v := os.Getenv("PUMI_OPENAI_MODEL"); v != "" {
		cfg.OpenAI.Model = v
	}
	if v := os.Getenv("PUMI_OPENAI_BASE_URL"); v != "" {
		cfg.OpenAI.BaseURL = v
	}

	cfg.Gemini.APIKey = firstEnv("PUMI_GEMINI_API_KEY", "GEMINI_API_KEY")
	if v := os.Getenv("PUMI_GEMINI_MODEL"); v != "" {
		cfg.Gemini.Model = v
	}

	cfg.OpenRouter.APIKey = firstEnv("PUMI_OPENROUTER_API_KEY", "OPENROUTER_API_KEY")
	if v := os.Getenv("PUMI_OPENROUTER_MODEL"); v != "" {
		cfg.OpenRouter.Model = v
	}
	if v := os.Getenv("PUMI_OPENROUTER_BASE_URL"); v != "" {
		cfg.OpenRouter.BaseURL = v
	}

	return cfg
}

// DiscoverConfig returns ConfigFromEnv, but when no provider was selected
// explicitly it picks the first provider that has an API key available.
// With no keys at all it falls back to the mock provider so the CLI stays
// usable offline.
func DiscoverConfig() Config {
	cfg := ConfigFromEnv()
	if os.Getenv("PUMI_LLM_PROVIDER") != "" {
		return cfg
	}

	switch {
	case cfg.Anthropic.APIKey != "":
		cfg.Provider = "anthropic"
	case cfg.OpenAI.APIKey != "":
		cfg.Provider = "openai"
	case cfg.Gemini.APIKey != "":
		cfg.Provider = "gemini"
	case cfg.OpenRouter.APIKey != "":
		cfg.Provider = "openrouter"
	default:
		cfg.Provider = "mock"
	}
	return cfg
}

// Validate checks that the selected provider has what it needs.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("anthropic provider selected but no API key set (PUMI_ANTHROPIC_API_KEY)")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("openai provider selected but no API key set (PUMI_OPENAI_API_KEY)")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("gemini provider selected but no API key set (PUMI_GEMINI_API_KEY)")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("openrouter provider selected but no API key set (PUMI_OPENROUTER_API_KEY)")
		}
	case "mock":
		// always fine
	default:
		return fmt.Errorf("unknown LLM provider %q", c.Provider)
	}
	return nil
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
