package llm

import "testing"

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatal("anthropic without API key must fail validation")
	}

	cfg.Anthropic.APIKey = "sk-test"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("mock provider must always validate, got %v", err)
	}

	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown provider must fail validation")
	}
}

func TestDiscoverConfigFallsBackToMock(t *testing.T) {
	t.Setenv("PUMI_LLM_PROVIDER", "")
	t.Setenv("PUMI_ANTHROPIC_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("PUMI_OPENAI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("PUMI_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("PUMI_OPENROUTER_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	cfg := DiscoverConfig()
	if cfg.Provider != "mock" {
		t.Fatalf("expected mock fallback, got %q", cfg.Provider)
	}
}

func TestDiscoverConfigPrefersAnthropicKey(t *testing.T) {
	t.Setenv("PUMI_LLM_PROVIDER", "")
	t.Setenv("PUMI_ANTHROPIC_API_KEY", "sk-a")
	t.Setenv("PUMI_ANTHROPIC_MODEL", "claude-haiku")

	cfg := DiscoverConfig()
	if cfg.Provider != "anthropic" {
		t.Fatalf("expected anthropic, got %q", cfg.Provider)
	}
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Fatalf("model override not applied: %q", cfg.Anthropic.Model)
	}
}

func TestEstimateCost(t *testing.T) {
	usage := Usage{InputTokens: 1_000_000, OutputTokens: 1_000_000}
	if got := EstimateCost("gpt-4o-mini", usage); got != 0.75 {
		t.Fatalf("gpt-4o-mini cost = %v, want 0.75", got)
	}
	// vendor prefix stripped for OpenRouter IDs
	if got := EstimateCost("openai/gpt-4o-mini", usage); got != 0.75 {
		t.Fatalf("prefixed cost = %v, want 0.75", got)
	}
	if got := EstimateCost("unknown-model", usage); got != 0 {
		t.Fatalf("unknown model cost = %v, want 0", got)
	}
}
