package llm

import "strings"

// pricePerMTok holds USD prices per million input/output tokens. Prices
// drift; treat the estimates as approximate. Unknown models cost zero.
type modelPrice struct {
	Input  float64
	Output float64
}

var pricing = map[string]modelPrice{
	// Anthropic
	"claude-3-5-haiku-latest":    {0.8, 4},
	"claude-3-5-haiku-20241022":  {0.8, 4},
	"claude-3-5-sonnet-latest":   {3, 15},
	"claude-3-7-sonnet-latest":   {3, 15},
	"claude-haiku-4-5-20251001":  {1, 5},
	"claude-sonnet-4-20250514":   {3, 15},
	"claude-sonnet-4-5-20250929": {3, 15},
	"claude-opus-4-20250514":     {15, 75},

	// OpenAI
	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1":      {2, 8},
	"gpt-4.1-mini": {0.4, 1.6},
	"o3-mini":      {1.1, 4.4},

	// Google
	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-lite": {0.075, 0.3},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-pro":        {1.25, 10},
}

// EstimateCost returns the approximate USD cost of a call. OpenRouter model
// IDs carry a vendor prefix ("anthropic/claude-..."), which is stripped
// before lookup.
func EstimateCost(model string, usage Usage) float64 {
	if i := strings.LastIndex(model, "/"); i >= 0 {
		model = model[i+1:]
	}
	p, ok := pricing[model]
	if !ok {
		return 0
	}
	return float64(usage.InputTokens)*p.Input/1e6 + float64(usage.OutputTokens)*p.Output/1e6
}
