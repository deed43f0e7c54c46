// Package llm abstracts over hosted language-model APIs behind a single
// Provider interface. Focus item generation, day planning and outline
// building all talk to the same interface; the concrete backend is chosen
// from configuration at startup.
package llm

import "context"

// Role identifies the author of a message in a conversation.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single turn in a conversation.
type Message struct {
	Role    Role
	Content string
}

// Request describes a generation call. System carries the instructions,
// Messages the conversation so far. When Schema is set the provider asks
// for structured output and the raw text is validated against the schema
// before being returned.
type Request struct {
	System      string
	Messages    []Message
	Schema      *Schema
	MaxTokens   int
	Temperature float64
}

// Usage reports token consumption for a single call.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Response is the result of a generation call. StopReason is "end" for a
// normal finish and "max_tokens" when output was truncated.
type Response struct {
	Content    string
	Usage      Usage
	Model      string
	StopReason string
}

// Provider is the minimal surface a language-model backend must offer.
// Implementations must be safe for concurrent use.
type Provider interface {
	// Generate sends a request and returns the model's response.
	// Errors are one of the typed errors in errors.go so callers can
	// distinguish transient failures from malformed output.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the identifier of the underlying model, used for
	// event logging and cost accounting.
	ModelID() string
}
