package llm

import "fmt"

// ErrRateLimit indicates the provider rejected the call for quota or rate
// reasons. RetryAfter is in seconds when the provider supplied it, else 0.
type ErrRateLimit struct {
	RetryAfter int
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %ds: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the model returned output that could not be
// used: empty content, unparseable JSON, or JSON that failed schema
// validation. Raw holds the offending output, truncated for logging.
type ErrInvalidResponse struct {
	Reason string
	Raw    string
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid model response: %s", e.Reason)
}

// ErrProviderUnavailable indicates the backend could not serve the call at
// all: network failure, 5xx, overload, or an auth problem.
type ErrProviderUnavailable struct {
	Provider string
	Err      error
}

func (e *ErrProviderUnavailable) Error() string {
	return fmt.Sprintf("provider %s unavailable: %v", e.Provider, e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates generation stopped because the output hit
// the token ceiling, so the content is truncated and unusable as JSON.
type ErrMaxTokensExceeded struct {
	Limit int
}

func (e *ErrMaxTokensExceeded) Error() string {
	return fmt.Sprintf("response exceeded max tokens (%d)", e.Limit)
}
