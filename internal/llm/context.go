package llm

import "context"

type purposeKey struct{}

// WithPurpose labels the context with what the call is for ("focus_item",
// "day_structure", "week_outline", ...). The label ends up on the logged
// request event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the purpose label, or "unknown" when none was set.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}
