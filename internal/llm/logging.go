package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// RequestEvent is one recorded LLM call. Every call is recorded, including
// failed ones, so cost and failure rates can be inspected later.
type RequestEvent struct {
	Purpose      string
	Model        string
	InputTokens  int
	OutputTokens int
	LatencyMS    int64
	CostUSD      float64
	Error        string
}

// EventRecorder persists request events. The sqlite store implements this;
// tests use an in-memory recorder.
type EventRecorder interface {
	RecordLLMRequest(ctx context.Context, ev RequestEvent) error
}

// LoggingProvider is a decorator that records every LLM request as an
// event and emits a structured log line.
type LoggingProvider struct {
	inner Provider
	rec   EventRecorder
	log   *slog.Logger
}

// WithLogging wraps a Provider with event recording. rec may be nil, in
// which case only log output is produced.
func WithLogging(p Provider, rec EventRecorder, log *slog.Logger) Provider {
	if log == nil {
		log = slog.Default()
	}
	return &LoggingProvider{inner: p, rec: rec, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start).Milliseconds()

	ev := RequestEvent{
		Purpose:   purpose,
		Model:     l.inner.ModelID(),
		LatencyMS: latency,
	}
	if resp != nil {
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.CostUSD = EstimateCost(l.inner.ModelID(), resp.Usage)
	}
	if err != nil {
		ev.Error = err.Error()
		l.log.Warn("llm request failed",
			"purpose", purpose, "model", ev.Model, "latency_ms", latency, "error", err)
	} else {
		l.log.Debug("llm request",
			"purpose", purpose, "model", ev.Model, "latency_ms", latency,
			"input_tokens", ev.InputTokens, "output_tokens", ev.OutputTokens)
	}

	if l.rec != nil {
		if recErr := l.rec.RecordLLMRequest(ctx, ev); recErr != nil {
			l.log.Warn("record llm event", "error", recErr)
		}
	}

	dumpDebug(purpose, req, resp, err)
	return resp, err
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

// dumpDebug writes the full request and response to disk when
// PUMI_LLM_DEBUG_DIR is set. Useful when prompt changes misbehave.
func dumpDebug(purpose string, req Request, resp *Response, err error) {
	dir := os.Getenv("PUMI_LLM_DEBUG_DIR")
	if dir == "" {
		return
	}
	if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
		return
	}

	payload := map[string]any{
		"purpose": purpose,
		"system":  req.System,
		"messages": func() []map[string]string {
			out := make([]map[string]string, 0, len(req.Messages))
			for _, m := range req.Messages {
				out = append(out, map[string]string{"role": string(m.Role), "content": m.Content})
			}
			return out
		}(),
	}
	if resp != nil {
		payload["response"] = resp.Content
	}
	if err != nil {
		payload["error"] = err.Error()
	}

	data, mErr := json.MarshalIndent(payload, "", "  ")
	if mErr != nil {
		return
	}
	name := fmt.Sprintf("%s-%d.json", purpose, time.Now().UnixNano())
	_ = os.WriteFile(filepath.Join(dir, name), data, 0o644)
}
