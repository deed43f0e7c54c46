package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vendysmarket/PUMiNewApp/internal/llm"
)

// PurposeStats aggregates LLM usage for one request purpose.
type PurposeStats struct {
	Purpose      string
	Requests     int
	Errors       int
	InputTokens  int64
	OutputTokens int64
	CostUSD      float64
}

// EventRepo records and aggregates LLM request events. It satisfies
// llm.EventRecorder so the logging provider can write through it.
type EventRepo interface {
	llm.EventRecorder

	// StatsByPurpose aggregates usage per purpose, highest cost first.
	StatsByPurpose(ctx context.Context) ([]PurposeStats, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) RecordLLMRequest(ctx context.Context, ev llm.RequestEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_events (purpose, model, input_tokens, output_tokens, latency_ms, cost_usd, error)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ev.Purpose, ev.Model, ev.InputTokens, ev.OutputTokens, ev.LatencyMS, ev.CostUSD, ev.Error)
	if err != nil {
		return fmt.Errorf("record llm event: %w", err)
	}
	return nil
}

func (r *eventRepo) StatsByPurpose(ctx context.Context) ([]PurposeStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT purpose,
		       COUNT(*),
		       SUM(CASE WHEN error != '' THEN 1 ELSE 0 END),
		       SUM(input_tokens),
		       SUM(output_tokens),
		       SUM(cost_usd)
		FROM llm_events
		GROUP BY purpose
		ORDER BY SUM(cost_usd) DESC`)
	if err != nil {
		return nil, fmt.Errorf("query llm stats: %w", err)
	}
	defer rows.Close()

	var stats []PurposeStats
	for rows.Next() {
		var s PurposeStats
		if err := rows.Scan(&s.Purpose, &s.Requests, &s.Errors, &s.InputTokens, &s.OutputTokens, &s.CostUSD); err != nil {
			return nil, fmt.Errorf("scan llm stats: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
