package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vendysmarket/PUMiNewApp/internal/focus"
	"github.com/vendysmarket/PUMiNewApp/internal/planner"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Plan is a persisted learning plan: goal, knobs, and the week outline
// stored as day rows.
type Plan struct {
	ID            string
	Title         string
	UserGoal      string
	Lang          string
	FocusType     string
	Domain        string
	Level         string
	MinutesPerDay int
	DurationDays  int
	Settings      *focus.Settings
	CreatedAt     time.Time
}

// PlanRepo manages plans and their day rows.
type PlanRepo interface {
	// Create stores a plan with its outline days. The plan ID is
	// assigned when empty.
	Create(ctx context.Context, plan *Plan, outline *planner.Outline) error

	// Get loads a plan by ID.
	Get(ctx context.Context, id string) (*Plan, error)

	// List returns all plans, newest first.
	List(ctx context.Context) ([]*Plan, error)

	// Days returns the outline days of a plan in order.
	Days(ctx context.Context, planID string) ([]planner.Day, error)

	// SaveDayStructure replaces a day's title/intro and its item slots.
	SaveDayStructure(ctx context.Context, planID string, day *planner.Day) error

	// Delete removes a plan and everything under it.
	Delete(ctx context.Context, id string) error
}

type planRepo struct {
	db *sql.DB
}

func (r *planRepo) Create(ctx context.Context, plan *Plan, outline *planner.Outline) error {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	settingsJSON, err := marshalSettings(plan.Settings)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO plans (id, title, user_goal, lang, focus_type, domain, level, minutes_per_day, duration_days, settings_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		plan.ID, plan.Title, plan.UserGoal, plan.Lang, plan.FocusType,
		plan.Domain, plan.Level, plan.MinutesPerDay, plan.DurationDays, settingsJSON)
	if err != nil {
		return fmt.Errorf("insert plan: %w", err)
	}

	if outline != nil {
		for _, day := range outline.Days {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO days (plan_id, day_index, title, intro) VALUES (?, ?, ?, ?)`,
				plan.ID, day.Index, day.Title, day.Intro)
			if err != nil {
				return fmt.Errorf("insert day %d: %w", day.Index, err)
			}
		}
	}

	return tx.Commit()
}

func (r *planRepo) Get(ctx context.Context, id string) (*Plan, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, user_goal, lang, focus_type, domain, level, minutes_per_day, duration_days, settings_json, created_at
		FROM plans WHERE id = ?`, id)
	return scanPlan(row)
}

func (r *planRepo) List(ctx context.Context) ([]*Plan, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, user_goal, lang, focus_type, domain, level, minutes_per_day, duration_days, settings_json, created_at
		FROM plans ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var plans []*Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (r *planRepo) Days(ctx context.Context, planID string) ([]planner.Day, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT day_index, title, intro FROM days WHERE plan_id = ? ORDER BY day_index`, planID)
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}
	defer rows.Close()

	var days []planner.Day
	for rows.Next() {
		var d planner.Day
		if err := rows.Scan(&d.Index, &d.Title, &d.Intro); err != nil {
			return nil, fmt.Errorf("scan day: %w", err)
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

func (r *planRepo) SaveDayStructure(ctx context.Context, planID string, day *planner.Day) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO days (plan_id, day_index, title, intro) VALUES (?, ?, ?, ?)
		ON CONFLICT (plan_id, day_index) DO UPDATE SET title = excluded.title, intro = excluded.intro`,
		planID, day.Index, day.Title, day.Intro)
	if err != nil {
		return fmt.Errorf("upsert day: %w", err)
	}

	// Re-generating a day replaces its slots; generated content for
	// stale slots goes with them.
	_, err = tx.ExecContext(ctx, `DELETE FROM items WHERE plan_id = ? AND day_index = ?`, planID, day.Index)
	if err != nil {
		return fmt.Errorf("clear day items: %w", err)
	}

	for i, item := range day.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO items (id, plan_id, day_index, order_index, slot_id, item_type, practice_type, label, topic, estimated_minutes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), planID, day.Index, i, item.ID, item.Type,
			item.PracticeType, item.Label, item.Topic, item.EstimatedMinutes)
		if err != nil {
			return fmt.Errorf("insert item slot %s: %w", item.ID, err)
		}
	}

	return tx.Commit()
}

func (r *planRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (*Plan, error) {
	var (
		p            Plan
		settingsJSON string
	)
	err := row.Scan(&p.ID, &p.Title, &p.UserGoal, &p.Lang, &p.FocusType,
		&p.Domain, &p.Level, &p.MinutesPerDay, &p.DurationDays, &settingsJSON, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan plan: %w", err)
	}

	if settingsJSON != "" && settingsJSON != "{}" {
		var s focus.Settings
		if err := json.Unmarshal([]byte(settingsJSON), &s); err != nil {
			return nil, fmt.Errorf("decode settings: %w", err)
		}
		p.Settings = &s
	}
	return &p, nil
}

func marshalSettings(s *focus.Settings) (string, error) {
	if s == nil {
		return "{}", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encode settings: %w", err)
	}
	return string(b), nil
}
