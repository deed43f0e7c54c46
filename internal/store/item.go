package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/vendysmarket/PUMiNewApp/internal/focus"
)

// ItemRecord is a persisted focus item: the slot metadata from the day
// structure plus the generated content once it exists.
type ItemRecord struct {
	ID               string
	PlanID           string
	DayIndex         int
	OrderIndex       int
	SlotID           string
	ItemType         string
	PracticeType     string
	Kind             string
	Label            string
	Topic            string
	EstimatedMinutes int
	Status           string
	Fallback         bool
	Content          focus.Item
	CreatedAt        time.Time
}

// ItemRepo manages item slots and their generated content.
type ItemRepo interface {
	// Get loads one item by ID.
	Get(ctx context.Context, id string) (*ItemRecord, error)

	// GetBySlot loads an item by its slot ID within a plan.
	GetBySlot(ctx context.Context, planID, slotID string) (*ItemRecord, error)

	// ListByDay returns a day's items ordered by position.
	ListByDay(ctx context.Context, planID string, dayIndex int) ([]*ItemRecord, error)

	// SaveContent stores generated content for an item.
	SaveContent(ctx context.Context, id string, kind focus.Kind, content focus.Item, fallback bool) error

	// Insert adds a new item row (used for auto-generated lessons that
	// have no pre-planned slot).
	Insert(ctx context.Context, rec *ItemRecord) error

	// SetStatus updates an item's status ("pending", "ready", "done").
	SetStatus(ctx context.Context, id, status string) error
}

type itemRepo struct {
	db *sql.DB
}

const itemColumns = `id, plan_id, day_index, order_index, slot_id, item_type, practice_type,
	kind, label, topic, estimated_minutes, status, fallback, content_json, created_at`

func (r *itemRepo) Get(ctx context.Context, id string) (*ItemRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	return scanItem(row)
}

func (r *itemRepo) GetBySlot(ctx context.Context, planID, slotID string) (*ItemRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE plan_id = ? AND slot_id = ?`, planID, slotID)
	return scanItem(row)
}

func (r *itemRepo) ListByDay(ctx context.Context, planID string, dayIndex int) ([]*ItemRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE plan_id = ? AND day_index = ? ORDER BY order_index`,
		planID, dayIndex)
	if err != nil {
		return nil, fmt.Errorf("list day items: %w", err)
	}
	defer rows.Close()

	var items []*ItemRecord
	for rows.Next() {
		rec, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	return items, rows.Err()
}

func (r *itemRepo) SaveContent(ctx context.Context, id string, kind focus.Kind, content focus.Item, fallback bool) error {
	b, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("encode content: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE items SET kind = ?, content_json = ?, fallback = ?, status = 'ready' WHERE id = ?`,
		string(kind), string(b), boolInt(fallback), id)
	if err != nil {
		return fmt.Errorf("save content: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *itemRepo) Insert(ctx context.Context, rec *ItemRecord) error {
	contentJSON := ""
	if rec.Content != nil {
		b, err := json.Marshal(rec.Content)
		if err != nil {
			return fmt.Errorf("encode content: %w", err)
		}
		contentJSON = string(b)
	}
	status := rec.Status
	if status == "" {
		status = "pending"
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO items (id, plan_id, day_index, order_index, slot_id, item_type, practice_type, kind, label, topic, estimated_minutes, status, fallback, content_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.PlanID, rec.DayIndex, rec.OrderIndex, rec.SlotID, rec.ItemType,
		rec.PracticeType, rec.Kind, rec.Label, rec.Topic, rec.EstimatedMinutes,
		status, boolInt(rec.Fallback), contentJSON)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (r *itemRepo) SetStatus(ctx context.Context, id, status string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE items SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("set status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DayItems implements focus.ItemStore: the chain resolver scans a day's
// generated items for the preceding lesson.
func (r *itemRepo) DayItems(ctx context.Context, planID string, day int) ([]focus.StoredItem, error) {
	recs, err := r.ListByDay(ctx, planID, day)
	if err != nil {
		return nil, err
	}
	items := make([]focus.StoredItem, 0, len(recs))
	for _, rec := range recs {
		if rec.Content == nil {
			continue
		}
		items = append(items, focus.StoredItem{
			OrderIndex: rec.OrderIndex,
			Kind:       rec.Kind,
			Item:       rec.Content,
		})
	}
	return items, nil
}

func scanItem(row rowScanner) (*ItemRecord, error) {
	var (
		rec         ItemRecord
		fallback    int
		contentJSON string
	)
	err := row.Scan(&rec.ID, &rec.PlanID, &rec.DayIndex, &rec.OrderIndex, &rec.SlotID,
		&rec.ItemType, &rec.PracticeType, &rec.Kind, &rec.Label, &rec.Topic,
		&rec.EstimatedMinutes, &rec.Status, &fallback, &contentJSON, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan item: %w", err)
	}
	rec.Fallback = fallback != 0
	if contentJSON != "" {
		var content focus.Item
		if err := json.Unmarshal([]byte(contentJSON), &content); err != nil {
			return nil, fmt.Errorf("decode content: %w", err)
		}
		rec.Content = content
	}
	return &rec, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
