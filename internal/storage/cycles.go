package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/claude/liftcycle/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CycleStore persists cycles keyed by their ID. Both *DB (Postgres) and
// *LiteDB (SQLite) satisfy it.
type CycleStore interface {
	InsertCycle(ctx context.Context, c *models.Cycle) error
	GetCycle(ctx context.Context, id uuid.UUID) (*models.Cycle, error)
	ListCycles(ctx context.Context) ([]models.Cycle, error)
	UpdateCycle(ctx context.Context, c *models.Cycle) error
	DeleteCycle(ctx context.Context, id uuid.UUID) error
}

// Compile-time check: *DB satisfies CycleStore.
var _ CycleStore = (*DB)(nil)

// InsertCycle stores a new cycle.
func (db *DB) InsertCycle(ctx context.Context, c *models.Cycle) error {
	days, err := encodeDays(c.TrainingDays)
	if err != nil {
		return err
	}
	_, err = db.Pool.Exec(ctx,
		`INSERT INTO cycles (id, start_date, template_name, training_days)
		 VALUES ($1, $2, $3, $4)`,
		c.ID, c.StartDate, c.TemplateName, days)
	if err != nil {
		return fmt.Errorf("inserting cycle: %w", err)
	}
	return nil
}

// GetCycle retrieves a single cycle by ID.
func (db *DB) GetCycle(ctx context.Context, id uuid.UUID) (*models.Cycle, error) {
	var c models.Cycle
	var days []byte
	err := db.Pool.QueryRow(ctx,
		`SELECT id, start_date, template_name, training_days FROM cycles WHERE id = $1`,
		id).Scan(&c.ID, &c.StartDate, &c.TemplateName, &days)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("cycle %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("querying cycle: %w", err)
	}
	if c.TrainingDays, err = decodeDays(days); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCycles returns every cycle, oldest start date first.
func (db *DB) ListCycles(ctx context.Context) ([]models.Cycle, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, start_date, template_name, training_days
		 FROM cycles
		 ORDER BY start_date ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying cycles: %w", err)
	}
	defer rows.Close()

	var result []models.Cycle
	for rows.Next() {
		var c models.Cycle
		var days []byte
		if err := rows.Scan(&c.ID, &c.StartDate, &c.TemplateName, &days); err != nil {
			return nil, fmt.Errorf("scanning cycle: %w", err)
		}
		if c.TrainingDays, err = decodeDays(days); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// UpdateCycle replaces the stored day tree of an existing cycle.
func (db *DB) UpdateCycle(ctx context.Context, c *models.Cycle) error {
	days, err := encodeDays(c.TrainingDays)
	if err != nil {
		return err
	}
	tag, err := db.Pool.Exec(ctx,
		`UPDATE cycles SET start_date = $2, template_name = $3, training_days = $4, updated_at = NOW()
		 WHERE id = $1`,
		c.ID, c.StartDate, c.TemplateName, days)
	if err != nil {
		return fmt.Errorf("updating cycle %s: %w", c.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cycle %s: %w", c.ID, models.ErrNotFound)
	}
	return nil
}

// DeleteCycle removes a cycle.
func (db *DB) DeleteCycle(ctx context.Context, id uuid.UUID) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM cycles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting cycle %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cycle %s: %w", id, models.ErrNotFound)
	}
	return nil
}

func encodeDays(days []models.TrainingDay) ([]byte, error) {
	if days == nil {
		days = []models.TrainingDay{}
	}
	data, err := json.Marshal(days)
	if err != nil {
		return nil, fmt.Errorf("encoding training days: %w", err)
	}
	return data, nil
}

func decodeDays(data []byte) ([]models.TrainingDay, error) {
	var days []models.TrainingDay
	if err := json.Unmarshal(data, &days); err != nil {
		return nil, fmt.Errorf("decoding training days: %w", err)
	}
	return days, nil
}

// liteTimeLayout is fixed-width so stored timestamps sort lexically.
const liteTimeLayout = "2006-01-02T15:04:05.000000000Z"

func formatLiteTime(t time.Time) string {
	return t.UTC().Format(liteTimeLayout)
}

func parseLiteTime(s string) (time.Time, error) {
	return time.Parse(liteTimeLayout, s)
}
