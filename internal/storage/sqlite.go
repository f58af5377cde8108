package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/claude/liftcycle/internal/models"
	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// LiteDB is a single-file cycle store for local use and development.
type LiteDB struct {
	db *sql.DB
}

// Compile-time check: *LiteDB satisfies CycleStore.
var _ CycleStore = (*LiteDB)(nil)

// OpenLite opens (or creates) the SQLite database at path.
func OpenLite(path string) (*LiteDB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database dir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS cycles (
		id            TEXT PRIMARY KEY,
		start_date    TEXT NOT NULL,
		template_name TEXT NOT NULL,
		training_days TEXT NOT NULL,
		created_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cycles table: %w", err)
	}

	return &LiteDB{db: db}, nil
}

// Close closes the database.
func (l *LiteDB) Close() error {
	return l.db.Close()
}

func (l *LiteDB) InsertCycle(ctx context.Context, c *models.Cycle) error {
	days, err := encodeDays(c.TrainingDays)
	if err != nil {
		return err
	}
	_, err = l.db.ExecContext(ctx,
		`INSERT INTO cycles (id, start_date, template_name, training_days) VALUES (?, ?, ?, ?)`,
		c.ID.String(), formatLiteTime(c.StartDate), c.TemplateName, string(days))
	if err != nil {
		return fmt.Errorf("inserting cycle: %w", err)
	}
	return nil
}

func (l *LiteDB) GetCycle(ctx context.Context, id uuid.UUID) (*models.Cycle, error) {
	row := l.db.QueryRowContext(ctx,
		`SELECT id, start_date, template_name, training_days FROM cycles WHERE id = ?`,
		id.String())
	c, err := scanLiteCycle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("cycle %s: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (l *LiteDB) ListCycles(ctx context.Context) ([]models.Cycle, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, start_date, template_name, training_days
		 FROM cycles
		 ORDER BY start_date ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying cycles: %w", err)
	}
	defer rows.Close()

	var result []models.Cycle
	for rows.Next() {
		c, err := scanLiteCycle(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	return result, rows.Err()
}

func (l *LiteDB) UpdateCycle(ctx context.Context, c *models.Cycle) error {
	days, err := encodeDays(c.TrainingDays)
	if err != nil {
		return err
	}
	res, err := l.db.ExecContext(ctx,
		`UPDATE cycles SET start_date = ?, template_name = ?, training_days = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		formatLiteTime(c.StartDate), c.TemplateName, string(days), c.ID.String())
	if err != nil {
		return fmt.Errorf("updating cycle %s: %w", c.ID, err)
	}
	return requireAffected(res, c.ID)
}

func (l *LiteDB) DeleteCycle(ctx context.Context, id uuid.UUID) error {
	res, err := l.db.ExecContext(ctx, `DELETE FROM cycles WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("deleting cycle %s: %w", id, err)
	}
	return requireAffected(res, id)
}

func requireAffected(res sql.Result, id uuid.UUID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("cycle %s: %w", id, models.ErrNotFound)
	}
	return nil
}

func scanLiteCycle(row interface{ Scan(dest ...any) error }) (*models.Cycle, error) {
	var id, start, name, days string
	if err := row.Scan(&id, &start, &name, &days); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning cycle: %w", err)
	}

	var c models.Cycle
	var err error
	if c.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("parsing cycle id %q: %w", id, err)
	}
	if c.StartDate, err = parseLiteTime(start); err != nil {
		return nil, fmt.Errorf("parsing start date %q: %w", start, err)
	}
	c.TemplateName = name
	if c.TrainingDays, err = decodeDays([]byte(days)); err != nil {
		return nil, err
	}
	return &c, nil
}
