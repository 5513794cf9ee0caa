package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is a durable history store. Parameters and statistics are stored
// as JSON columns; rows beyond the keep limit are pruned on insert.
type SQLite struct {
	db   *sql.DB
	keep int
}

// NewSQLite opens (creating if needed) a history database at path, keeping
// at most keep records. A non-positive keep falls back to DefaultKeep.
func NewSQLite(path string, keep int) (*SQLite, error) {
	if keep <= 0 {
		keep = DefaultKeep
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db, keep: keep}, nil
}

func (s *SQLite) Record(ctx context.Context, rec Record) error {
	params, err := json.Marshal(rec.Parameters)
	if err != nil {
		return fmt.Errorf("marshal parameters: %w", err)
	}
	stats, err := json.Marshal(rec.Statistics)
	if err != nil {
		return fmt.Errorf("marshal statistics: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO simulations (id, created_at, parameters, statistics)
		VALUES (?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt, string(params), string(stats),
	)
	if err != nil {
		return err
	}

	// Keep the store bounded: drop everything older than the newest keep rows.
	_, err = s.db.ExecContext(ctx, `
		DELETE FROM simulations WHERE id NOT IN (
			SELECT id FROM simulations ORDER BY created_at DESC LIMIT ?
		)`, s.keep)
	return err
}

func (s *SQLite) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 || limit > s.keep {
		limit = s.keep
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, parameters, statistics
		FROM simulations ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var params, stats string
		if err := rows.Scan(&rec.ID, &rec.CreatedAt, &params, &stats); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(params), &rec.Parameters); err != nil {
			return nil, fmt.Errorf("record %s: unmarshal parameters: %w", rec.ID, err)
		}
		if err := json.Unmarshal([]byte(stats), &rec.Statistics); err != nil {
			return nil, fmt.Errorf("record %s: unmarshal statistics: %w", rec.ID, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// Compile-time interface checks.
var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*SQLite)(nil)
)
