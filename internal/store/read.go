package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when no record matches a lookup.
var ErrNotFound = errors.New("level not found")

// Record is one stored conversion.
type Record struct {
	ID          string
	ChartHash   string
	BGMOffset   float64
	EntityCount int
	Payload     []byte
	CreatedAt   int64
}

// GetByHash returns the record for a chart hash, or ErrNotFound.
func (s *Store) GetByHash(ctx context.Context, chartHash string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, chart_hash, bgm_offset, entity_count, payload, created_at
		FROM levels
		WHERE chart_hash = ?
	`, chartHash)

	var r Record
	err := row.Scan(&r.ID, &r.ChartHash, &r.BGMOffset, &r.EntityCount, &r.Payload, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get level by hash: %w", err)
	}
	return &r, nil
}

// List returns all records in creation order. Ties on created_at break by
// ID, which is creation-ordered for UUIDv7.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, chart_hash, bgm_offset, entity_count, payload, created_at
		FROM levels
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.ChartHash, &r.BGMOffset, &r.EntityCount, &r.Payload, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("list levels: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	return records, nil
}
