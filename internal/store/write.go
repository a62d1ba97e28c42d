package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sekaitools/chartconv/internal/level"
)

// SaveLevel inserts a converted level keyed by its chart hash and returns
// the record ID. Uses ON CONFLICT(chart_hash) DO NOTHING for idempotency:
// saving the same chart twice returns the existing record's ID and writes
// nothing.
//
// Record IDs are UUIDv7, so listing by ID within one creation second is
// creation-ordered.
func (s *Store) SaveLevel(ctx context.Context, chartHash string, exported level.ExportedLevel) (string, error) {
	payload, err := level.MarshalCanonical(exported)
	if err != nil {
		return "", fmt.Errorf("save level: %w", err)
	}

	id := uuid.Must(uuid.NewV7()).String()
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO levels
		(id, chart_hash, bgm_offset, entity_count, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(chart_hash) DO NOTHING
	`,
		id,
		chartHash,
		exported.BGMOffset,
		len(exported.Entities),
		payload,
		time.Now().Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("save level: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("save level: %w", err)
	}
	if affected == 0 {
		// Conflict: hand back the record that already holds this chart.
		existing, err := s.GetByHash(ctx, chartHash)
		if err != nil {
			return "", fmt.Errorf("save level: %w", err)
		}
		return existing.ID, nil
	}
	return id, nil
}
