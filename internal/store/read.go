package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrRunNotFound is returned by ReadRun for an unknown run ID.
var ErrRunNotFound = errors.New("run not found")

// ReadRun returns an archived run and its tuples rendered in the canonical
// text form, in stored (canonical) order.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, []string, error) {
	var (
		run       Run
		createdAt string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, engine, tuple_size, b_min, b_max, primitives_only, created_at
		FROM runs WHERE id = ?
	`, id).Scan(&run.ID, &run.Engine, &run.TupleSize, &run.BMin, &run.BMax,
		&run.PrimitivesOnly, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, nil, ErrRunNotFound
	}
	if err != nil {
		return Run{}, nil, fmt.Errorf("read run: %w", err)
	}

	run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return Run{}, nil, fmt.Errorf("read run: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT a_values, b FROM tuples
		WHERE run_id = ?
		ORDER BY position ASC
	`, id)
	if err != nil {
		return Run{}, nil, fmt.Errorf("read run tuples: %w", err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var avals, b string
		if err := rows.Scan(&avals, &b); err != nil {
			return Run{}, nil, fmt.Errorf("read run tuples: %w", err)
		}
		lines = append(lines, "("+avals+","+b+")")
	}
	if err := rows.Err(); err != nil {
		return Run{}, nil, fmt.Errorf("read run tuples: %w", err)
	}

	return run, lines, nil
}

// ListRunIDs returns every archived run ID, newest first.
func (s *Store) ListRunIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id FROM runs ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return ids, nil
}
