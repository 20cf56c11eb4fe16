package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pythag/ptuples/internal/tuple"
)

// Run describes one archived generator invocation.
type Run struct {
	ID             string // UUIDv7, see RunIDGenerator
	Engine         string // "exhaustive" or "growth"
	TupleSize      int
	BMin           string // decimal string
	BMax           string // decimal string
	PrimitivesOnly bool
	CreatedAt      time.Time
}

// WriteRun records a run and all its tuples in one transaction. Tuples are
// stored in table order, which for engine output is canonical order, so a
// later read reproduces the run's output byte for byte.
func (s *Store) WriteRun(ctx context.Context, run Run, t *tuple.Table) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, engine, tuple_size, b_min, b_max, primitives_only, tuple_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.Engine,
		run.TupleSize,
		run.BMin,
		run.BMax,
		run.PrimitivesOnly,
		t.Len(),
		run.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tuples (run_id, position, a_values, b)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < t.Len(); i++ {
		entry := t.At(i)
		if _, err := stmt.ExecContext(ctx, run.ID, i, joinAValues(entry), entry.B.String()); err != nil {
			return fmt.Errorf("write tuple %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}

func joinAValues(e *tuple.Entry) string {
	parts := make([]string, len(e.A))
	for i, a := range e.A {
		parts[i] = a.String()
	}
	return strings.Join(parts, ",")
}
