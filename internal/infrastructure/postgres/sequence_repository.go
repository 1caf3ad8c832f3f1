package postgres

import (
	"context"
	"fmt"

	"github.com/gstbook/gstbook-api/internal/domain/gst"
	"github.com/gstbook/gstbook-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo issues invoice numbers from the invoice_sequences counter
// table. The UPDATE takes a row lock, so concurrent confirmations of the same
// series serialize and never observe the same number.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository builds the adapter. Must be handed a tx Querier when
// the number feeds an insert in the same unit of work.
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next increments and returns the series counter. An empty series is seeded
// so the first issued number is seed+1 (A1001 / B1001).
func (r *SequenceRepo) Next(ctx context.Context, series string) (int64, error) {
	_, err := r.q.Exec(ctx,
		`INSERT INTO invoice_sequences (series, last_number) VALUES ($1, $2)
		 ON CONFLICT (series) DO NOTHING`,
		series, gst.SeedNumber,
	)
	if err != nil {
		return 0, fmt.Errorf("seed sequence: %w", err)
	}

	var n int64
	err = r.q.QueryRow(ctx,
		`UPDATE invoice_sequences SET last_number = last_number + 1
		 WHERE series = $1 RETURNING last_number`,
		series,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next invoice number: %w", err)
	}
	return n, nil
}
