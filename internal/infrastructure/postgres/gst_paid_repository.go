package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gstbook/gstbook-api/internal/domain/entity"
	"github.com/gstbook/gstbook-api/internal/domain/repository"
)

var _ repository.GstPaidRepository = (*GstPaidRepo)(nil)

// GstPaidRepo implements GstPaidRepository (usable with pool or tx).
type GstPaidRepo struct {
	q Querier
}

// NewGstPaidRepository builds the adapter.
func NewGstPaidRepository(q Querier) *GstPaidRepo {
	return &GstPaidRepo{q: q}
}

const gstPaidColumns = `id, month, amount, notes, created_at, updated_at`

// Create persists a remittance record.
func (r *GstPaidRepo) Create(ctx context.Context, rec *entity.GstPaid) error {
	query := `
		INSERT INTO gst_paid (` + gstPaidColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.Month, rec.Amount, rec.Notes, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert gst paid: %w", err)
	}
	return nil
}

// GetByID fetches a remittance record by ID.
func (r *GstPaidRepo) GetByID(ctx context.Context, id string) (*entity.GstPaid, error) {
	var rec entity.GstPaid
	err := r.q.QueryRow(ctx, `SELECT `+gstPaidColumns+` FROM gst_paid WHERE id = $1`, id).Scan(
		&rec.ID, &rec.Month, &rec.Amount, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gst paid: %w", err)
	}
	return &rec, nil
}

// ListByMonths returns the records with month inside [fromMonth, toMonth],
// ordered by month. Month keys sort lexicographically ("2025-04").
func (r *GstPaidRepo) ListByMonths(ctx context.Context, fromMonth, toMonth string) ([]*entity.GstPaid, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+gstPaidColumns+` FROM gst_paid WHERE month >= $1 AND month <= $2 ORDER BY month`,
		fromMonth, toMonth)
	if err != nil {
		return nil, fmt.Errorf("list gst paid: %w", err)
	}
	defer rows.Close()
	var list []*entity.GstPaid
	for rows.Next() {
		var rec entity.GstPaid
		if err := rows.Scan(&rec.ID, &rec.Month, &rec.Amount, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan gst paid: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// Update persists changed record fields.
func (r *GstPaidRepo) Update(ctx context.Context, rec *entity.GstPaid) error {
	query := `UPDATE gst_paid SET month = $2, amount = $3, notes = $4, updated_at = $5 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, rec.ID, rec.Month, rec.Amount, rec.Notes, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update gst paid: %w", err)
	}
	return nil
}

// Delete removes a record by ID.
func (r *GstPaidRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM gst_paid WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gst paid: %w", err)
	}
	return nil
}
