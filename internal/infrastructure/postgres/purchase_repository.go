package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gstbook/gstbook-api/internal/domain/entity"
	"github.com/gstbook/gstbook-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implements PurchaseRepository (usable with pool or tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository builds the adapter.
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

const purchaseColumns = `id, item_id, item_name, company_name, hsn_code, date, quantity, price,
	gst_slab, taxable_amount, cgst, sgst, igst, total, payment_method, created_at, updated_at`

func scanPurchases(rows pgx.Rows) ([]*entity.Purchase, error) {
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.ItemID, &p.ItemName, &p.CompanyName, &p.HSNCode, &p.Date, &p.Quantity,
			&p.Price, &p.GSTSlab, &p.TaxableAmount, &p.CGST, &p.SGST, &p.IGST, &p.Total,
			&p.PaymentMethod, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Create persists a new purchase.
func (r *PurchaseRepo) Create(ctx context.Context, purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		purchase.ID, purchase.ItemID, purchase.ItemName, purchase.CompanyName, purchase.HSNCode,
		purchase.Date, purchase.Quantity, purchase.Price, purchase.GSTSlab,
		purchase.TaxableAmount, purchase.CGST, purchase.SGST, purchase.IGST, purchase.Total,
		purchase.PaymentMethod, purchase.CreatedAt, purchase.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// GetByID fetches a purchase by ID.
func (r *PurchaseRepo) GetByID(ctx context.Context, id string) (*entity.Purchase, error) {
	var p entity.Purchase
	err := r.q.QueryRow(ctx, `SELECT `+purchaseColumns+` FROM purchases WHERE id = $1`, id).Scan(
		&p.ID, &p.ItemID, &p.ItemName, &p.CompanyName, &p.HSNCode, &p.Date, &p.Quantity,
		&p.Price, &p.GSTSlab, &p.TaxableAmount, &p.CGST, &p.SGST, &p.IGST, &p.Total,
		&p.PaymentMethod, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

// List returns a keyword-filtered page, newest first, plus the total match
// count. The keyword matches item and company names.
func (r *PurchaseRepo) List(ctx context.Context, keyword string, limit, offset int) ([]*entity.Purchase, int, error) {
	pattern := likePattern(keyword)

	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM purchases WHERE item_name ILIKE $1 OR company_name ILIKE $1`, pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count purchases: %w", err)
	}

	query := `
		SELECT ` + purchaseColumns + `
		FROM purchases WHERE item_name ILIKE $1 OR company_name ILIKE $1
		ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list purchases: %w", err)
	}
	list, err := scanPurchases(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Search is the capped unpaginated typeahead variant.
func (r *PurchaseRepo) Search(ctx context.Context, keyword string, limit int) ([]*entity.Purchase, error) {
	query := `
		SELECT ` + purchaseColumns + `
		FROM purchases WHERE item_name ILIKE $1 OR company_name ILIKE $1
		ORDER BY date DESC, created_at DESC LIMIT $2`
	rows, err := r.q.Query(ctx, query, likePattern(keyword), limit)
	if err != nil {
		return nil, fmt.Errorf("search purchases: %w", err)
	}
	return scanPurchases(rows)
}

// Update persists changed purchase fields.
func (r *PurchaseRepo) Update(ctx context.Context, purchase *entity.Purchase) error {
	query := `
		UPDATE purchases SET date = $2, quantity = $3, price = $4, gst_slab = $5,
			taxable_amount = $6, cgst = $7, sgst = $8, igst = $9, total = $10,
			payment_method = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		purchase.ID, purchase.Date, purchase.Quantity, purchase.Price, purchase.GSTSlab,
		purchase.TaxableAmount, purchase.CGST, purchase.SGST, purchase.IGST, purchase.Total,
		purchase.PaymentMethod, purchase.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase: %w", err)
	}
	return nil
}

// Delete removes a purchase by ID.
func (r *PurchaseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	return nil
}
