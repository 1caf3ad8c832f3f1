package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gstbook/gstbook-api/internal/domain"
	"github.com/gstbook/gstbook-api/internal/domain/entity"
	"github.com/gstbook/gstbook-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implements SaleRepository over the sales and sale_lines tables;
// the series column separates GST (A) and cash (B) invoices.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository builds the adapter.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// nullableTime maps the zero time to SQL NULL. Comparing against the zero
// value in SQL would depend on the server timezone.
func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

const saleColumns = `id, series, invoice_number, customer_id, buyer_name, invoice_date, due_date,
	taxable_amount, cgst, sgst, igst, shipping_charges, discount, other_adjustments,
	total, advance_paid, balance_due, created_at, updated_at`

const saleLineColumns = `id, sale_id, item_id, name, hsn_code, quantity, rate, gst_slab,
	taxable_amount, cgst, sgst, igst, total`

// Create persists the header and all lines.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7,
			$8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.Series, sale.InvoiceNumber, sale.CustomerID, sale.BuyerName,
		sale.InvoiceDate, nullableTime(sale.DueDate),
		sale.TaxableAmount, sale.CGST, sale.SGST, sale.IGST,
		sale.ShippingCharges, sale.Discount, sale.OtherAdjustments,
		sale.Total, sale.AdvancePaid, sale.BalanceDue, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateInvoiceNo
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return r.insertLines(ctx, sale)
}

func (r *SaleRepo) insertLines(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sale_lines (` + saleLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	for _, l := range sale.Lines {
		_, err := r.q.Exec(ctx, query,
			l.ID, sale.ID, l.ItemID, l.Name, l.HSNCode, l.Quantity, l.Rate, l.GSTSlab,
			l.TaxableAmount, l.CGST, l.SGST, l.IGST, l.Total,
		)
		if err != nil {
			return fmt.Errorf("insert sale line: %w", err)
		}
	}
	return nil
}

func (r *SaleRepo) loadLines(ctx context.Context, sales []*entity.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	ids := make([]string, 0, len(sales))
	byID := make(map[string]*entity.Sale, len(sales))
	for _, s := range sales {
		ids = append(ids, s.ID)
		byID[s.ID] = s
	}
	query := `
		SELECT ` + saleLineColumns + `
		FROM sale_lines WHERE sale_id = ANY($1) ORDER BY name`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("load sale lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.ID, &l.SaleID, &l.ItemID, &l.Name, &l.HSNCode, &l.Quantity, &l.Rate, &l.GSTSlab,
			&l.TaxableAmount, &l.CGST, &l.SGST, &l.IGST, &l.Total); err != nil {
			return fmt.Errorf("scan sale line: %w", err)
		}
		if s, ok := byID[l.SaleID]; ok {
			s.Lines = append(s.Lines, l)
		}
	}
	return rows.Err()
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var (
		s          entity.Sale
		customerID *string
		dueDate    *time.Time
	)
	err := row.Scan(&s.ID, &s.Series, &s.InvoiceNumber, &customerID, &s.BuyerName, &s.InvoiceDate, &dueDate,
		&s.TaxableAmount, &s.CGST, &s.SGST, &s.IGST, &s.ShippingCharges, &s.Discount, &s.OtherAdjustments,
		&s.Total, &s.AdvancePaid, &s.BalanceDue, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if customerID != nil {
		s.CustomerID = *customerID
	}
	if dueDate != nil {
		s.DueDate = *dueDate
	}
	return &s, nil
}

// GetByID fetches a sale of the series with its lines.
func (r *SaleRepo) GetByID(ctx context.Context, series, id string) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx,
		`SELECT `+saleColumns+` FROM sales WHERE series = $1 AND id = $2`, series, id))
	if err != nil {
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if s == nil {
		return nil, nil
	}
	if err := r.loadLines(ctx, []*entity.Sale{s}); err != nil {
		return nil, err
	}
	return s, nil
}

// ExistsInvoiceNumber reports whether the number is already taken in the
// series.
func (r *SaleRepo) ExistsInvoiceNumber(ctx context.Context, series, invoiceNumber string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM sales WHERE series = $1 AND invoice_number = $2)`,
		series, invoiceNumber,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check invoice number: %w", err)
	}
	return exists, nil
}

// List returns a keyword-filtered page of the series, newest first, plus the
// total match count. The keyword matches the invoice number and buyer name.
func (r *SaleRepo) List(ctx context.Context, series, keyword string, limit, offset int) ([]*entity.Sale, int, error) {
	pattern := likePattern(keyword)

	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM sales WHERE series = $1 AND (invoice_number ILIKE $2 OR buyer_name ILIKE $2)`,
		series, pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count sales: %w", err)
	}

	query := `
		SELECT ` + saleColumns + `
		FROM sales WHERE series = $1 AND (invoice_number ILIKE $2 OR buyer_name ILIKE $2)
		ORDER BY invoice_date DESC, invoice_number DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, series, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list sales: %w", err)
	}
	list, err := collectSales(rows)
	if err != nil {
		return nil, 0, err
	}
	if err := r.loadLines(ctx, list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Search is the capped unpaginated typeahead variant; lines are loaded.
func (r *SaleRepo) Search(ctx context.Context, series, keyword string, limit int) ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales WHERE series = $1 AND (invoice_number ILIKE $2 OR buyer_name ILIKE $2)
		ORDER BY invoice_date DESC, invoice_number DESC LIMIT $3`
	rows, err := r.q.Query(ctx, query, series, likePattern(keyword), limit)
	if err != nil {
		return nil, fmt.Errorf("search sales: %w", err)
	}
	list, err := collectSales(rows)
	if err != nil {
		return nil, err
	}
	if err := r.loadLines(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func collectSales(rows pgx.Rows) ([]*entity.Sale, error) {
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var (
			s          entity.Sale
			customerID *string
			dueDate    *time.Time
		)
		if err := rows.Scan(&s.ID, &s.Series, &s.InvoiceNumber, &customerID, &s.BuyerName, &s.InvoiceDate, &dueDate,
			&s.TaxableAmount, &s.CGST, &s.SGST, &s.IGST, &s.ShippingCharges, &s.Discount, &s.OtherAdjustments,
			&s.Total, &s.AdvancePaid, &s.BalanceDue, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if customerID != nil {
			s.CustomerID = *customerID
		}
		if dueDate != nil {
			s.DueDate = *dueDate
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update replaces the header fields and the lines wholesale. The invoice
// number is not part of the update.
func (r *SaleRepo) Update(ctx context.Context, sale *entity.Sale) error {
	query := `
		UPDATE sales SET buyer_name = $2, invoice_date = $3, due_date = $4,
			taxable_amount = $5, cgst = $6, sgst = $7, igst = $8,
			shipping_charges = $9, discount = $10, other_adjustments = $11,
			total = $12, advance_paid = $13, balance_due = $14, updated_at = $15
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.BuyerName, sale.InvoiceDate, nullableTime(sale.DueDate),
		sale.TaxableAmount, sale.CGST, sale.SGST, sale.IGST,
		sale.ShippingCharges, sale.Discount, sale.OtherAdjustments,
		sale.Total, sale.AdvancePaid, sale.BalanceDue, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM sale_lines WHERE sale_id = $1`, sale.ID); err != nil {
		return fmt.Errorf("delete sale lines: %w", err)
	}
	return r.insertLines(ctx, sale)
}

// Delete removes a sale and its lines.
func (r *SaleRepo) Delete(ctx context.Context, series, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sale_lines WHERE sale_id = $1`, id); err != nil {
		return fmt.Errorf("delete sale lines: %w", err)
	}
	_, err := r.q.Exec(ctx, `DELETE FROM sales WHERE series = $1 AND id = $2`, series, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}
