package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gstbook/gstbook-api/internal/domain/entity"
	"github.com/gstbook/gstbook-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo read-side queries feeding the financial-year summary pivots.
// Each query returns every matching row within [from, to) in one pass; the
// application layer does the grouping.
type ReportRepo struct {
	q Querier
}

// NewReportRepository builds the adapter.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

func scanReportRows(ctx context.Context, r *ReportRepo, query string, args ...any) ([]repository.ReportRow, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report query: %w", err)
	}
	defer rows.Close()
	var out []repository.ReportRow
	for rows.Next() {
		var row repository.ReportRow
		if err := rows.Scan(&row.GroupID, &row.GroupLabel, &row.RefID, &row.InvoiceNumber, &row.Date,
			&row.Quantity, &row.TaxableAmount, &row.GSTAmount, &row.Total); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// SalesByCustomer groups GST sale lines under the sale's customer.
func (r *ReportRepo) SalesByCustomer(ctx context.Context, from, to time.Time, customerID string) ([]repository.ReportRow, error) {
	query := `
		SELECT s.customer_id, c.name, s.id, s.invoice_number, s.invoice_date,
			SUM(l.quantity)::numeric, s.taxable_amount, s.cgst + s.sgst + s.igst, s.total
		FROM sales s
		JOIN customers c ON c.id = s.customer_id
		JOIN sale_lines l ON l.sale_id = s.id
		WHERE s.series = $1 AND s.invoice_date >= $2 AND s.invoice_date < $3
			AND ($4 = '' OR s.customer_id::text = $4)
		GROUP BY s.customer_id, c.name, s.id, s.invoice_number, s.invoice_date,
			s.taxable_amount, s.cgst, s.sgst, s.igst, s.total
		ORDER BY c.name, s.invoice_date`
	return scanReportRows(ctx, r, query, entity.SeriesGST, from, to, customerID)
}

// SalesByItem groups GST sale lines under the line's HSN code.
func (r *ReportRepo) SalesByItem(ctx context.Context, from, to time.Time, keyword string) ([]repository.ReportRow, error) {
	query := `
		SELECT l.hsn_code, MIN(l.name), s.id, s.invoice_number, s.invoice_date,
			SUM(l.quantity)::numeric, SUM(l.taxable_amount), SUM(l.cgst + l.sgst + l.igst), SUM(l.total)
		FROM sales s
		JOIN sale_lines l ON l.sale_id = s.id
		WHERE s.series = $1 AND s.invoice_date >= $2 AND s.invoice_date < $3
			AND ($4 = '' OR l.name ILIKE $5 OR l.hsn_code ILIKE $5)
		GROUP BY l.hsn_code, s.id, s.invoice_number, s.invoice_date
		ORDER BY l.hsn_code, s.invoice_date`
	return scanReportRows(ctx, r, query, entity.SeriesGST, from, to, keyword, likePattern(keyword))
}

// PurchasesByCompany groups purchases under the supplier company name.
func (r *ReportRepo) PurchasesByCompany(ctx context.Context, from, to time.Time, keyword string) ([]repository.ReportRow, error) {
	query := `
		SELECT p.company_name, p.company_name, p.id, '', p.date,
			p.quantity::numeric, p.taxable_amount, p.cgst + p.sgst + p.igst, p.total
		FROM purchases p
		WHERE p.date >= $1 AND p.date < $2
			AND ($3 = '' OR p.company_name ILIKE $4 OR p.item_name ILIKE $4)
		ORDER BY p.company_name, p.date`
	return scanReportRows(ctx, r, query, from, to, keyword, likePattern(keyword))
}

// ExpensesByItem groups expenses under the expense item.
func (r *ReportRepo) ExpensesByItem(ctx context.Context, from, to time.Time, keyword string) ([]repository.ReportRow, error) {
	query := `
		SELECT e.item_id, e.item_name, e.id, '', e.date,
			e.quantity::numeric, e.total, 0::numeric, e.total
		FROM expenses e
		WHERE e.date >= $1 AND e.date < $2
			AND ($3 = '' OR e.item_name ILIKE $4)
		ORDER BY e.item_name, e.date`
	return scanReportRows(ctx, r, query, from, to, keyword, likePattern(keyword))
}

// GstCollectedByMonth sums CGST+SGST+IGST of GST sales per month key within
// the window.
func (r *ReportRepo) GstCollectedByMonth(ctx context.Context, from, to time.Time) (map[string]decimal.Decimal, error) {
	query := `
		SELECT to_char(invoice_date, 'YYYY-MM'), SUM(cgst + sgst + igst)
		FROM sales
		WHERE series = $1 AND invoice_date >= $2 AND invoice_date < $3
		GROUP BY 1`
	rows, err := r.q.Query(ctx, query, entity.SeriesGST, from, to)
	if err != nil {
		return nil, fmt.Errorf("gst collected query: %w", err)
	}
	defer rows.Close()
	out := map[string]decimal.Decimal{}
	for rows.Next() {
		var (
			month  string
			amount decimal.Decimal
		)
		if err := rows.Scan(&month, &amount); err != nil {
			return nil, fmt.Errorf("scan gst collected: %w", err)
		}
		out[month] = amount
	}
	return out, rows.Err()
}
