package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gstbook/gstbook-api/internal/domain/entity"
	"github.com/gstbook/gstbook-api/internal/domain/repository"
)

var _ repository.WebhookOrderRepository = (*WebhookOrderRepo)(nil)

// WebhookOrderRepo implements WebhookOrderRepository over the webhook_orders
// and webhook_order_lines tables.
type WebhookOrderRepo struct {
	q Querier
}

// NewWebhookOrderRepository builds the adapter.
func NewWebhookOrderRepository(q Querier) *WebhookOrderRepo {
	return &WebhookOrderRepo{q: q}
}

const orderColumns = `id, kind, customer_id, buyer_name, buyer_email, taxable_amount, gst_amount,
	total, created_at`

// Create persists the staged order and its lines.
func (r *WebhookOrderRepo) Create(ctx context.Context, order *entity.WebhookOrder) error {
	query := `
		INSERT INTO webhook_orders (` + orderColumns + `)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.Kind, order.CustomerID, order.BuyerName, order.BuyerEmail,
		order.TaxableAmount, order.GSTAmount, order.Total, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert webhook order: %w", err)
	}
	lineQuery := `
		INSERT INTO webhook_order_lines (id, order_id, item_id, name, quantity, rate, gst_slab)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, l := range order.Lines {
		_, err := r.q.Exec(ctx, lineQuery, l.ID, order.ID, l.ItemID, l.Name, l.Quantity, l.Rate, l.GSTSlab)
		if err != nil {
			return fmt.Errorf("insert webhook order line: %w", err)
		}
	}
	return nil
}

func (r *WebhookOrderRepo) loadLines(ctx context.Context, orders []*entity.WebhookOrder) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]string, 0, len(orders))
	byID := make(map[string]*entity.WebhookOrder, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
		byID[o.ID] = o
	}
	rows, err := r.q.Query(ctx,
		`SELECT id, order_id, item_id, name, quantity, rate, gst_slab
		 FROM webhook_order_lines WHERE order_id = ANY($1) ORDER BY name`, ids)
	if err != nil {
		return fmt.Errorf("load webhook order lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var l entity.WebhookOrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ItemID, &l.Name, &l.Quantity, &l.Rate, &l.GSTSlab); err != nil {
			return fmt.Errorf("scan webhook order line: %w", err)
		}
		if o, ok := byID[l.OrderID]; ok {
			o.Lines = append(o.Lines, l)
		}
	}
	return rows.Err()
}

// GetByID fetches a staged order with its lines.
func (r *WebhookOrderRepo) GetByID(ctx context.Context, id string) (*entity.WebhookOrder, error) {
	var (
		o          entity.WebhookOrder
		customerID *string
	)
	err := r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM webhook_orders WHERE id = $1`, id).Scan(
		&o.ID, &o.Kind, &customerID, &o.BuyerName, &o.BuyerEmail,
		&o.TaxableAmount, &o.GSTAmount, &o.Total, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get webhook order: %w", err)
	}
	if customerID != nil {
		o.CustomerID = *customerID
	}
	if err := r.loadLines(ctx, []*entity.WebhookOrder{&o}); err != nil {
		return nil, err
	}
	return &o, nil
}

// List returns the staged orders of the kind, oldest first, with lines.
func (r *WebhookOrderRepo) List(ctx context.Context, kind string) ([]*entity.WebhookOrder, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+orderColumns+` FROM webhook_orders WHERE kind = $1 ORDER BY created_at`, kind)
	if err != nil {
		return nil, fmt.Errorf("list webhook orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.WebhookOrder
	for rows.Next() {
		var (
			o          entity.WebhookOrder
			customerID *string
		)
		if err := rows.Scan(&o.ID, &o.Kind, &customerID, &o.BuyerName, &o.BuyerEmail,
			&o.TaxableAmount, &o.GSTAmount, &o.Total, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan webhook order: %w", err)
		}
		if customerID != nil {
			o.CustomerID = *customerID
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadLines(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Delete removes the order and its lines. Called inside the conversion
// transaction right after the sale insert.
func (r *WebhookOrderRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM webhook_order_lines WHERE order_id = $1`, id); err != nil {
		return fmt.Errorf("delete webhook order lines: %w", err)
	}
	_, err := r.q.Exec(ctx, `DELETE FROM webhook_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete webhook order: %w", err)
	}
	return nil
}
