package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gstbook/gstbook-api/internal/domain"
	"github.com/gstbook/gstbook-api/internal/domain/entity"
	"github.com/gstbook/gstbook-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implements CustomerRepository (usable with pool or tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository builds the adapter.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, type, name, email, phone, gst_number, place_of_supply,
	billing_address, shipping_address, created_at, updated_at`

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.ID, &c.Type, &c.Name, &c.Email, &c.Phone, &c.GSTNumber, &c.PlaceOfSupply,
		&c.BillingAddress, &c.ShippingAddress, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Create persists a new customer.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, type, name, email, phone, gst_number, place_of_supply,
			billing_address, shipping_address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.Type, customer.Name, customer.Email, customer.Phone,
		customer.GSTNumber, customer.PlaceOfSupply, customer.BillingAddress, customer.ShippingAddress,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID fetches a customer by ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// GetByEmail fetches a customer by email.
func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE email = $1`, email))
	if err != nil {
		return nil, fmt.Errorf("get customer by email: %w", err)
	}
	return c, nil
}

// List returns a keyword-filtered page plus the total match count.
func (r *CustomerRepo) List(ctx context.Context, keyword string, limit, offset int) ([]*entity.Customer, int, error) {
	pattern := likePattern(keyword)

	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM customers WHERE name ILIKE $1 OR email ILIKE $1`, pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	query := `
		SELECT ` + customerColumns + `
		FROM customers WHERE name ILIKE $1 OR email ILIKE $1
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Type, &c.Name, &c.Email, &c.Phone, &c.GSTNumber, &c.PlaceOfSupply,
			&c.BillingAddress, &c.ShippingAddress, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, total, rows.Err()
}

// Search is the capped unpaginated typeahead variant.
func (r *CustomerRepo) Search(ctx context.Context, keyword string, limit int) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers WHERE name ILIKE $1 OR email ILIKE $1
		ORDER BY name LIMIT $2`
	rows, err := r.q.Query(ctx, query, likePattern(keyword), limit)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Type, &c.Name, &c.Email, &c.Phone, &c.GSTNumber, &c.PlaceOfSupply,
			&c.BillingAddress, &c.ShippingAddress, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update persists changed customer fields.
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers SET type = $2, name = $3, email = $4, phone = $5, gst_number = $6,
			place_of_supply = $7, billing_address = $8, shipping_address = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.Type, customer.Name, customer.Email, customer.Phone, customer.GSTNumber,
		customer.PlaceOfSupply, customer.BillingAddress, customer.ShippingAddress, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete removes a customer by ID.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
