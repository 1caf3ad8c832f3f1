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

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implements ItemRepository over the single items table; the kind
// column separates the four catalogs.
type ItemRepo struct {
	q Querier
}

// NewItemRepository builds the adapter.
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, kind, name, type, hsn_code, company_name, validity_days,
	rate, gst_slab, cgst, sgst, igst, total, created_at, updated_at`

func scanItemRow(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(&it.ID, &it.Kind, &it.Name, &it.Type, &it.HSNCode, &it.CompanyName, &it.ValidityDays,
		&it.Rate, &it.GSTSlab, &it.CGST, &it.SGST, &it.IGST, &it.Total, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

func scanItems(rows pgx.Rows) ([]*entity.Item, error) {
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Kind, &it.Name, &it.Type, &it.HSNCode, &it.CompanyName, &it.ValidityDays,
			&it.Rate, &it.GSTSlab, &it.CGST, &it.SGST, &it.IGST, &it.Total, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Create persists a new catalog item.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (id, kind, name, type, hsn_code, company_name, validity_days,
			rate, gst_slab, cgst, sgst, igst, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Kind, item.Name, item.Type, item.HSNCode, item.CompanyName, item.ValidityDays,
		item.Rate, item.GSTSlab, item.CGST, item.SGST, item.IGST, item.Total, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCompanyName
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID fetches an item of the kind by ID.
func (r *ItemRepo) GetByID(ctx context.Context, kind, id string) (*entity.Item, error) {
	it, err := scanItemRow(r.q.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM items WHERE kind = $1 AND id = $2`, kind, id))
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// GetByCompanyName fetches a purchase item by supplier company name.
func (r *ItemRepo) GetByCompanyName(ctx context.Context, kind, companyName string) (*entity.Item, error) {
	it, err := scanItemRow(r.q.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM items WHERE kind = $1 AND company_name = $2`, kind, companyName))
	if err != nil {
		return nil, fmt.Errorf("get item by company: %w", err)
	}
	return it, nil
}

// List returns a keyword-filtered page of the kind's catalog plus the total
// match count.
func (r *ItemRepo) List(ctx context.Context, kind, keyword string, limit, offset int) ([]*entity.Item, int, error) {
	pattern := likePattern(keyword)

	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM items WHERE kind = $1 AND (name ILIKE $2 OR company_name ILIKE $2 OR hsn_code ILIKE $2)`,
		kind, pattern,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	query := `
		SELECT ` + itemColumns + `
		FROM items WHERE kind = $1 AND (name ILIKE $2 OR company_name ILIKE $2 OR hsn_code ILIKE $2)
		ORDER BY name LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, kind, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	list, err := scanItems(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Search is the capped unpaginated typeahead variant.
func (r *ItemRepo) Search(ctx context.Context, kind, keyword string, limit int) ([]*entity.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items WHERE kind = $1 AND (name ILIKE $2 OR company_name ILIKE $2 OR hsn_code ILIKE $2)
		ORDER BY name LIMIT $3`
	rows, err := r.q.Query(ctx, query, kind, likePattern(keyword), limit)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	return scanItems(rows)
}

// Update persists changed item fields. Kind never changes.
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, type = $3, hsn_code = $4, company_name = $5, validity_days = $6,
			rate = $7, gst_slab = $8, cgst = $9, sgst = $10, igst = $11, total = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.Type, item.HSNCode, item.CompanyName, item.ValidityDays,
		item.Rate, item.GSTSlab, item.CGST, item.SGST, item.IGST, item.Total, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCompanyName
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete removes an item of the kind by ID.
func (r *ItemRepo) Delete(ctx context.Context, kind, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM items WHERE kind = $1 AND id = $2`, kind, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
