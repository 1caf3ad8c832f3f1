package repository

import (
	"context"

	"github.com/gstbook/gstbook-api/internal/domain/entity"
)

// CustomerRepository persistence port for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	// List filters by keyword on name/email and returns the page plus the
	// total match count.
	List(ctx context.Context, keyword string, limit, offset int) ([]*entity.Customer, int, error)
	// Search is the unpaginated typeahead variant, capped by limit.
	Search(ctx context.Context, keyword string, limit int) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
}
