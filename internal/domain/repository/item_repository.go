package repository

import (
	"context"

	"github.com/gstbook/gstbook-api/internal/domain/entity"
)

// ItemRepository persistence port for the four item catalogs. Every query
// is scoped to a kind; the kinds never mix.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, kind, id string) (*entity.Item, error)
	// GetByCompanyName backs the unique-company-name rule for purchase items.
	GetByCompanyName(ctx context.Context, kind, companyName string) (*entity.Item, error)
	List(ctx context.Context, kind, keyword string, limit, offset int) ([]*entity.Item, int, error)
	Search(ctx context.Context, kind, keyword string, limit int) ([]*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, kind, id string) error
}
