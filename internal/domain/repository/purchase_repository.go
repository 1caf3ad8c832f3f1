package repository

import (
	"context"

	"github.com/gstbook/gstbook-api/internal/domain/entity"
)

// PurchaseRepository persistence port for purchases.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	GetByID(ctx context.Context, id string) (*entity.Purchase, error)
	List(ctx context.Context, keyword string, limit, offset int) ([]*entity.Purchase, int, error)
	Search(ctx context.Context, keyword string, limit int) ([]*entity.Purchase, error)
	Update(ctx context.Context, purchase *entity.Purchase) error
	Delete(ctx context.Context, id string) error
}

// ExpenseRepository persistence port for expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id string) (*entity.Expense, error)
	List(ctx context.Context, keyword string, limit, offset int) ([]*entity.Expense, int, error)
	Search(ctx context.Context, keyword string, limit int) ([]*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id string) error
}
