package repository

import (
	"context"

	"github.com/gstbook/gstbook-api/internal/domain/entity"
)

// WebhookOrderRepository persistence port for staged external orders.
type WebhookOrderRepository interface {
	Create(ctx context.Context, order *entity.WebhookOrder) error
	GetByID(ctx context.Context, id string) (*entity.WebhookOrder, error)
	List(ctx context.Context, kind string) ([]*entity.WebhookOrder, error)
	// Delete removes the order and its lines. Called inside the conversion
	// transaction right after the sale insert.
	Delete(ctx context.Context, id string) error
}
