package repository

import (
	"context"

	"github.com/gstbook/gstbook-api/internal/domain/entity"
)

// GstPaidRepository persistence port for monthly GST remittance records.
type GstPaidRepository interface {
	Create(ctx context.Context, rec *entity.GstPaid) error
	GetByID(ctx context.Context, id string) (*entity.GstPaid, error)
	// ListByMonths returns records whose month falls inside the financial
	// year window, ordered by month.
	ListByMonths(ctx context.Context, fromMonth, toMonth string) ([]*entity.GstPaid, error)
	Update(ctx context.Context, rec *entity.GstPaid) error
	Delete(ctx context.Context, id string) error
}
