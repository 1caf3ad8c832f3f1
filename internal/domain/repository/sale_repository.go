package repository

import (
	"context"

	"github.com/gstbook/gstbook-api/internal/domain/entity"
)

// SaleRepository persistence port for sales of both series. Implementations
// must map a unique-constraint violation on the invoice number to
// domain.ErrDuplicateInvoiceNo.
type SaleRepository interface {
	// Create persists the header and all lines.
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, series, id string) (*entity.Sale, error)
	ExistsInvoiceNumber(ctx context.Context, series, invoiceNumber string) (bool, error)
	// List filters by keyword on invoice number / buyer name.
	List(ctx context.Context, series, keyword string, limit, offset int) ([]*entity.Sale, int, error)
	Search(ctx context.Context, series, keyword string, limit int) ([]*entity.Sale, error)
	// Update is administrative correction of header fields; lines are
	// replaced wholesale.
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, series, id string) error
}

// SequenceRepository issues invoice numbers. Next must be atomic: the
// counter row update serializes concurrent confirmations, so two callers
// can never observe the same number.
type SequenceRepository interface {
	Next(ctx context.Context, series string) (int64, error)
}
