package billing

import (
	"context"

	"github.com/gstbook/gstbook-api/internal/domain/entity"
	"github.com/gstbook/gstbook-api/internal/domain/repository"
)

// SaleTxRunner runs invoice-creating work inside one database transaction.
// The repositories handed to the callback share that transaction, so the
// sequence increment, the sale insert and (for conversions) the order delete
// commit or roll back together.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(sales repository.SaleRepository, seqs repository.SequenceRepository) error) error
	RunConfirm(ctx context.Context, fn func(sales repository.SaleRepository, seqs repository.SequenceRepository, orders repository.WebhookOrderRepository) error) error
}

// InvoiceRenderer produces the invoice PDF bytes.
type InvoiceRenderer interface {
	RenderInvoice(sale *entity.Sale, customer *entity.Customer) ([]byte, error)
}

// Mailer delivers an invoice PDF as an attachment.
type Mailer interface {
	SendInvoice(to, subject, body string, pdf []byte, filename string) error
}
