package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gstbook/gstbook-api/internal/application/dto"
	"github.com/gstbook/gstbook-api/internal/application/usecase"
	"github.com/gstbook/gstbook-api/internal/domain"
	"github.com/gstbook/gstbook-api/internal/domain/entity"
	"github.com/gstbook/gstbook-api/internal/domain/gst"
	"github.com/gstbook/gstbook-api/internal/domain/repository"
	"github.com/gstbook/gstbook-api/pkg/logger"
)

// WebhookUseCase stages externally submitted orders and converts them into
// sales. Conversion creates the sale and deletes the order in one
// transaction, so a second confirmation of the same order finds nothing.
type WebhookUseCase struct {
	tx         SaleTxRunner
	orders     repository.WebhookOrderRepository
	customers  repository.CustomerRepository
	customerUC *usecase.CustomerUseCase
	items      repository.ItemRepository
	renderer   InvoiceRenderer
	mailer     Mailer
	homeState  string
	log        *logger.Logger
}

// NewWebhookUseCase builds the use case.
func NewWebhookUseCase(tx SaleTxRunner, orders repository.WebhookOrderRepository, customers repository.CustomerRepository, customerUC *usecase.CustomerUseCase, items repository.ItemRepository, renderer InvoiceRenderer, mailer Mailer, homeState string, log *logger.Logger) *WebhookUseCase {
	return &WebhookUseCase{
		tx:         tx,
		orders:     orders,
		customers:  customers,
		customerUC: customerUC,
		items:      items,
		renderer:   renderer,
		mailer:     mailer,
		homeState:  homeState,
		log:        log,
	}
}

func itemKindForOrder(kind string) string {
	if kind == entity.OrderKindCash {
		return entity.ItemKindCash
	}
	return entity.ItemKindGST
}

// Intake stages an external order. GST orders resolve (or create) the
// customer by email; cash orders only need the buyer name. Totals are
// computed for preview; lines are re-priced again at confirmation.
func (uc *WebhookUseCase) Intake(ctx context.Context, kind string, in dto.WebhookOrderRequest) (*dto.WebhookOrderResponse, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	for _, l := range in.Lines {
		if l.ItemID == "" {
			return nil, domain.Invalid("lines.itemId", "required")
		}
		if l.Quantity <= 0 {
			return nil, domain.Invalid("lines.quantity", "must be positive")
		}
	}

	order := &entity.WebhookOrder{
		ID:        uuid.New().String(),
		Kind:      kind,
		BuyerName: in.BuyerName,
		CreatedAt: time.Now(),
	}
	interState := false
	if kind == entity.OrderKindGST {
		if in.BuyerEmail == "" {
			return nil, domain.Invalid("buyerEmail", "required for GST orders")
		}
		customer, err := uc.customerUC.FindOrCreateByEmail(ctx, dto.CreateCustomerRequest{
			Name:            in.BuyerName,
			Email:           in.BuyerEmail,
			Phone:           in.Phone,
			GSTNumber:       in.GSTNumber,
			PlaceOfSupply:   in.PlaceOfSupply,
			BillingAddress:  in.BillingAddress,
			ShippingAddress: in.ShippingAddress,
		})
		if err != nil {
			return nil, err
		}
		order.CustomerID = customer.ID
		order.BuyerName = customer.Name
		order.BuyerEmail = customer.Email
		interState = gst.InterState(customer.PlaceOfSupply, uc.homeState)
	} else if in.BuyerName == "" {
		return nil, domain.Invalid("buyerName", "required for cash orders")
	}

	itemKind := itemKindForOrder(kind)
	taxes := make([]gst.LineTax, 0, len(in.Lines))
	for _, lr := range in.Lines {
		item, err := uc.items.GetByID(ctx, itemKind, lr.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.ErrNotFound
		}
		lt, err := gst.ComputeLine(lr.Quantity, item.Rate, item.GSTSlab, interState)
		if err != nil {
			return nil, domain.Invalid("lines", err.Error())
		}
		taxes = append(taxes, lt)
		order.Lines = append(order.Lines, entity.WebhookOrderLine{
			ID:       uuid.New().String(),
			OrderID:  order.ID,
			ItemID:   item.ID,
			Name:     item.Name,
			Quantity: lr.Quantity,
			Rate:     item.Rate,
			GSTSlab:  item.GSTSlab,
		})
	}
	t := gst.SumLines(taxes)
	order.TaxableAmount = t.TaxableAmount
	order.GSTAmount = t.CGST.Add(t.SGST).Add(t.IGST)
	order.Total = t.Total

	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List returns the staged orders of the kind, oldest first.
func (uc *WebhookUseCase) List(ctx context.Context, kind string) ([]*dto.WebhookOrderResponse, error) {
	orders, err := uc.orders.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.WebhookOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// Confirm converts a staged order into a sale. The sale insert and the order
// delete share one transaction; once committed, the optional invoice email is
// sent best-effort and a failure only logs.
func (uc *WebhookUseCase) Confirm(ctx context.Context, orderID string, in dto.ConfirmOrderRequest) (*dto.SaleResponse, error) {
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if len(order.Lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	var customer *entity.Customer
	interState := false
	if order.CustomerID != "" {
		if customer, err = uc.customers.GetByID(ctx, order.CustomerID); err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		interState = gst.InterState(customer.PlaceOfSupply, uc.homeState)
	}

	sale, err := uc.saleFromOrder(ctx, order, interState)
	if err != nil {
		return nil, err
	}

	err = uc.tx.RunConfirm(ctx, func(sales repository.SaleRepository, seqs repository.SequenceRepository, orders repository.WebhookOrderRepository) error {
		if err := assignNumberAndInsert(ctx, sales, seqs, sale, in.InvoiceNumber); err != nil {
			return err
		}
		return orders.Delete(ctx, order.ID)
	})
	if err != nil {
		return nil, err
	}

	if in.SendEmail && order.BuyerEmail != "" {
		uc.emailInvoice(sale, customer, order.BuyerEmail)
	}
	return toSaleResponse(sale), nil
}

// saleFromOrder re-prices the staged lines from the current catalog and
// derives the sale.
func (uc *WebhookUseCase) saleFromOrder(ctx context.Context, order *entity.WebhookOrder, interState bool) (*entity.Sale, error) {
	series := entity.SeriesGST
	if order.Kind == entity.OrderKindCash {
		series = entity.SeriesCash
	}
	now := time.Now()
	sale := &entity.Sale{
		ID:          uuid.New().String(),
		Series:      series,
		CustomerID:  order.CustomerID,
		BuyerName:   order.BuyerName,
		InvoiceDate: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	itemKind := itemKindForSeries(series)
	taxes := make([]gst.LineTax, 0, len(order.Lines))
	for _, ol := range order.Lines {
		item, err := uc.items.GetByID(ctx, itemKind, ol.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.ErrNotFound
		}
		lt, err := gst.ComputeLine(ol.Quantity, item.Rate, item.GSTSlab, interState)
		if err != nil {
			return nil, domain.Invalid("lines", err.Error())
		}
		taxes = append(taxes, lt)
		sale.Lines = append(sale.Lines, entity.SaleLine{
			ID:            uuid.New().String(),
			SaleID:        sale.ID,
			ItemID:        item.ID,
			Name:          item.Name,
			HSNCode:       item.HSNCode,
			Quantity:      ol.Quantity,
			Rate:          item.Rate,
			GSTSlab:       item.GSTSlab,
			TaxableAmount: lt.TaxableAmount,
			CGST:          lt.CGST,
			SGST:          lt.SGST,
			IGST:          lt.IGST,
			Total:         lt.Total,
		})
	}
	t := gst.SumLines(taxes)
	sale.TaxableAmount = t.TaxableAmount
	sale.CGST = t.CGST
	sale.SGST = t.SGST
	sale.IGST = t.IGST
	sale.Total = t.Total
	sale.BalanceDue = t.Total
	return sale, nil
}

// emailInvoice renders and mails the invoice PDF. Runs after commit; any
// failure is logged and never affects the conversion result.
func (uc *WebhookUseCase) emailInvoice(sale *entity.Sale, customer *entity.Customer, to string) {
	pdf, err := uc.renderer.RenderInvoice(sale, customer)
	if err != nil {
		uc.log.Warn().Err(err).Str("invoice", sale.InvoiceNumber).Msg("invoice pdf render failed")
		return
	}
	subject := fmt.Sprintf("Invoice %s", sale.InvoiceNumber)
	body := fmt.Sprintf("Dear %s,\n\nPlease find attached invoice %s.\n\nThank you for your business.", sale.BuyerName, sale.InvoiceNumber)
	filename := fmt.Sprintf("invoice-%s.pdf", sale.InvoiceNumber)
	if err := uc.mailer.SendInvoice(to, subject, body, pdf, filename); err != nil {
		uc.log.Warn().Err(err).Str("invoice", sale.InvoiceNumber).Str("to", to).Msg("invoice email failed")
	}
}

func toOrderResponse(o *entity.WebhookOrder) *dto.WebhookOrderResponse {
	lines := make([]dto.WebhookOrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, dto.WebhookOrderLineResponse{
			ID:       l.ID,
			ItemID:   l.ItemID,
			Name:     l.Name,
			Quantity: l.Quantity,
			Rate:     l.Rate,
			GSTSlab:  l.GSTSlab,
		})
	}
	return &dto.WebhookOrderResponse{
		ID:            o.ID,
		Kind:          o.Kind,
		CustomerID:    o.CustomerID,
		BuyerName:     o.BuyerName,
		BuyerEmail:    o.BuyerEmail,
		Lines:         lines,
		TaxableAmount: o.TaxableAmount,
		GSTAmount:     o.GSTAmount,
		Total:         o.Total,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
	}
}
