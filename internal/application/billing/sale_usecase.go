package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gstbook/gstbook-api/internal/application/dto"
	"github.com/gstbook/gstbook-api/internal/domain"
	"github.com/gstbook/gstbook-api/internal/domain/entity"
	"github.com/gstbook/gstbook-api/internal/domain/gst"
	"github.com/gstbook/gstbook-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// SaleUseCase creates and manages invoices of both series. Creation runs
// inside a transaction so the invoice number assigned by the sequence counter
// and the inserted sale always agree.
type SaleUseCase struct {
	tx        SaleTxRunner
	sales     repository.SaleRepository
	customers repository.CustomerRepository
	items     repository.ItemRepository
	homeState string
}

// NewSaleUseCase builds the use case. sales is the pool-backed repository
// used for reads; writes go through tx.
func NewSaleUseCase(tx SaleTxRunner, sales repository.SaleRepository, customers repository.CustomerRepository, items repository.ItemRepository, homeState string) *SaleUseCase {
	return &SaleUseCase{tx: tx, sales: sales, customers: customers, items: items, homeState: homeState}
}

// itemKindForSeries maps an invoice series to the catalog its lines come from.
func itemKindForSeries(series string) string {
	if series == entity.SeriesCash {
		return entity.ItemKindCash
	}
	return entity.ItemKindGST
}

// Create confirms a new sale. An empty invoice number means "assign the next
// number in the series"; an explicit number is parsed, checked for series
// membership and rejected as a duplicate before the insert.
func (uc *SaleUseCase) Create(ctx context.Context, series string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	sale, _, err := uc.buildSale(ctx, series, in)
	if err != nil {
		return nil, err
	}

	err = uc.tx.RunSale(ctx, func(sales repository.SaleRepository, seqs repository.SequenceRepository) error {
		return assignNumberAndInsert(ctx, sales, seqs, sale, in.InvoiceNumber)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// assignNumberAndInsert issues (or validates) the invoice number and persists
// the sale, inside the caller's transaction.
func assignNumberAndInsert(ctx context.Context, sales repository.SaleRepository, seqs repository.SequenceRepository, sale *entity.Sale, requested string) error {
	if requested == "" {
		n, err := seqs.Next(ctx, sale.Series)
		if err != nil {
			return err
		}
		sale.InvoiceNumber = gst.FormatInvoiceNumber(sale.Series, n)
	} else {
		if _, err := gst.ParseInvoiceNumber(sale.Series, requested); err != nil {
			return domain.Invalid("invoiceNumber", err.Error())
		}
		exists, err := sales.ExistsInvoiceNumber(ctx, sale.Series, requested)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrDuplicateInvoiceNo
		}
		sale.InvoiceNumber = requested
	}
	return sales.Create(ctx, sale)
}

// buildSale validates the request and derives every stored amount. The
// invoice number is left empty; it is assigned inside the transaction.
func (uc *SaleUseCase) buildSale(ctx context.Context, series string, in dto.CreateSaleRequest) (*entity.Sale, *entity.Customer, error) {
	if len(in.Lines) == 0 {
		return nil, nil, domain.Invalid("lines", "at least one line is required")
	}
	if in.ShippingCharges.IsNegative() {
		return nil, nil, domain.Invalid("shippingCharges", "must not be negative")
	}
	if in.Discount.IsNegative() {
		return nil, nil, domain.Invalid("discount", "must not be negative")
	}
	if in.AdvancePaid.IsNegative() {
		return nil, nil, domain.Invalid("advancePaid", "must not be negative")
	}

	var (
		customer   *entity.Customer
		buyerName  = in.BuyerName
		interState bool
	)
	if series == entity.SeriesGST {
		if in.CustomerID == "" {
			return nil, nil, domain.Invalid("customerId", "required for GST sales")
		}
		c, err := uc.customers.GetByID(ctx, in.CustomerID)
		if err != nil {
			return nil, nil, err
		}
		if c == nil {
			return nil, nil, domain.ErrNotFound
		}
		customer = c
		buyerName = c.Name
		interState = gst.InterState(c.PlaceOfSupply, uc.homeState)
	} else if buyerName == "" {
		return nil, nil, domain.Invalid("buyerName", "required for cash sales")
	}

	invoiceDate := time.Now()
	var err error
	if in.InvoiceDate != "" {
		if invoiceDate, err = time.Parse(dateLayout, in.InvoiceDate); err != nil {
			return nil, nil, domain.Invalid("invoiceDate", "must be YYYY-MM-DD")
		}
	}
	var dueDate time.Time
	if in.DueDate != "" {
		if dueDate, err = time.Parse(dateLayout, in.DueDate); err != nil {
			return nil, nil, domain.Invalid("dueDate", "must be YYYY-MM-DD")
		}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:               uuid.New().String(),
		Series:           series,
		CustomerID:       in.CustomerID,
		BuyerName:        buyerName,
		InvoiceDate:      invoiceDate,
		DueDate:          dueDate,
		ShippingCharges:  in.ShippingCharges,
		Discount:         in.Discount,
		OtherAdjustments: in.OtherAdjustments,
		AdvancePaid:      in.AdvancePaid,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.deriveLines(ctx, sale, in.Lines, interState); err != nil {
		return nil, nil, err
	}
	return sale, customer, nil
}

// deriveLines prices the lines from the catalog, computes the tax split and
// fills the invoice-level totals.
func (uc *SaleUseCase) deriveLines(ctx context.Context, sale *entity.Sale, lines []dto.SaleLineRequest, interState bool) error {
	kind := itemKindForSeries(sale.Series)
	taxes := make([]gst.LineTax, 0, len(lines))
	sale.Lines = sale.Lines[:0]

	for _, lr := range lines {
		if lr.ItemID == "" {
			return domain.Invalid("lines.itemId", "required")
		}
		item, err := uc.items.GetByID(ctx, kind, lr.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		rate := lr.Rate
		if rate.IsZero() {
			rate = item.Rate
		}
		lt, err := gst.ComputeLine(lr.Quantity, rate, item.GSTSlab, interState)
		if err != nil {
			return domain.Invalid("lines", err.Error())
		}
		taxes = append(taxes, lt)
		sale.Lines = append(sale.Lines, entity.SaleLine{
			ID:            uuid.New().String(),
			SaleID:        sale.ID,
			ItemID:        item.ID,
			Name:          item.Name,
			HSNCode:       item.HSNCode,
			Quantity:      lr.Quantity,
			Rate:          rate,
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
	gstAmount := t.CGST.Add(t.SGST).Add(t.IGST)
	sale.Total = gst.InvoiceTotal(t.TaxableAmount, gstAmount, sale.ShippingCharges, sale.Discount, sale.OtherAdjustments)
	sale.BalanceDue = gst.Round2(sale.Total.Sub(sale.AdvancePaid))
	return nil
}

// GetByID fetches one sale of the series.
func (uc *SaleUseCase) GetByID(ctx context.Context, series, id string) (*dto.SaleResponse, error) {
	sale, err := uc.sales.GetByID(ctx, series, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// List returns a keyword-filtered page of the series.
func (uc *SaleUseCase) List(ctx context.Context, series string, page dto.PageRequest) (dto.Paged[*dto.SaleResponse], error) {
	page.DefaultPage()
	list, total, err := uc.sales.List(ctx, series, page.Keyword, page.PageSize, page.Offset())
	if err != nil {
		return dto.Paged[*dto.SaleResponse]{}, err
	}
	out := make([]*dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSaleResponse(s))
	}
	return dto.NewPaged(out, page.PageNumber, page.PageSize, total), nil
}

// Search unpaginated typeahead lookup within the series.
func (uc *SaleUseCase) Search(ctx context.Context, series, keyword string) ([]*dto.SaleResponse, error) {
	list, err := uc.sales.Search(ctx, series, keyword, 25)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

// Export returns the full filtered set as entities, for the Excel/PDF
// download endpoints.
func (uc *SaleUseCase) Export(ctx context.Context, series, keyword string) ([]*entity.Sale, error) {
	list, _, err := uc.sales.List(ctx, series, keyword, 10000, 0)
	return list, err
}

// Entity fetches the raw sale with its customer, for rendering.
func (uc *SaleUseCase) Entity(ctx context.Context, series, id string) (*entity.Sale, *entity.Customer, error) {
	sale, err := uc.sales.GetByID(ctx, series, id)
	if err != nil {
		return nil, nil, err
	}
	if sale == nil {
		return nil, nil, domain.ErrNotFound
	}
	var customer *entity.Customer
	if sale.CustomerID != "" {
		if customer, err = uc.customers.GetByID(ctx, sale.CustomerID); err != nil {
			return nil, nil, err
		}
	}
	return sale, customer, nil
}

// Update is administrative correction: header charges, dates and advance may
// change, lines are re-priced and replaced when supplied. The invoice number
// never changes.
func (uc *SaleUseCase) Update(ctx context.Context, series, id string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := uc.sales.GetByID(ctx, series, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if in.ShippingCharges.IsNegative() || in.Discount.IsNegative() || in.AdvancePaid.IsNegative() {
		return nil, domain.Invalid("charges", "must not be negative")
	}
	interState := !sale.IGST.IsZero()
	if in.InvoiceDate != "" {
		d, err := time.Parse(dateLayout, in.InvoiceDate)
		if err != nil {
			return nil, domain.Invalid("invoiceDate", "must be YYYY-MM-DD")
		}
		sale.InvoiceDate = d
	}
	if in.DueDate != "" {
		d, err := time.Parse(dateLayout, in.DueDate)
		if err != nil {
			return nil, domain.Invalid("dueDate", "must be YYYY-MM-DD")
		}
		sale.DueDate = d
	}
	if series == entity.SeriesCash && in.BuyerName != "" {
		sale.BuyerName = in.BuyerName
	}
	sale.ShippingCharges = in.ShippingCharges
	sale.Discount = in.Discount
	sale.OtherAdjustments = in.OtherAdjustments
	sale.AdvancePaid = in.AdvancePaid

	if len(in.Lines) > 0 {
		if err := uc.deriveLines(ctx, sale, in.Lines, interState); err != nil {
			return nil, err
		}
	} else {
		gstAmount := sale.CGST.Add(sale.SGST).Add(sale.IGST)
		sale.Total = gst.InvoiceTotal(sale.TaxableAmount, gstAmount, sale.ShippingCharges, sale.Discount, sale.OtherAdjustments)
		sale.BalanceDue = gst.Round2(sale.Total.Sub(sale.AdvancePaid))
	}
	sale.UpdatedAt = time.Now()
	if err := uc.sales.Update(ctx, sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// Delete removes a sale. The sequence counter is not rewound; invoice
// numbers are never reused.
func (uc *SaleUseCase) Delete(ctx context.Context, series, id string) error {
	sale, err := uc.sales.GetByID(ctx, series, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	return uc.sales.Delete(ctx, series, id)
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	lines := make([]dto.SaleLineResponse, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, dto.SaleLineResponse{
			ID:            l.ID,
			ItemID:        l.ItemID,
			Name:          l.Name,
			HSNCode:       l.HSNCode,
			Quantity:      l.Quantity,
			Rate:          l.Rate,
			GSTSlab:       l.GSTSlab,
			TaxableAmount: l.TaxableAmount,
			CGST:          l.CGST,
			SGST:          l.SGST,
			IGST:          l.IGST,
			Total:         l.Total,
		})
	}
	resp := &dto.SaleResponse{
		ID:               s.ID,
		Series:           s.Series,
		InvoiceNumber:    s.InvoiceNumber,
		CustomerID:       s.CustomerID,
		BuyerName:        s.BuyerName,
		InvoiceDate:      s.InvoiceDate.Format(dateLayout),
		Lines:            lines,
		TaxableAmount:    s.TaxableAmount,
		CGST:             s.CGST,
		SGST:             s.SGST,
		IGST:             s.IGST,
		ShippingCharges:  s.ShippingCharges,
		Discount:         s.Discount,
		OtherAdjustments: s.OtherAdjustments,
		Total:            s.Total,
		AdvancePaid:      s.AdvancePaid,
		BalanceDue:       s.BalanceDue,
	}
	if !s.DueDate.IsZero() {
		resp.DueDate = s.DueDate.Format(dateLayout)
	}
	return resp
}
