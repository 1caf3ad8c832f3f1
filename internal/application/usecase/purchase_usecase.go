package usecase

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

// PurchaseUseCase inward supplies. Purchases carry the full GST breakdown;
// inward GST is always CGST+SGST here (local suppliers), matching the
// catalog derivation.
type PurchaseUseCase struct {
	repo     repository.PurchaseRepository
	itemRepo repository.ItemRepository
}

// NewPurchaseUseCase builds the use case.
func NewPurchaseUseCase(repo repository.PurchaseRepository, itemRepo repository.ItemRepository) *PurchaseUseCase {
	return &PurchaseUseCase{repo: repo, itemRepo: itemRepo}
}

// Create records a purchase against a purchase-catalog item.
func (uc *PurchaseUseCase) Create(ctx context.Context, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.ItemID == "" {
		return nil, domain.Invalid("itemId", "required")
	}
	if in.Quantity <= 0 {
		return nil, domain.Invalid("quantity", "must be positive")
	}
	item, err := uc.itemRepo.GetByID(ctx, entity.ItemKindPurchase, in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	price := in.Price
	if price.IsZero() {
		price = item.Rate
	}
	lt, err := gst.ComputeLine(in.Quantity, price, item.GSTSlab, false)
	if err != nil {
		return nil, domain.Invalid("price", err.Error())
	}
	date := time.Now()
	if in.Date != "" {
		if date, err = time.Parse(dateLayout, in.Date); err != nil {
			return nil, domain.Invalid("date", "must be YYYY-MM-DD")
		}
	}
	now := time.Now()
	p := &entity.Purchase{
		ID:            uuid.New().String(),
		ItemID:        item.ID,
		ItemName:      item.Name,
		CompanyName:   item.CompanyName,
		HSNCode:       item.HSNCode,
		Date:          date,
		Quantity:      in.Quantity,
		Price:         price,
		GSTSlab:       item.GSTSlab,
		TaxableAmount: lt.TaxableAmount,
		CGST:          lt.CGST,
		SGST:          lt.SGST,
		IGST:          lt.IGST,
		Total:         lt.Total,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPurchaseResponse(p), nil
}

// GetByID fetches one purchase.
func (uc *PurchaseUseCase) GetByID(ctx context.Context, id string) (*dto.PurchaseResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toPurchaseResponse(p), nil
}

// List returns a keyword-filtered page.
func (uc *PurchaseUseCase) List(ctx context.Context, page dto.PageRequest) (dto.Paged[*dto.PurchaseResponse], error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, page.Keyword, page.PageSize, page.Offset())
	if err != nil {
		return dto.Paged[*dto.PurchaseResponse]{}, err
	}
	out := make([]*dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPurchaseResponse(p))
	}
	return dto.NewPaged(out, page.PageNumber, page.PageSize, total), nil
}

// Search unpaginated typeahead lookup.
func (uc *PurchaseUseCase) Search(ctx context.Context, keyword string) ([]*dto.PurchaseResponse, error) {
	list, err := uc.repo.Search(ctx, keyword, 25)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPurchaseResponse(p))
	}
	return out, nil
}

// Export returns the full filtered set, for the Excel/PDF download
// endpoints.
func (uc *PurchaseUseCase) Export(ctx context.Context, keyword string) ([]*dto.PurchaseResponse, error) {
	list, _, err := uc.repo.List(ctx, keyword, 10000, 0)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPurchaseResponse(p))
	}
	return out, nil
}

// Update administrative correction; re-derives the GST breakdown.
func (uc *PurchaseUseCase) Update(ctx context.Context, id string, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Quantity > 0 {
		p.Quantity = in.Quantity
	}
	if in.Price.IsPositive() {
		p.Price = in.Price
	}
	if in.Date != "" {
		date, err := time.Parse(dateLayout, in.Date)
		if err != nil {
			return nil, domain.Invalid("date", "must be YYYY-MM-DD")
		}
		p.Date = date
	}
	if in.PaymentMethod != "" {
		p.PaymentMethod = in.PaymentMethod
	}
	lt, err := gst.ComputeLine(p.Quantity, p.Price, p.GSTSlab, false)
	if err != nil {
		return nil, domain.Invalid("price", err.Error())
	}
	p.TaxableAmount = lt.TaxableAmount
	p.CGST = lt.CGST
	p.SGST = lt.SGST
	p.IGST = lt.IGST
	p.Total = lt.Total
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPurchaseResponse(p), nil
}

// Delete removes a purchase.
func (uc *PurchaseUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	return &dto.PurchaseResponse{
		ID:            p.ID,
		ItemID:        p.ItemID,
		ItemName:      p.ItemName,
		CompanyName:   p.CompanyName,
		HSNCode:       p.HSNCode,
		Date:          p.Date.Format(dateLayout),
		Quantity:      p.Quantity,
		Price:         p.Price,
		GSTSlab:       p.GSTSlab,
		TaxableAmount: p.TaxableAmount,
		CGST:          p.CGST,
		SGST:          p.SGST,
		IGST:          p.IGST,
		Total:         p.Total,
		PaymentMethod: p.PaymentMethod,
	}
}
