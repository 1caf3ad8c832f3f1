package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gstbook/gstbook-api/internal/application/dto"
	"github.com/gstbook/gstbook-api/internal/domain"
	"github.com/gstbook/gstbook-api/internal/domain/entity"
	"github.com/gstbook/gstbook-api/internal/domain/gst"
	"github.com/gstbook/gstbook-api/internal/domain/repository"
)

// ItemUseCase the four item catalogs; every method is scoped to a kind.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase builds the use case.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create adds a catalog item and derives its catalog-level tax columns.
// Purchase items must carry a company name not used by another purchase
// item.
func (uc *ItemUseCase) Create(ctx context.Context, kind string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	var fields []domain.FieldError
	if in.Name == "" {
		fields = append(fields, domain.FieldError{Field: "name", Reason: "required"})
	}
	if !in.Rate.IsPositive() {
		fields = append(fields, domain.FieldError{Field: "rate", Reason: "must be positive"})
	}
	if in.GSTSlab.IsNegative() || in.GSTSlab.GreaterThan(decimal.NewFromInt(100)) {
		fields = append(fields, domain.FieldError{Field: "gstSlab", Reason: "must be between 0 and 100"})
	}
	if kind == entity.ItemKindPurchase && in.CompanyName == "" {
		fields = append(fields, domain.FieldError{Field: "companyName", Reason: "required for purchase items"})
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}
	if kind == entity.ItemKindPurchase {
		existing, err := uc.repo.GetByCompanyName(ctx, kind, in.CompanyName)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicateCompanyName
		}
	}
	now := time.Now()
	item := &entity.Item{
		ID:           uuid.New().String(),
		Kind:         kind,
		Name:         in.Name,
		Type:         in.Type,
		HSNCode:      in.HSNCode,
		CompanyName:  in.CompanyName,
		ValidityDays: in.ValidityDays,
		Rate:         in.Rate,
		GSTSlab:      in.GSTSlab,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	deriveCatalogTax(item)
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID fetches one item of the kind.
func (uc *ItemUseCase) GetByID(ctx context.Context, kind, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// List returns a keyword-filtered page of the kind's catalog.
func (uc *ItemUseCase) List(ctx context.Context, kind string, page dto.PageRequest) (dto.Paged[*dto.ItemResponse], error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, kind, page.Keyword, page.PageSize, page.Offset())
	if err != nil {
		return dto.Paged[*dto.ItemResponse]{}, err
	}
	out := make([]*dto.ItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, toItemResponse(it))
	}
	return dto.NewPaged(out, page.PageNumber, page.PageSize, total), nil
}

// Search unpaginated typeahead lookup within the kind.
func (uc *ItemUseCase) Search(ctx context.Context, kind, keyword string) ([]*dto.ItemResponse, error) {
	list, err := uc.repo.Search(ctx, kind, keyword, 25)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, toItemResponse(it))
	}
	return out, nil
}

// Export returns the full filtered set of the kind's catalog, for the
// Excel/PDF download endpoints.
func (uc *ItemUseCase) Export(ctx context.Context, kind, keyword string) ([]*dto.ItemResponse, error) {
	list, _, err := uc.repo.List(ctx, kind, keyword, 10000, 0)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, toItemResponse(it))
	}
	return out, nil
}

// Update mutates pricing fields and re-derives the tax columns. Identity
// (kind) never changes.
func (uc *ItemUseCase) Update(ctx context.Context, kind, id string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		item.Name = in.Name
	}
	if in.Type != "" {
		item.Type = in.Type
	}
	if in.HSNCode != "" {
		item.HSNCode = in.HSNCode
	}
	if in.ValidityDays > 0 {
		item.ValidityDays = in.ValidityDays
	}
	if kind == entity.ItemKindPurchase && in.CompanyName != "" && in.CompanyName != item.CompanyName {
		existing, err := uc.repo.GetByCompanyName(ctx, kind, in.CompanyName)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicateCompanyName
		}
		item.CompanyName = in.CompanyName
	}
	if in.Rate.IsPositive() {
		item.Rate = in.Rate
	}
	if !in.GSTSlab.IsNegative() && !in.GSTSlab.GreaterThan(decimal.NewFromInt(100)) {
		item.GSTSlab = in.GSTSlab
	}
	deriveCatalogTax(item)
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete removes an item from its catalog.
func (uc *ItemUseCase) Delete(ctx context.Context, kind, id string) error {
	item, err := uc.repo.GetByID(ctx, kind, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, kind, id)
}

// deriveCatalogTax fills the catalog-level derivation for quantity 1. The
// catalog shows both splits (CGST+SGST and IGST); the applicable one is
// chosen per sale from the customer's state.
func deriveCatalogTax(item *entity.Item) {
	gstAmount := gst.Round2(item.Rate.Mul(item.GSTSlab).Div(decimal.NewFromInt(100)))
	half := gst.Round2(gstAmount.Div(decimal.NewFromInt(2)))
	item.CGST = half
	item.SGST = half
	item.IGST = gstAmount
	item.Total = gst.Round2(item.Rate.Add(gstAmount))
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:           it.ID,
		Kind:         it.Kind,
		Name:         it.Name,
		Type:         it.Type,
		HSNCode:      it.HSNCode,
		CompanyName:  it.CompanyName,
		ValidityDays: it.ValidityDays,
		Rate:         it.Rate,
		GSTSlab:      it.GSTSlab,
		CGST:         it.CGST,
		SGST:         it.SGST,
		IGST:         it.IGST,
		Total:        it.Total,
	}
}
