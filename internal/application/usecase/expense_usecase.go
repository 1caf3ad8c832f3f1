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

// ExpenseUseCase business expenses (no GST breakdown).
type ExpenseUseCase struct {
	repo     repository.ExpenseRepository
	itemRepo repository.ItemRepository
}

// NewExpenseUseCase builds the use case.
func NewExpenseUseCase(repo repository.ExpenseRepository, itemRepo repository.ItemRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, itemRepo: itemRepo}
}

// Create records an expense against an expense-catalog item.
func (uc *ExpenseUseCase) Create(ctx context.Context, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.ItemID == "" {
		return nil, domain.Invalid("itemId", "required")
	}
	if in.Quantity <= 0 {
		return nil, domain.Invalid("quantity", "must be positive")
	}
	item, err := uc.itemRepo.GetByID(ctx, entity.ItemKindExpense, in.ItemID)
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
	if !price.IsPositive() {
		return nil, domain.Invalid("price", "must be positive")
	}
	date := time.Now()
	if in.Date != "" {
		if date, err = time.Parse(dateLayout, in.Date); err != nil {
			return nil, domain.Invalid("date", "must be YYYY-MM-DD")
		}
	}
	now := time.Now()
	e := &entity.Expense{
		ID:            uuid.New().String(),
		ItemID:        item.ID,
		ItemName:      item.Name,
		Date:          date,
		Quantity:      in.Quantity,
		Price:         price,
		Total:         gst.Round2(price.Mul(decimal.NewFromInt(int64(in.Quantity)))),
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// GetByID fetches one expense.
func (uc *ExpenseUseCase) GetByID(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toExpenseResponse(e), nil
}

// List returns a keyword-filtered page.
func (uc *ExpenseUseCase) List(ctx context.Context, page dto.PageRequest) (dto.Paged[*dto.ExpenseResponse], error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, page.Keyword, page.PageSize, page.Offset())
	if err != nil {
		return dto.Paged[*dto.ExpenseResponse]{}, err
	}
	out := make([]*dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toExpenseResponse(e))
	}
	return dto.NewPaged(out, page.PageNumber, page.PageSize, total), nil
}

// Search unpaginated typeahead lookup.
func (uc *ExpenseUseCase) Search(ctx context.Context, keyword string) ([]*dto.ExpenseResponse, error) {
	list, err := uc.repo.Search(ctx, keyword, 25)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toExpenseResponse(e))
	}
	return out, nil
}

// Export returns the full filtered set, for the Excel/PDF download
// endpoints.
func (uc *ExpenseUseCase) Export(ctx context.Context, keyword string) ([]*dto.ExpenseResponse, error) {
	list, _, err := uc.repo.List(ctx, keyword, 10000, 0)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toExpenseResponse(e))
	}
	return out, nil
}

// Update administrative correction; recomputes the total.
func (uc *ExpenseUseCase) Update(ctx context.Context, id string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if in.Quantity > 0 {
		e.Quantity = in.Quantity
	}
	if in.Price.IsPositive() {
		e.Price = in.Price
	}
	if in.Date != "" {
		date, err := time.Parse(dateLayout, in.Date)
		if err != nil {
			return nil, domain.Invalid("date", "must be YYYY-MM-DD")
		}
		e.Date = date
	}
	if in.PaymentMethod != "" {
		e.PaymentMethod = in.PaymentMethod
	}
	e.Total = gst.Round2(e.Price.Mul(decimal.NewFromInt(int64(e.Quantity))))
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// Delete removes an expense.
func (uc *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:            e.ID,
		ItemID:        e.ItemID,
		ItemName:      e.ItemName,
		Date:          e.Date.Format(dateLayout),
		Quantity:      e.Quantity,
		Price:         e.Price,
		Total:         e.Total,
		PaymentMethod: e.PaymentMethod,
	}
}
