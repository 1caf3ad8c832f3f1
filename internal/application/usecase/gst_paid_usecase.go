package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gstbook/gstbook-api/internal/application/dto"
	"github.com/gstbook/gstbook-api/internal/domain"
	"github.com/gstbook/gstbook-api/internal/domain/entity"
	"github.com/gstbook/gstbook-api/internal/domain/repository"
)

const monthLayout = "2006-01"

// GstPaidUseCase monthly GST remittance records.
type GstPaidUseCase struct {
	repo repository.GstPaidRepository
}

// NewGstPaidUseCase builds the use case.
func NewGstPaidUseCase(repo repository.GstPaidRepository) *GstPaidUseCase {
	return &GstPaidUseCase{repo: repo}
}

// Create records tax remitted for a month.
func (uc *GstPaidUseCase) Create(ctx context.Context, in dto.CreateGstPaidRequest) (*dto.GstPaidResponse, error) {
	if _, err := time.Parse(monthLayout, in.Month); err != nil {
		return nil, domain.Invalid("month", "must be YYYY-MM")
	}
	if !in.Amount.IsPositive() {
		return nil, domain.Invalid("amount", "must be positive")
	}
	now := time.Now()
	rec := &entity.GstPaid{
		ID:        uuid.New().String(),
		Month:     in.Month,
		Amount:    in.Amount,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return toGstPaidResponse(rec), nil
}

// ListForYear returns the records inside the financial year window.
func (uc *GstPaidUseCase) ListForYear(ctx context.Context, year int) ([]*dto.GstPaidResponse, error) {
	from, to := FYMonths(year)
	list, err := uc.repo.ListByMonths(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.GstPaidResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toGstPaidResponse(r))
	}
	return out, nil
}

// Update administrative correction.
func (uc *GstPaidUseCase) Update(ctx context.Context, id string, in dto.CreateGstPaidRequest) (*dto.GstPaidResponse, error) {
	rec, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	if in.Month != "" {
		if _, err := time.Parse(monthLayout, in.Month); err != nil {
			return nil, domain.Invalid("month", "must be YYYY-MM")
		}
		rec.Month = in.Month
	}
	if in.Amount.IsPositive() {
		rec.Amount = in.Amount
	}
	if in.Notes != "" {
		rec.Notes = in.Notes
	}
	rec.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, rec); err != nil {
		return nil, err
	}
	return toGstPaidResponse(rec), nil
}

// Delete removes a remittance record.
func (uc *GstPaidUseCase) Delete(ctx context.Context, id string) error {
	rec, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// FYMonths returns the first and last month keys of the financial year:
// FYMonths(2025) = ("2025-04", "2026-03").
func FYMonths(year int) (string, string) {
	return time.Date(year, time.April, 1, 0, 0, 0, 0, time.UTC).Format(monthLayout),
		time.Date(year+1, time.March, 1, 0, 0, 0, 0, time.UTC).Format(monthLayout)
}

func toGstPaidResponse(r *entity.GstPaid) *dto.GstPaidResponse {
	return &dto.GstPaidResponse{ID: r.ID, Month: r.Month, Amount: r.Amount, Notes: r.Notes}
}
