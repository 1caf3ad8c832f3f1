package reports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gstbook/gstbook-api/internal/application/dto"
	"github.com/gstbook/gstbook-api/internal/domain/repository"
)

// SummaryUseCase financial-year summary reports.
type SummaryUseCase struct {
	reports repository.ReportRepository
	gstPaid repository.GstPaidRepository
}

// NewSummaryUseCase builds the use case.
func NewSummaryUseCase(reports repository.ReportRepository, gstPaid repository.GstPaidRepository) *SummaryUseCase {
	return &SummaryUseCase{reports: reports, gstPaid: gstPaid}
}

// SalesByCustomer GST sales pivoted by customer. customerID, when non-empty,
// restricts the report to that customer.
func (uc *SummaryUseCase) SalesByCustomer(ctx context.Context, year int, customerID string) ([]dto.GroupSummary, error) {
	from, to := FYWindow(year)
	rows, err := uc.reports.SalesByCustomer(ctx, from, to, customerID)
	if err != nil {
		return nil, err
	}
	return Pivot(year, rows), nil
}

// SalesByItem GST sales pivoted by HSN code.
func (uc *SummaryUseCase) SalesByItem(ctx context.Context, year int, keyword string) ([]dto.GroupSummary, error) {
	from, to := FYWindow(year)
	rows, err := uc.reports.SalesByItem(ctx, from, to, keyword)
	if err != nil {
		return nil, err
	}
	return Pivot(year, rows), nil
}

// PurchasesByCompany purchases pivoted by supplier company.
func (uc *SummaryUseCase) PurchasesByCompany(ctx context.Context, year int, keyword string) ([]dto.GroupSummary, error) {
	from, to := FYWindow(year)
	rows, err := uc.reports.PurchasesByCompany(ctx, from, to, keyword)
	if err != nil {
		return nil, err
	}
	return Pivot(year, rows), nil
}

// ExpensesByItem expenses pivoted by expense item.
func (uc *SummaryUseCase) ExpensesByItem(ctx context.Context, year int, keyword string) ([]dto.GroupSummary, error) {
	from, to := FYWindow(year)
	rows, err := uc.reports.ExpensesByItem(ctx, from, to, keyword)
	if err != nil {
		return nil, err
	}
	return Pivot(year, rows), nil
}

// GstVariance GST collected on sales vs GST remitted, month by month across
// the financial year.
func (uc *SummaryUseCase) GstVariance(ctx context.Context, year int) (*dto.GstVarianceResponse, error) {
	from, to := FYWindow(year)
	collected, err := uc.reports.GstCollectedByMonth(ctx, from, to)
	if err != nil {
		return nil, err
	}
	keys := FYMonthKeys(year)
	paidRecords, err := uc.gstPaid.ListByMonths(ctx, keys[0], keys[len(keys)-1])
	if err != nil {
		return nil, err
	}
	paid := map[string]decimal.Decimal{}
	for _, rec := range paidRecords {
		paid[rec.Month] = paid[rec.Month].Add(rec.Amount)
	}

	resp := &dto.GstVarianceResponse{Year: year, Months: make([]dto.GstVarianceMonth, 0, len(keys))}
	for _, k := range keys {
		m := dto.GstVarianceMonth{
			Month:     k,
			Collected: collected[k],
			Paid:      paid[k],
		}
		m.Variance = m.Collected.Sub(m.Paid)
		resp.Months = append(resp.Months, m)
		resp.TotalCollected = resp.TotalCollected.Add(m.Collected)
		resp.TotalPaid = resp.TotalPaid.Add(m.Paid)
	}
	resp.TotalVariance = resp.TotalCollected.Sub(resp.TotalPaid)
	return resp, nil
}
