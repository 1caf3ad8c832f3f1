package reports

import (
	"github.com/gstbook/gstbook-api/internal/application/dto"
	"github.com/gstbook/gstbook-api/internal/domain/repository"
)

// Pivot buckets the rows group → month → rows for the given financial year.
// Groups appear in order of first occurrence in the input (the query orders
// by group label, so the output is stable). Every group that appears carries
// all twelve month buckets; months without activity keep an empty Rows slice.
func Pivot(year int, rows []repository.ReportRow) []dto.GroupSummary {
	monthKeys := FYMonthKeys(year)
	monthIndex := make(map[string]int, len(monthKeys))
	for i, k := range monthKeys {
		monthIndex[k] = i
	}

	var order []string
	grouped := map[string][]repository.ReportRow{}
	labels := map[string]string{}
	for _, r := range rows {
		if _, seen := grouped[r.GroupID]; !seen {
			order = append(order, r.GroupID)
			labels[r.GroupID] = r.GroupLabel
		}
		grouped[r.GroupID] = append(grouped[r.GroupID], r)
	}

	out := make([]dto.GroupSummary, 0, len(order))
	for _, groupID := range order {
		g := dto.GroupSummary{
			GroupID:    groupID,
			GroupLabel: labels[groupID],
			Months:     make([]dto.MonthBucket, len(monthKeys)),
		}
		for i, k := range monthKeys {
			g.Months[i] = dto.MonthBucket{Month: k, Rows: []repository.ReportRow{}}
		}
		for _, r := range grouped[groupID] {
			idx, ok := monthIndex[r.Date.Format("2006-01")]
			if !ok {
				continue // outside the window; the query should not produce these
			}
			b := &g.Months[idx]
			b.Rows = append(b.Rows, r)
			b.Count++
			b.TotalAmount = b.TotalAmount.Add(r.Total)
			g.Count++
			g.TotalAmount = g.TotalAmount.Add(r.Total)
		}
		out = append(out, g)
	}
	return out
}
