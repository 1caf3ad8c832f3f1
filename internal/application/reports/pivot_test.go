package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbook/gstbook-api/internal/domain/repository"
)

func row(groupID, label string, date time.Time, total string) repository.ReportRow {
	return repository.ReportRow{
		GroupID:    groupID,
		GroupLabel: label,
		Date:       date,
		Total:      decimal.RequireFromString(total),
	}
}

func TestFYWindow(t *testing.T) {
	from, to := FYWindow(2025)
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestFYMonthKeysSpansAprilToMarch(t *testing.T) {
	keys := FYMonthKeys(2025)
	require.Len(t, keys, 12)
	assert.Equal(t, "2025-04", keys[0])
	assert.Equal(t, "2025-12", keys[8])
	assert.Equal(t, "2026-01", keys[9])
	assert.Equal(t, "2026-03", keys[11])
}

func TestPivotBucketsEveryRowExactlyOnce(t *testing.T) {
	rows := []repository.ReportRow{
		row("c1", "Acme", time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC), "100"),
		row("c1", "Acme", time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC), "50"),
		row("c2", "Globex", time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC), "75.50"),
		row("c1", "Acme", time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), "25"),
	}

	groups := Pivot(2025, rows)
	require.Len(t, groups, 2)

	bucketed := 0
	for _, g := range groups {
		require.Len(t, g.Months, 12, "every group carries all twelve months")
		monthSum := decimal.Zero
		count := 0
		for _, m := range g.Months {
			bucketed += len(m.Rows)
			monthSum = monthSum.Add(m.TotalAmount)
			count += m.Count
		}
		assert.True(t, g.TotalAmount.Equal(monthSum), "group total equals sum of month buckets")
		assert.Equal(t, g.Count, count)
	}
	assert.Equal(t, len(rows), bucketed)
}

func TestPivotGroupOrderFollowsFirstOccurrence(t *testing.T) {
	rows := []repository.ReportRow{
		row("c2", "Globex", time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), "10"),
		row("c1", "Acme", time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC), "20"),
		row("c2", "Globex", time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), "30"),
	}

	groups := Pivot(2025, rows)
	require.Len(t, groups, 2)
	assert.Equal(t, "c2", groups[0].GroupID)
	assert.Equal(t, "c1", groups[1].GroupID)
	assert.Equal(t, "40", groups[0].TotalAmount.String())
}

func TestPivotEmptyMonthsKeepEmptyRows(t *testing.T) {
	rows := []repository.ReportRow{
		row("c1", "Acme", time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC), "100"),
	}

	groups := Pivot(2025, rows)
	require.Len(t, groups, 1)
	for i, m := range groups[0].Months {
		if m.Month == "2025-07" {
			assert.Len(t, m.Rows, 1)
			continue
		}
		assert.Empty(t, m.Rows, "month %d", i)
		assert.NotNil(t, m.Rows, "empty months keep an empty slice, not nil")
		assert.True(t, m.TotalAmount.IsZero())
	}
}

func TestPivotNoRowsNoGroups(t *testing.T) {
	assert.Empty(t, Pivot(2025, nil))
}
