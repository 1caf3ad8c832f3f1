// Package reports builds the financial-year summary pivots: one SQL pass
// collects the rows, then grouping and month bucketing happen here so every
// row lands in exactly one group and one month bucket.
package reports

import "time"

// FYWindow returns the half-open financial-year window [Apr 1 Y, Apr 1 Y+1).
func FYWindow(year int) (time.Time, time.Time) {
	from := time.Date(year, time.April, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(1, 0, 0)
}

// FYMonthKeys returns the twelve month keys of the financial year in
// calendar order, "2025-04" through "2026-03".
func FYMonthKeys(year int) []string {
	keys := make([]string, 0, 12)
	m := time.Date(year, time.April, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		keys = append(keys, m.Format("2006-01"))
		m = m.AddDate(0, 1, 0)
	}
	return keys
}
