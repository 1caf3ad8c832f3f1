package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fyWindow() (time.Time, time.Time) {
	from := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(1, 0, 0)
}

// The customer filter must compare the uuid column as text. Comparing the
// column directly against the text parameter has no uuid = text operator, so
// every summary call would fail with SQLSTATE 42883.
func TestSalesByCustomerFilterComparesUUIDAsText(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewReportRepository(q)

	from, to := fyWindow()
	_, err := repo.SalesByCustomer(context.Background(), from, to, "7d0f2a9e-0000-0000-0000-000000000000")
	require.ErrorIs(t, err, errNoDatabase)

	require.Len(t, q.sql, 1)
	assert.Contains(t, q.sql[0], "s.customer_id::text = $4")
	assert.NotContains(t, q.sql[0], "s.customer_id = $4")
}

func TestSalesByCustomerPassesWindowAndFilter(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewReportRepository(q)

	from, to := fyWindow()
	_, err := repo.SalesByCustomer(context.Background(), from, to, "")
	require.ErrorIs(t, err, errNoDatabase)

	require.Len(t, q.args, 1)
	require.Len(t, q.args[0], 4)
	assert.Equal(t, from, q.args[0][1])
	assert.Equal(t, to, q.args[0][2])
	assert.Equal(t, "", q.args[0][3])
}
