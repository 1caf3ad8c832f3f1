package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbook/gstbook-api/internal/domain/entity"
)

// An absent due date must reach the server as NULL. Matching the Go zero
// value inside SQL would only work when the server timezone is UTC.
func TestCreateSaleSendsNullForAbsentDueDate(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewSaleRepository(q)

	sale := &entity.Sale{
		ID:            "s1",
		Series:        entity.SeriesGST,
		InvoiceNumber: "A1001",
		BuyerName:     "Acme Traders",
		InvoiceDate:   time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(context.Background(), sale))

	require.Len(t, q.args, 1)
	due, ok := q.args[0][6].(*time.Time)
	require.True(t, ok)
	assert.Nil(t, due)
	assert.NotContains(t, q.sql[0], "0001-01-01")
}

func TestCreateSaleSendsDueDateWhenSet(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewSaleRepository(q)

	dueDate := time.Date(2025, time.July, 2, 0, 0, 0, 0, time.UTC)
	sale := &entity.Sale{
		ID:            "s1",
		Series:        entity.SeriesGST,
		InvoiceNumber: "A1001",
		InvoiceDate:   time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
		DueDate:       dueDate,
	}
	require.NoError(t, repo.Create(context.Background(), sale))

	require.Len(t, q.args, 1)
	due, ok := q.args[0][6].(*time.Time)
	require.True(t, ok)
	require.NotNil(t, due)
	assert.True(t, due.Equal(dueDate))
}

func TestUpdateSaleSendsNullForAbsentDueDate(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewSaleRepository(q)

	sale := &entity.Sale{
		ID:          "s1",
		Series:      entity.SeriesGST,
		BuyerName:   "Acme Traders",
		InvoiceDate: time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Update(context.Background(), sale))

	require.NotEmpty(t, q.args)
	due, ok := q.args[0][3].(*time.Time)
	require.True(t, ok)
	assert.Nil(t, due)
	assert.NotContains(t, q.sql[0], "0001-01-01")
}
