package pdf

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableRows(n int) [][]string {
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, []string{fmt.Sprintf("row %d", i), "2025-06-02", "100.00"})
	}
	return rows
}

func TestRenderProducesPDF(t *testing.T) {
	r := NewTableRenderer()

	data, err := r.Render("Expenses", []string{"Item", "Date", "Total"}, tableRows(3), TableOptions{})
	require.NoError(t, err)
	assert.True(t, len(data) > 4 && string(data[:4]) == "%PDF")
}

// A data set far beyond one page must still render; the header rows are
// registered as the page header so they repeat on every page.
func TestRenderSpansMultiplePages(t *testing.T) {
	r := NewTableRenderer()

	data, err := r.Render("Expenses", []string{"Item", "Date", "Total"}, tableRows(200), TableOptions{})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRenderScaleShrinksRows(t *testing.T) {
	r := NewTableRenderer()
	headers := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}
	row := make([]string, len(headers))
	for i := range row {
		row[i] = "x"
	}

	data, err := r.Render("Wide", headers, [][]string{row}, TableOptions{Landscape: true, Scale: 0.8})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRenderZeroScaleDefaultsToOne(t *testing.T) {
	r := NewTableRenderer()

	data, err := r.Render("Expenses", []string{"Item"}, tableRows(1), TableOptions{Scale: 0})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRenderRejectsEmptyHeaderSet(t *testing.T) {
	r := NewTableRenderer()

	_, err := r.Render("Empty", nil, nil, TableOptions{})
	assert.Error(t, err)
}
