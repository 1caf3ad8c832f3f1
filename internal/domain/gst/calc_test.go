package gst_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbook/gstbook-api/internal/domain/gst"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeLine_IntraState(t *testing.T) {
	// q=2, r=500, slab=18%, same state -> 1000.00 / 180.00 / 90+90 / 1180.00
	lt, err := gst.ComputeLine(2, d("500"), d("18"), false)
	require.NoError(t, err)

	assert.True(t, lt.TaxableAmount.Equal(d("1000.00")), "taxable: %s", lt.TaxableAmount)
	assert.True(t, lt.GSTAmount.Equal(d("180.00")), "gst: %s", lt.GSTAmount)
	assert.True(t, lt.CGST.Equal(d("90.00")))
	assert.True(t, lt.SGST.Equal(d("90.00")))
	assert.True(t, lt.IGST.IsZero(), "intra-state line must carry no IGST")
	assert.True(t, lt.Total.Equal(d("1180.00")))
}

func TestComputeLine_InterState(t *testing.T) {
	lt, err := gst.ComputeLine(2, d("500"), d("18"), true)
	require.NoError(t, err)

	assert.True(t, lt.IGST.Equal(d("180.00")))
	assert.True(t, lt.CGST.IsZero(), "inter-state line must carry no CGST")
	assert.True(t, lt.SGST.IsZero(), "inter-state line must carry no SGST")
	assert.True(t, lt.Total.Equal(d("1180.00")))
}

func TestComputeLine_RoundsEachDerivedQuantity(t *testing.T) {
	// 3 x 33.33 = 99.99; 18% = 17.9982 -> 18.00; half = 9.00
	lt, err := gst.ComputeLine(3, d("33.33"), d("18"), false)
	require.NoError(t, err)

	assert.True(t, lt.TaxableAmount.Equal(d("99.99")))
	assert.True(t, lt.GSTAmount.Equal(d("18.00")), "gst must be rounded before the split: %s", lt.GSTAmount)
	assert.True(t, lt.CGST.Equal(d("9.00")))
	assert.True(t, lt.SGST.Equal(d("9.00")))
	assert.True(t, lt.Total.Equal(d("117.99")))
}

func TestComputeLine_OddPaisaSplit(t *testing.T) {
	// taxable 100.00, slab 2.5% -> gst 2.50, half 1.25 each
	lt, err := gst.ComputeLine(1, d("100"), d("2.5"), false)
	require.NoError(t, err)
	assert.True(t, lt.CGST.Equal(d("1.25")))
	assert.True(t, lt.SGST.Equal(d("1.25")))
}

func TestComputeLine_DataErrors(t *testing.T) {
	cases := []struct {
		name string
		qty  int
		rate string
		slab string
	}{
		{"zero quantity", 0, "500", "18"},
		{"negative quantity", -1, "500", "18"},
		{"zero rate", 2, "0", "18"},
		{"negative rate", 2, "-10", "18"},
		{"negative slab", 2, "500", "-1"},
		{"slab above 100", 2, "500", "101"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gst.ComputeLine(tc.qty, d(tc.rate), d(tc.slab), false)
			assert.Error(t, err, "invalid line data must fail, never default")
		})
	}
}

func TestSumLines_AndInvoiceTotal(t *testing.T) {
	l1, err := gst.ComputeLine(2, d("500"), d("18"), false)
	require.NoError(t, err)
	l2, err := gst.ComputeLine(1, d("250.50"), d("12"), false)
	require.NoError(t, err)

	totals := gst.SumLines([]gst.LineTax{l1, l2})
	assert.True(t, totals.TaxableAmount.Equal(d("1250.50")))
	assert.True(t, totals.CGST.Equal(d("105.03")))
	assert.True(t, totals.SGST.Equal(d("105.03")))
	assert.True(t, totals.IGST.IsZero())

	// total = taxable + gst + shipping - discount + adjustments
	gstAmount := totals.CGST.Add(totals.SGST).Add(totals.IGST)
	got := gst.InvoiceTotal(totals.TaxableAmount, gstAmount, d("50"), d("10.56"), d("0.06"))
	assert.True(t, got.Equal(d("1500.06")), "got %s", got)
}

func TestInterState(t *testing.T) {
	assert.False(t, gst.InterState("Maharashtra", "Maharashtra"))
	assert.False(t, gst.InterState("maharashtra ", "Maharashtra"))
	assert.True(t, gst.InterState("Karnataka", "Maharashtra"))
}
