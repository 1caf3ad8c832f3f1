package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstbook/gstbook-api/internal/domain/gst"
)

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "A1042", gst.FormatInvoiceNumber("A", 1042))
	assert.Equal(t, "B1001", gst.FormatInvoiceNumber("B", gst.SeedNumber+1))
}

func TestParseInvoiceNumber(t *testing.T) {
	n, err := gst.ParseInvoiceNumber("A", "A1042")
	require.NoError(t, err)
	assert.Equal(t, int64(1042), n)

	// round-trip with the next number in the series
	assert.Equal(t, "A1043", gst.FormatInvoiceNumber("A", n+1))
}

func TestParseInvoiceNumber_Rejects(t *testing.T) {
	for _, bad := range []struct{ series, number string }{
		{"A", "B1042"},  // wrong series
		{"A", "A"},      // no digits
		{"A", "A10x2"},  // garbage
		{"B", "1042"},   // missing prefix
	} {
		_, err := gst.ParseInvoiceNumber(bad.series, bad.number)
		assert.Error(t, err, "%s/%s", bad.series, bad.number)
	}
}
