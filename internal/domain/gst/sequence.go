package gst

import (
	"fmt"
	"strconv"
	"strings"
)

// Invoice-number seeds per series. The counter row is seeded at SeedNumber,
// so the first issued number in an empty series is A1001 / B1001.
const SeedNumber = 1000

// FormatInvoiceNumber builds the stored invoice number, e.g. ("A", 1042) ->
// "A1042".
func FormatInvoiceNumber(series string, n int64) string {
	return fmt.Sprintf("%s%d", series, n)
}

// ParseInvoiceNumber strips the one-character series prefix and parses the
// remainder. Rejects numbers that do not belong to the given series.
func ParseInvoiceNumber(series, invoiceNumber string) (int64, error) {
	if !strings.HasPrefix(invoiceNumber, series) || len(invoiceNumber) <= len(series) {
		return 0, fmt.Errorf("invoice number %q does not belong to series %q", invoiceNumber, series)
	}
	n, err := strconv.ParseInt(invoiceNumber[len(series):], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invoice number %q: %w", invoiceNumber, err)
	}
	return n, nil
}
