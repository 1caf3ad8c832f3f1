// Package gst holds the pure tax arithmetic: per-line taxable amounts, the
// CGST/SGST vs IGST split, invoice totals and invoice-number handling.
//
// Rounding policy: two decimals at every derived quantity, not only at the
// final total. Stored historical invoices were produced this way, so the
// intermediate rounding must be reproduced exactly.
package gst

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// LineTax is the full derivation for one invoice line.
type LineTax struct {
	TaxableAmount decimal.Decimal
	GSTAmount     decimal.Decimal
	CGST          decimal.Decimal
	SGST          decimal.Decimal
	IGST          decimal.Decimal
	Total         decimal.Decimal
}

// Totals aggregates line derivations for an invoice.
type Totals struct {
	TaxableAmount decimal.Decimal
	CGST          decimal.Decimal
	SGST          decimal.Decimal
	IGST          decimal.Decimal
	Total         decimal.Decimal
}

// Round2 applies the invoice rounding policy.
func Round2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

// InterState reports whether the supply crosses state lines. Matching is
// case-insensitive on the state code/name.
func InterState(customerState, sellerState string) bool {
	return !strings.EqualFold(strings.TrimSpace(customerState), strings.TrimSpace(sellerState))
}

// ComputeLine derives one line. A missing/zero rate, a non-positive
// quantity, or a slab outside 0-100 is a data error, never defaulted.
// Intra-state supplies split the GST amount evenly into CGST+SGST;
// inter-state supplies carry the whole amount as IGST. Never both.
func ComputeLine(quantity int, rate, slab decimal.Decimal, interState bool) (LineTax, error) {
	if quantity <= 0 {
		return LineTax{}, fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	if !rate.IsPositive() {
		return LineTax{}, fmt.Errorf("rate must be positive, got %s", rate)
	}
	if slab.IsNegative() || slab.GreaterThan(hundred) {
		return LineTax{}, fmt.Errorf("gst slab must be between 0 and 100, got %s", slab)
	}

	taxable := Round2(decimal.NewFromInt(int64(quantity)).Mul(rate))
	gstAmount := Round2(taxable.Mul(slab).Div(hundred))

	lt := LineTax{
		TaxableAmount: taxable,
		GSTAmount:     gstAmount,
		Total:         Round2(taxable.Add(gstAmount)),
	}
	if interState {
		lt.IGST = gstAmount
	} else {
		half := Round2(gstAmount.Div(two))
		lt.CGST = half
		lt.SGST = half
	}
	return lt, nil
}

// SumLines aggregates per-line derivations into invoice-level totals.
func SumLines(lines []LineTax) Totals {
	var t Totals
	for _, l := range lines {
		t.TaxableAmount = t.TaxableAmount.Add(l.TaxableAmount)
		t.CGST = t.CGST.Add(l.CGST)
		t.SGST = t.SGST.Add(l.SGST)
		t.IGST = t.IGST.Add(l.IGST)
	}
	t.Total = Round2(t.TaxableAmount.Add(t.CGST).Add(t.SGST).Add(t.IGST))
	return t
}

// InvoiceTotal applies the invoice total identity:
// taxable + gst + shipping - discount + other adjustments, rounded to 2.
func InvoiceTotal(taxable, gstAmount, shipping, discount, adjustments decimal.Decimal) decimal.Decimal {
	return Round2(taxable.Add(gstAmount).Add(shipping).Sub(discount).Add(adjustments))
}
