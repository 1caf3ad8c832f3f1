// Package numwords converts amounts to words using Indian numbering
// (thousand, lakh, crore) for the "amount in words" line on invoice PDFs.
package numwords

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = [...]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = [...]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// Words spells a non-negative integer in Indian numbering. Words(0) is
// "Zero".
func Words(n int64) string {
	if n == 0 {
		return "Zero"
	}
	return strings.Join(segments(n, nil), " ")
}

func segments(n int64, acc []string) []string {
	switch {
	case n >= 1_00_00_000:
		acc = segments(n/1_00_00_000, acc)
		acc = append(acc, "Crore")
		n %= 1_00_00_000
	case n >= 1_00_000:
		acc = segments(n/1_00_000, acc)
		acc = append(acc, "Lakh")
		n %= 1_00_000
	case n >= 1000:
		acc = segments(n/1000, acc)
		acc = append(acc, "Thousand")
		n %= 1000
	case n >= 100:
		acc = append(acc, ones[n/100], "Hundred")
		n %= 100
	}
	if n == 0 {
		return acc
	}
	if n >= 1_00_00_000 || n >= 1_00_000 || n >= 1000 || n >= 100 {
		return segments(n, acc)
	}
	if n < 20 {
		return append(acc, ones[n])
	}
	if n%10 == 0 {
		return append(acc, tens[n/10])
	}
	return append(acc, tens[n/10], ones[n%10])
}

// Rupees phrases a monetary amount as standard Indian currency wording:
// "Rupees One Thousand One Hundred Eighty Only",
// "Rupees Ninety and Fifty Paise Only".
func Rupees(amount decimal.Decimal) string {
	amount = amount.Round(2).Abs()
	rupees := amount.IntPart()
	paise := amount.Sub(decimal.NewFromInt(rupees)).Mul(decimal.NewFromInt(100)).IntPart()

	var b strings.Builder
	b.WriteString("Rupees ")
	b.WriteString(Words(rupees))
	if paise > 0 {
		b.WriteString(" and ")
		b.WriteString(Words(paise))
		b.WriteString(" Paise")
	}
	b.WriteString(" Only")
	return b.String()
}
