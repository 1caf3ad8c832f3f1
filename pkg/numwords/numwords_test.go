package numwords_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gstbook/gstbook-api/pkg/numwords"
)

func TestWords_IndianNumbering(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "Zero"},
		{7, "Seven"},
		{13, "Thirteen"},
		{40, "Forty"},
		{99, "Ninety Nine"},
		{100, "One Hundred"},
		{118, "One Hundred Eighteen"},
		{1000, "One Thousand"},
		{1180, "One Thousand One Hundred Eighty"},
		{99999, "Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{100000, "One Lakh"},
		{250000, "Two Lakh Fifty Thousand"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, numwords.Words(tc.n), "n=%d", tc.n)
	}
}

func TestRupees(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"1180.00", "Rupees One Thousand One Hundred Eighty Only"},
		{"90.50", "Rupees Ninety and Fifty Paise Only"},
		{"0.75", "Rupees Zero and Seventy Five Paise Only"},
		{"150000", "Rupees One Lakh Fifty Thousand Only"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, numwords.Rupees(decimal.RequireFromString(tc.amount)), "amount=%s", tc.amount)
	}
}
