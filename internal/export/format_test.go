package export_test

import (
	"testing"
	"time"

	"github.com/bsgti/vendor_budget_app/internal/export"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatIDR(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{name: "zero", amount: decimal.Zero, want: "Rp 0"},
		{name: "under a thousand", amount: decimal.NewFromInt(999), want: "Rp 999"},
		{name: "exactly a thousand", amount: decimal.NewFromInt(1000), want: "Rp 1.000"},
		{name: "millions", amount: decimal.NewFromInt(1234567), want: "Rp 1.234.567"},
		{name: "billions", amount: decimal.NewFromInt(2500000000), want: "Rp 2.500.000.000"},
		{name: "negative", amount: decimal.NewFromInt(-15000), want: "-Rp 15.000"},
		{name: "rounds decimals away", amount: decimal.NewFromFloat(1234.56), want: "Rp 1.235"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, export.FormatIDR(tt.amount))
		})
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{name: "august", date: time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC), want: "05 Agu 2026"},
		{name: "may", date: time.Date(2025, time.May, 17, 0, 0, 0, 0, time.UTC), want: "17 Mei 2025"},
		{name: "december", date: time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), want: "31 Des 2025"},
		{name: "january", date: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), want: "01 Jan 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, export.FormatDate(tt.date))
		})
	}
}

func TestFormatOptionalDate(t *testing.T) {
	t.Run("nil date renders dash", func(t *testing.T) {
		assert.Equal(t, "-", export.FormatOptionalDate(nil))
	})

	t.Run("present date renders like FormatDate", func(t *testing.T) {
		d := time.Date(2025, time.October, 9, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "09 Okt 2025", export.FormatOptionalDate(&d))
	})
}
