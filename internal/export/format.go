// Package export renders transactions and budget figures into the
// downloadable report formats: CSV, Excel workbooks and payment proof PDFs.
package export

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// indonesianMonths holds the id-ID short month names used on printed dates.
var indonesianMonths = []string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

// FormatIDR renders an amount as Indonesian rupiah without decimals,
// e.g. "Rp 1.234.567".
func FormatIDR(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	digits := rounded.Abs().String()

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteString("-")
	}
	b.WriteString("Rp ")

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteString(".")
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteString(".")
		}
	}
	return b.String()
}

// FormatDate renders a date the Indonesian way, e.g. "05 Agu 2026".
func FormatDate(t time.Time) string {
	return formatDay(t)
}

// FormatOptionalDate renders a nilable date, with "-" for absent values.
func FormatOptionalDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return formatDay(*t)
}

func formatDay(t time.Time) string {
	return t.Format("02") + " " + indonesianMonths[int(t.Month())-1] + " " + t.Format("2006")
}
