package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	headerFillColor  = "3B82F6"
	warningFillColor = "FEF3C7"
	dangerFillColor  = "FEE2E2"
	amountNumFmt     = "#,##0"
)

// statusFillColors maps each lifecycle status to its cell background.
var statusFillColors = map[domain.TransactionStatus]string{
	domain.StatusPaid:      "10B981",
	domain.StatusPending:   "F59E0B",
	domain.StatusApproved:  "3B82F6",
	domain.StatusOverdue:   "EF4444",
	domain.StatusCancelled: "6B7280",
}

// TransactionsWorkbook renders transactions as a styled Excel workbook with a
// title, printed timestamp, colored status cells and a totals row. yearLabel
// names the exported scope, e.g. "2026" or "Semua Tahun".
func TransactionsWorkbook(txns []domain.TransactionWithRefs, yearLabel string, printedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Transaksi"
	f.SetSheetName("Sheet1", sheet)

	if err := writeTitle(f, sheet, fmt.Sprintf("Laporan Transaksi %s", yearLabel), printedAt, "L"); err != nil {
		return nil, err
	}

	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return nil, err
	}
	amountStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: strPtr(amountNumFmt)})
	if err != nil {
		return nil, err
	}

	headers := []any{"No", "No Invoice", "Vendor", "Layanan", "Periode", "Nominal", "PPN", "Total", "Status", "Tgl Invoice", "Tgl Jatuh Tempo", "Tgl Bayar"}
	if err := f.SetSheetRow(sheet, "A4", &headers); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A4", "L4", headerStyle); err != nil {
		return nil, err
	}

	totalNominal := decimal.Zero
	totalPPN := decimal.Zero
	totalAmount := decimal.Zero

	for i, t := range txns {
		rowNum := 5 + i
		row := []any{
			i + 1,
			t.InvoiceNo,
			t.VendorName,
			t.ServiceName,
			t.Period,
			t.Nominal.InexactFloat64(),
			t.PPN.InexactFloat64(),
			t.Total.InexactFloat64(),
			strings.ToUpper(string(t.Status)),
			FormatDate(t.InvoiceDate),
			FormatDate(t.DueDate),
			FormatOptionalDate(t.PayDate),
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowNum), &row); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("F%d", rowNum), fmt.Sprintf("H%d", rowNum), amountStyle); err != nil {
			return nil, err
		}

		statusStyle, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{statusFill(t.Status)}},
		})
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("I%d", rowNum), fmt.Sprintf("I%d", rowNum), statusStyle); err != nil {
			return nil, err
		}

		totalNominal = totalNominal.Add(t.Nominal)
		totalPPN = totalPPN.Add(t.PPN)
		totalAmount = totalAmount.Add(t.Total)
	}

	totalRowNum := 5 + len(txns)
	totalRow := []any{"", "", "", "", "TOTAL", totalNominal.InexactFloat64(), totalPPN.InexactFloat64(), totalAmount.InexactFloat64()}
	if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", totalRowNum), &totalRow); err != nil {
		return nil, err
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: strPtr(amountNumFmt)})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", totalRowNum), fmt.Sprintf("L%d", totalRowNum), totalStyle); err != nil {
		return nil, err
	}

	widths := []float64{5, 25, 30, 35, 12, 18, 15, 18, 12, 15, 15, 15}
	if err := setColumnWidths(f, sheet, widths); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// BudgetWorkbook renders per-vendor budget-vs-actual rows as a styled Excel
// workbook. Rows past their thresholds get a tinted utilization cell.
func BudgetWorkbook(rows []domain.VendorBudgetActualRow, year int, printedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Anggaran vs Realisasi"
	f.SetSheetName("Sheet1", sheet)

	if err := writeTitle(f, sheet, fmt.Sprintf("Laporan Anggaran vs Realisasi Tahun %d", year), printedAt, "H"); err != nil {
		return nil, err
	}

	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return nil, err
	}
	amountStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: strPtr(amountNumFmt)})
	if err != nil {
		return nil, err
	}

	headers := []any{"No", "Vendor", "Anggaran", "Realisasi", "Dibayar", "Pending", "Sisa", "% Realisasi"}
	if err := f.SetSheetRow(sheet, "A4", &headers); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A4", "H4", headerStyle); err != nil {
		return nil, err
	}

	totalBudget := decimal.Zero
	totalActual := decimal.Zero
	totalPaid := decimal.Zero
	totalPending := decimal.Zero

	for i, item := range rows {
		rowNum := 5 + i
		row := []any{
			i + 1,
			item.VendorName,
			item.Budget.InexactFloat64(),
			item.Actual.InexactFloat64(),
			item.Paid.InexactFloat64(),
			item.Actual.Sub(item.Paid).InexactFloat64(),
			item.Remaining.InexactFloat64(),
			fmt.Sprintf("%.1f%%", item.UtilizationPercent),
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowNum), &row); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, fmt.Sprintf("C%d", rowNum), fmt.Sprintf("G%d", rowNum), amountStyle); err != nil {
			return nil, err
		}

		if fill, tinted := utilizationFill(item.UtilizationPercent); tinted {
			tintStyle, err := f.NewStyle(&excelize.Style{Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fill}}})
			if err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(sheet, fmt.Sprintf("H%d", rowNum), fmt.Sprintf("H%d", rowNum), tintStyle); err != nil {
				return nil, err
			}
		}

		totalBudget = totalBudget.Add(item.Budget)
		totalActual = totalActual.Add(item.Actual)
		totalPaid = totalPaid.Add(item.Paid)
		totalPending = totalPending.Add(item.Actual.Sub(item.Paid))
	}

	totalRowNum := 5 + len(rows)
	totalPercent := domain.PercentOf(totalActual, totalBudget)
	totalRow := []any{
		"",
		"TOTAL",
		totalBudget.InexactFloat64(),
		totalActual.InexactFloat64(),
		totalPaid.InexactFloat64(),
		totalPending.InexactFloat64(),
		totalBudget.Sub(totalActual).InexactFloat64(),
		fmt.Sprintf("%.1f%%", totalPercent),
	}
	if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", totalRowNum), &totalRow); err != nil {
		return nil, err
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: strPtr(amountNumFmt)})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", totalRowNum), fmt.Sprintf("H%d", totalRowNum), totalStyle); err != nil {
		return nil, err
	}

	widths := []float64{5, 35, 20, 20, 20, 20, 20, 15}
	if err := setColumnWidths(f, sheet, widths); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTitle(f *excelize.File, sheet, title string, printedAt time.Time, lastCol string) error {
	if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return err
	}
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", titleStyle); err != nil {
		return err
	}

	if err := f.MergeCell(sheet, "A2", lastCol+"2"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "A2", "Dicetak: "+FormatDate(printedAt)); err != nil {
		return err
	}
	centerStyle, err := f.NewStyle(&excelize.Style{Alignment: &excelize.Alignment{Horizontal: "center"}})
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A2", "A2", centerStyle)
}

func newHeaderStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFillColor}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border: []excelize.Border{
			{Type: "top", Style: 1, Color: "000000"},
			{Type: "left", Style: 1, Color: "000000"},
			{Type: "bottom", Style: 1, Color: "000000"},
			{Type: "right", Style: 1, Color: "000000"},
		},
	})
}

func setColumnWidths(f *excelize.File, sheet string, widths []float64) error {
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

func statusFill(status domain.TransactionStatus) string {
	if color, ok := statusFillColors[status]; ok {
		return color
	}
	return "FFFFFF"
}

// utilizationFill picks the tint for a utilization cell: red past the budget,
// amber past the warning threshold.
func utilizationFill(percent float64) (string, bool) {
	switch {
	case percent > 100:
		return dangerFillColor, true
	case percent > 80:
		return warningFillColor, true
	}
	return "", false
}

func strPtr(s string) *string { return &s }
