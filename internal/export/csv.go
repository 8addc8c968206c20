package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/bsgti/vendor_budget_app/internal/core/domain"
)

// transactionCSVHeaders are the column titles of the transaction export.
var transactionCSVHeaders = []string{
	"No Invoice", "Vendor", "Layanan", "Periode", "Nominal", "PPN", "Total",
	"Status", "Tgl Invoice", "Tgl Jatuh Tempo", "Tgl Bayar", "Catatan",
}

// TransactionsCSV renders transactions as a UTF-8 CSV file. The output is
// prefixed with a byte order mark so Excel detects the encoding.
func TransactionsCSV(txns []domain.TransactionWithRefs) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	w := csv.NewWriter(&buf)
	if err := w.Write(transactionCSVHeaders); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, t := range txns {
		payDate := ""
		if t.PayDate != nil {
			payDate = t.PayDate.Format("2006-01-02")
		}
		record := []string{
			t.InvoiceNo,
			t.VendorName,
			t.ServiceName,
			t.Period,
			t.Nominal.String(),
			t.PPN.String(),
			t.Total.String(),
			string(t.Status),
			t.InvoiceDate.Format("2006-01-02"),
			t.DueDate.Format("2006-01-02"),
			payDate,
			t.Notes,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
