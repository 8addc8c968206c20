package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	"github.com/go-pdf/fpdf"
)

// PaymentProofPDF renders the payment proof document for one invoice. The
// company and division names come from settings and head the page.
func PaymentProofPDF(txn domain.TransactionWithRefs, companyName, divisionName string, printedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()

	// Letterhead
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, companyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, divisionName, "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, "BUKTI PEMBAYARAN", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "No. Invoice: "+txn.InvoiceNo, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Tanggal: "+FormatDate(txn.InvoiceDate), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Jatuh Tempo: "+FormatDate(txn.DueDate), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Status: "+strings.ToUpper(string(txn.Status)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Vendor:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, txn.VendorName, "", 1, "L", false, 0, "")
	if txn.VendorAddress != "" {
		pdf.MultiCell(0, 6, txn.VendorAddress, "", "L", false)
	}
	if txn.VendorNPWP != "" {
		pdf.CellFormat(0, 6, "NPWP: "+txn.VendorNPWP, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Detail Layanan:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, txn.ServiceName, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Periode: "+txn.Period, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Amount table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(120, 7, "Deskripsi", "B", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, "Jumlah", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(120, 7, "Nominal", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, FormatIDR(txn.Nominal), "", 1, "R", false, 0, "")
	pdf.CellFormat(120, 7, "PPN", "B", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, FormatIDR(txn.PPN), "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(120, 8, "TOTAL", "B", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, FormatIDR(txn.Total), "B", 1, "R", false, 0, "")

	if txn.PayDate != nil {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, "Tanggal Bayar: "+FormatDate(*txn.PayDate), "", 1, "L", false, 0, "")
		if txn.PaymentRef != "" {
			pdf.CellFormat(0, 6, "Referensi Pembayaran: "+txn.PaymentRef, "", 1, "L", false, 0, "")
		}
	}

	if txn.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, "Catatan:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 6, txn.Notes, "", "L", false)
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 5, "Dicetak pada: "+FormatDate(printedAt), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
