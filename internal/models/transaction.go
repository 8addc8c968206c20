package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors the transactions table.
type Transaction struct {
	TransactionID int64           `json:"id"`
	VendorID      int64           `json:"vendor_id"`
	ServiceID     int64           `json:"service_id"`
	InvoiceNo     string          `json:"invoice_no"`
	Period        string          `json:"period"`
	Nominal       decimal.Decimal `json:"nominal"`
	PPN           decimal.Decimal `json:"ppn"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	InvoiceDate   time.Time       `json:"invoice_date"`
	ReceivedDate  *time.Time      `json:"received_date"`
	DueDate       time.Time       `json:"due_date"`
	MemoDate      *time.Time      `json:"memo_date"`
	PayDate       *time.Time      `json:"pay_date"`
	PaymentRef    *string         `json:"payment_ref"`
	Notes         *string         `json:"notes"`
	AuditFields
}
