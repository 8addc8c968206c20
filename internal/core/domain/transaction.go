package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle state of an invoice.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusApproved  TransactionStatus = "approved"
	StatusPaid      TransactionStatus = "paid"
	StatusOverdue   TransactionStatus = "overdue"
	StatusCancelled TransactionStatus = "cancelled"
)

// ValidStatuses lists every accepted status value.
func ValidStatuses() []TransactionStatus {
	return []TransactionStatus{StatusPending, StatusApproved, StatusPaid, StatusOverdue, StatusCancelled}
}

// IsValid reports whether s is one of the five accepted status values.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}

// IsOpen reports whether the invoice still awaits payment. Open invoices are
// the ones swept to overdue and the ones surfaced in due-soon reminders.
func (s TransactionStatus) IsOpen() bool {
	return s == StatusPending || s == StatusApproved
}

// Transaction is a vendor invoice for one service period.
// Total is client-computed (nominal + ppn) and stored as submitted.
type Transaction struct {
	TransactionID int64             `json:"id"`
	VendorID      int64             `json:"vendor_id"`
	ServiceID     int64             `json:"service_id"`
	InvoiceNo     string            `json:"invoice_no"`
	Period        string            `json:"period"` // YYYY-MM
	Nominal       decimal.Decimal   `json:"nominal"`
	PPN           decimal.Decimal   `json:"ppn"`
	Total         decimal.Decimal   `json:"total"`
	Status        TransactionStatus `json:"status"`
	InvoiceDate   time.Time         `json:"invoice_date"`
	ReceivedDate  *time.Time        `json:"received_date"`
	DueDate       time.Time         `json:"due_date"`
	MemoDate      *time.Time        `json:"memo_date"`
	PayDate       *time.Time        `json:"pay_date"`
	PaymentRef    string            `json:"payment_ref"`
	Notes         string            `json:"notes"`
	AuditFields
}

// TransactionWithRefs is a transaction joined with vendor/service display fields.
type TransactionWithRefs struct {
	Transaction
	VendorName      string      `json:"vendor_name"`
	VendorShortName string      `json:"vendor_short_name"`
	VendorColor     string      `json:"vendor_color"`
	VendorAddress   string      `json:"vendor_address,omitempty"`
	VendorNPWP      string      `json:"vendor_npwp,omitempty"`
	ServiceName     string      `json:"service_name"`
	ServiceType     ServiceType `json:"service_type,omitempty"`
}
