package dto

import (
	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListTransactionsQuery filters, sorts and pages the invoice listing.
type ListTransactionsQuery struct {
	VendorID  *int64  `form:"vendor_id"`
	ServiceID *int64  `form:"service_id"`
	Status    *string `form:"status" binding:"omitempty,oneof=pending approved paid overdue cancelled"`
	Period    *string `form:"period" binding:"omitempty,period"`
	Year      *int    `form:"year" binding:"omitempty,gte=2000,lte=2100"`
	Search    string  `form:"search"`
	SortBy    string  `form:"sort_by"`
	SortOrder string  `form:"sort_order" binding:"omitempty,oneof=asc desc"`
	Page      int     `form:"page" binding:"omitempty,gte=1"`
	Limit     int     `form:"limit" binding:"omitempty,gte=1,lte=200"`
}

// CreateTransactionRequest is the body for recording an invoice.
// Total is submitted by the client and stored as-is.
type CreateTransactionRequest struct {
	VendorID     int64           `json:"vendor_id" binding:"required"`
	ServiceID    int64           `json:"service_id" binding:"required"`
	InvoiceNo    string          `json:"invoice_no" binding:"required,max=100"`
	Period       string          `json:"period" binding:"required,period"`
	Nominal      decimal.Decimal `json:"nominal"`
	PPN          decimal.Decimal `json:"ppn"`
	Total        decimal.Decimal `json:"total"`
	Status       *string         `json:"status" binding:"omitempty,oneof=pending approved paid overdue cancelled"`
	InvoiceDate  string          `json:"invoice_date" binding:"required,datetime=2006-01-02"`
	ReceivedDate *string         `json:"received_date" binding:"omitempty,datetime=2006-01-02"`
	DueDate      string          `json:"due_date" binding:"required,datetime=2006-01-02"`
	MemoDate     *string         `json:"memo_date" binding:"omitempty,datetime=2006-01-02"`
	PayDate      *string         `json:"pay_date" binding:"omitempty,datetime=2006-01-02"`
	PaymentRef   string          `json:"payment_ref" binding:"omitempty,max=100"`
	Notes        string          `json:"notes"`
}

// UpdateTransactionRequest is the body for a partial invoice update. Nil
// fields keep their stored value.
type UpdateTransactionRequest struct {
	VendorID     *int64           `json:"vendor_id"`
	ServiceID    *int64           `json:"service_id"`
	InvoiceNo    *string          `json:"invoice_no" binding:"omitempty,max=100"`
	Period       *string          `json:"period" binding:"omitempty,period"`
	Nominal      *decimal.Decimal `json:"nominal"`
	PPN          *decimal.Decimal `json:"ppn"`
	Total        *decimal.Decimal `json:"total"`
	Status       *string          `json:"status" binding:"omitempty,oneof=pending approved paid overdue cancelled"`
	InvoiceDate  *string          `json:"invoice_date" binding:"omitempty,datetime=2006-01-02"`
	ReceivedDate *string          `json:"received_date" binding:"omitempty,datetime=2006-01-02"`
	DueDate      *string          `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	MemoDate     *string          `json:"memo_date" binding:"omitempty,datetime=2006-01-02"`
	PayDate      *string          `json:"pay_date" binding:"omitempty,datetime=2006-01-02"`
	PaymentRef   *string          `json:"payment_ref" binding:"omitempty,max=100"`
	Notes        *string          `json:"notes"`
}

// UpdateStatusRequest changes one invoice's lifecycle status.
type UpdateStatusRequest struct {
	Status     string  `json:"status" binding:"required,oneof=pending approved paid overdue cancelled"`
	PayDate    *string `json:"pay_date" binding:"omitempty,datetime=2006-01-02"`
	PaymentRef *string `json:"payment_ref" binding:"omitempty,max=100"`
}

// BulkStatusRequest changes the status of several invoices at once.
type BulkStatusRequest struct {
	IDs     []int64 `json:"ids" binding:"required,min=1"`
	Status  string  `json:"status" binding:"required,oneof=pending approved paid overdue cancelled"`
	PayDate *string `json:"pay_date" binding:"omitempty,datetime=2006-01-02"`
}

// PaginatedTransactionsResponse is one page of invoices with paging metadata.
type PaginatedTransactionsResponse struct {
	Data       []domain.TransactionWithRefs `json:"data"`
	Pagination PaginationInfo               `json:"pagination"`
}
