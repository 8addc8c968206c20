package mapping

import (
	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	"github.com/bsgti/vendor_budget_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		VendorID:      d.VendorID,
		ServiceID:     d.ServiceID,
		InvoiceNo:     d.InvoiceNo,
		Period:        d.Period,
		Nominal:       d.Nominal,
		PPN:           d.PPN,
		Total:         d.Total,
		Status:        string(d.Status),
		InvoiceDate:   d.InvoiceDate,
		ReceivedDate:  d.ReceivedDate,
		DueDate:       d.DueDate,
		MemoDate:      d.MemoDate,
		PayDate:       d.PayDate,
		PaymentRef:    optString(d.PaymentRef),
		Notes:         optString(d.Notes),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		VendorID:      m.VendorID,
		ServiceID:     m.ServiceID,
		InvoiceNo:     m.InvoiceNo,
		Period:        m.Period,
		Nominal:       m.Nominal,
		PPN:           m.PPN,
		Total:         m.Total,
		Status:        domain.TransactionStatus(m.Status),
		InvoiceDate:   m.InvoiceDate,
		ReceivedDate:  m.ReceivedDate,
		DueDate:       m.DueDate,
		MemoDate:      m.MemoDate,
		PayDate:       m.PayDate,
		PaymentRef:    derefString(m.PaymentRef),
		Notes:         derefString(m.Notes),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
