package domain_test

import (
	"testing"

	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status domain.TransactionStatus
		want   bool
	}{
		{name: "pending", status: domain.StatusPending, want: true},
		{name: "approved", status: domain.StatusApproved, want: true},
		{name: "paid", status: domain.StatusPaid, want: true},
		{name: "overdue", status: domain.StatusOverdue, want: true},
		{name: "cancelled", status: domain.StatusCancelled, want: true},
		{name: "empty string", status: domain.TransactionStatus(""), want: false},
		{name: "unknown value", status: domain.TransactionStatus("archived"), want: false},
		{name: "wrong case", status: domain.TransactionStatus("Paid"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsValid())
		})
	}
}

func TestTransactionStatus_IsOpen(t *testing.T) {
	tests := []struct {
		name   string
		status domain.TransactionStatus
		want   bool
	}{
		{name: "pending is open", status: domain.StatusPending, want: true},
		{name: "approved is open", status: domain.StatusApproved, want: true},
		{name: "paid is settled", status: domain.StatusPaid, want: false},
		{name: "overdue already flagged", status: domain.StatusOverdue, want: false},
		{name: "cancelled is closed", status: domain.StatusCancelled, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsOpen())
		})
	}
}

func TestPercentOf(t *testing.T) {
	tests := []struct {
		name  string
		part  decimal.Decimal
		whole decimal.Decimal
		want  float64
	}{
		{name: "quarter", part: decimal.NewFromInt(25), whole: decimal.NewFromInt(100), want: 25},
		{name: "over one hundred", part: decimal.NewFromInt(1200), whole: decimal.NewFromInt(1000), want: 120},
		{name: "zero whole", part: decimal.NewFromInt(50), whole: decimal.Zero, want: 0},
		{name: "negative whole", part: decimal.NewFromInt(50), whole: decimal.NewFromInt(-10), want: 0},
		{name: "zero part", part: decimal.Zero, whole: decimal.NewFromInt(500), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, domain.PercentOf(tt.part, tt.whole), 0.0001)
		})
	}
}
