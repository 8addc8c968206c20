package domain

import "github.com/shopspring/decimal"

// StatusBucket aggregates a group of transactions into a sum and a count.
type StatusBucket struct {
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
}

// DashboardSummary is the year-level budget-vs-realization overview.
type DashboardSummary struct {
	Year               int             `json:"year"`
	TotalBudget        decimal.Decimal `json:"totalBudget"`
	TotalRealization   decimal.Decimal `json:"totalRealization"`
	Remaining          decimal.Decimal `json:"remaining"`
	UtilizationPercent float64         `json:"utilizationPercent"`
	Pending            StatusBucket    `json:"pending"`
	Overdue            StatusBucket    `json:"overdue"`
	DueSoon            StatusBucket    `json:"dueSoon"`
}

// MonthlyPeriodTotals is one GROUP BY period row as stored.
type MonthlyPeriodTotals struct {
	Period           string          `json:"period"`
	Paid             decimal.Decimal `json:"paid"`
	Pending          decimal.Decimal `json:"pending"`
	Total            decimal.Decimal `json:"total"`
	TransactionCount int64           `json:"transaction_count"`
}

// MonthBucket is one of the twelve fixed entries in the monthly trend.
// Months without transactions carry zero values.
type MonthBucket struct {
	Period           string          `json:"period"`
	Month            int             `json:"month"`
	MonthName        string          `json:"monthName"`
	Paid             decimal.Decimal `json:"paid"`
	Pending          decimal.Decimal `json:"pending"`
	Total            decimal.Decimal `json:"total"`
	TransactionCount int64           `json:"transaction_count"`
}

// MonthlyTrend is the chart-ready twelve month series.
type MonthlyTrend struct {
	Year          int             `json:"year"`
	Months        []MonthBucket   `json:"months"`
	MonthlyBudget decimal.Decimal `json:"monthlyBudget"`
}

// VendorDistributionRow is one vendor's share of the year's spend.
type VendorDistributionRow struct {
	VendorID         int64           `json:"vendor_id"`
	VendorName       string          `json:"vendor_name"`
	ShortName        string          `json:"short_name"`
	Color            string          `json:"color"`
	Total            decimal.Decimal `json:"total"`
	Paid             decimal.Decimal `json:"paid"`
	Pending          decimal.Decimal `json:"pending"`
	TransactionCount int64           `json:"transaction_count"`
	Percentage       float64         `json:"percentage"`
}

// VendorDistribution is the distribution rows plus the grand total they share.
type VendorDistribution struct {
	Year         int                     `json:"year"`
	Distribution []VendorDistributionRow `json:"distribution"`
	GrandTotal   decimal.Decimal         `json:"grandTotal"`
}

// VendorBudgetActualRow compares one vendor's budget against realization.
type VendorBudgetActualRow struct {
	VendorID           int64           `json:"vendor_id"`
	VendorName         string          `json:"vendor_name"`
	ShortName          string          `json:"short_name"`
	Color              string          `json:"color"`
	Budget             decimal.Decimal `json:"budget"`
	Actual             decimal.Decimal `json:"actual"`
	Paid               decimal.Decimal `json:"paid"`
	TransactionCount   int64           `json:"transaction_count"`
	Remaining          decimal.Decimal `json:"remaining"`
	UtilizationPercent float64         `json:"utilizationPercent"`
	IsOverBudget       bool            `json:"isOverBudget"`
}

// BudgetComparisonRow compares one budget row against its vendor's transactions.
// ActualTotal sums every status, cancelled included; that mirrors how
// realization has always been reported here.
type BudgetComparisonRow struct {
	BudgetID           int64           `json:"id"`
	Year               int             `json:"year"`
	BudgetAmount       decimal.Decimal `json:"budget_amount"`
	Description        string          `json:"description"`
	VendorID           *int64          `json:"vendor_id"`
	VendorName         string          `json:"vendor_name"`
	VendorShortName    string          `json:"vendor_short_name"`
	VendorColor        string          `json:"vendor_color"`
	ActualPaid         decimal.Decimal `json:"actual_paid"`
	ActualPending      decimal.Decimal `json:"actual_pending"`
	ActualTotal        decimal.Decimal `json:"actual_total"`
	TransactionCount   int64           `json:"transaction_count"`
	Remaining          decimal.Decimal `json:"remaining"`
	UtilizationPercent float64         `json:"utilizationPercent"`
}

// BudgetComparisonSummary is the portfolio-wide roll-up of comparison rows.
// UtilizationPercent is recomputed from the summed totals, never averaged
// from the per-row percentages.
type BudgetComparisonSummary struct {
	TotalBudget        decimal.Decimal `json:"totalBudget"`
	TotalPaid          decimal.Decimal `json:"totalPaid"`
	TotalPending       decimal.Decimal `json:"totalPending"`
	TotalActual        decimal.Decimal `json:"totalActual"`
	Remaining          decimal.Decimal `json:"remaining"`
	UtilizationPercent float64         `json:"utilizationPercent"`
}

// BudgetComparison bundles the per-budget rows with their summary.
type BudgetComparison struct {
	Year       int                     `json:"year"`
	Comparison []BudgetComparisonRow   `json:"comparison"`
	Summary    BudgetComparisonSummary `json:"summary"`
}

// VendorBudgetUsage feeds the budget warning derivation: one row per active
// vendor with a positive budget in the current year.
type VendorBudgetUsage struct {
	VendorID   int64           `json:"vendor_id"`
	VendorName string          `json:"vendor_name"`
	ShortName  string          `json:"short_name"`
	Color      string          `json:"color"`
	Budget     decimal.Decimal `json:"budget"`
	Actual     decimal.Decimal `json:"actual"`
}

var hundred = decimal.NewFromInt(100)

// PercentOf returns part/whole*100, or 0 when whole is not positive.
// It never divides by zero and never produces NaN or Inf.
func PercentOf(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	f, _ := part.Div(whole).Mul(hundred).Float64()
	return f
}
