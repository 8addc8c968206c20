package domain

// GLAccount is reference data linking services to the general ledger.
// Code is globally unique.
type GLAccount struct {
	GLAccountID int64  `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Category    string `json:"category"`
}
