package models

// GLAccount mirrors the gl_accounts table.
type GLAccount struct {
	GLAccountID int64   `json:"id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Category    *string `json:"category"`
}
