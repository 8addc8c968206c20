package models

// Vendor mirrors the vendors table.
type Vendor struct {
	VendorID      int64  `json:"id"`
	Name          string `json:"name"`
	ShortName     string `json:"short_name"`
	Color         string `json:"color"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	NPWP          string `json:"npwp"`
	IsActive      bool   `json:"is_active"`
	AuditFields
}
