package models

import "time"

// AuditFields holds the creation/update timestamps shared by all tables.
type AuditFields struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
