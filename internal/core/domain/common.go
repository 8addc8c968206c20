package domain

import "time"

// AuditFields holds the creation/update timestamps shared by all entities.
type AuditFields struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
