package dto

import "time"

// SettingEntry is one settings row in the keyed settings response.
type SettingEntry struct {
	Value       string    `json:"value"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpsertSettingRequest sets one setting's value, optionally replacing its
// description.
type UpsertSettingRequest struct {
	Value       string  `json:"value" binding:"required"`
	Description *string `json:"description"`
}

// BulkSettingsRequest applies several key-value pairs in one atomic write.
type BulkSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required,min=1"`
}
