package domain

import "time"

// Well-known settings keys.
const (
	SettingPPNRate            = "ppn_rate"
	SettingReminderDaysBefore = "reminder_days_before"
	SettingCompanyName        = "company_name"
	SettingDivisionName       = "division_name"
)

// DefaultReminderDays applies when the reminder_days_before setting is missing
// or unparseable.
const DefaultReminderDays = 7

// Setting is one key-value configuration row.
type Setting struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}
