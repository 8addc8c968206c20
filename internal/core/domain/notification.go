package domain

import "time"

// NotificationSeverity orders alerts from most to least urgent.
type NotificationSeverity string

const (
	SeverityError   NotificationSeverity = "error"
	SeverityWarning NotificationSeverity = "warning"
	SeverityInfo    NotificationSeverity = "info"
)

// Rank returns the sort rank of the severity; lower sorts first.
func (s NotificationSeverity) Rank() int {
	switch s {
	case SeverityError:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}

// NotificationType identifies what condition produced an alert.
type NotificationType string

const (
	NotificationOverdue       NotificationType = "overdue"
	NotificationDueSoon       NotificationType = "due_soon"
	NotificationBudgetWarning NotificationType = "budget_warning"
	NotificationOverBudget    NotificationType = "over_budget"
)

// Notification is an ephemeral alert derived from current store state.
// Notifications are never persisted; they are recomputed on every request.
type Notification struct {
	ID        string               `json:"id"`
	Type      NotificationType     `json:"type"`
	Severity  NotificationSeverity `json:"severity"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Data      any                  `json:"data"`
	CreatedAt time.Time            `json:"created_at"`
}

// NotificationCounts holds the per-group cardinalities shown on the bell badge.
type NotificationCounts struct {
	Overdue    int `json:"overdue"`
	DueSoon    int `json:"dueSoon"`
	OverBudget int `json:"overBudget"`
	Total      int `json:"total"`
}
