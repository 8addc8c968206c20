package services

import (
	"context"

	"github.com/bsgti/vendor_budget_app/internal/core/domain"
)

// NotificationSvc derives notifications from transaction and budget state.
// Notifications are computed on demand and never persisted.
type NotificationSvc interface {
	// ListNotifications derives the current overdue, due-soon and budget
	// notifications, sorted by severity then recency.
	ListNotifications(ctx context.Context) ([]domain.Notification, error)

	// GetCounts returns per-category notification counts consistent with
	// ListNotifications.
	GetCounts(ctx context.Context) (*domain.NotificationCounts, error)
}
