package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	portsrepo "github.com/bsgti/vendor_budget_app/internal/core/ports/repositories"
	portssvc "github.com/bsgti/vendor_budget_app/internal/core/ports/services"
)

// Budget usage thresholds, in percent of the vendor's annual budget.
const (
	budgetWarningPercent = 80
	overBudgetPercent    = 100
)

// notificationService implements the NotificationSvc interface.
// Every call derives the notification list from current transaction and
// budget state; nothing is stored.
type notificationService struct {
	BaseService
	txnRepo       portsrepo.TransactionRepositoryFacade
	reportingRepo portsrepo.ReportingRepository
	settingSvc    portssvc.SettingReaderSvc
	now           func() time.Time
}

// NotificationServiceOption is a functional option for configuring the notification service
type NotificationServiceOption func(*notificationService)

// WithNotificationClock overrides the wall clock, used by tests.
func WithNotificationClock(now func() time.Time) NotificationServiceOption {
	return func(s *notificationService) {
		s.now = now
	}
}

// NewNotificationService creates a new notification service with the provided options
func NewNotificationService(txnRepo portsrepo.TransactionRepositoryFacade, reportingRepo portsrepo.ReportingRepository, settingSvc portssvc.SettingReaderSvc, options ...NotificationServiceOption) portssvc.NotificationSvc {
	svc := &notificationService{
		txnRepo:       txnRepo,
		reportingRepo: reportingRepo,
		settingSvc:    settingSvc,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.NotificationSvc = (*notificationService)(nil)

func (s *notificationService) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// daysBetween counts whole days from a to b, ignoring time of day.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}

// ListNotifications derives the full notification list: overdue invoices,
// invoices due within the reminder window, and vendors at or past their
// budget thresholds. Results are sorted by severity, then newest first; the
// order is stable for equal keys.
func (s *notificationService) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	notifications, _, err := s.derive(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		ri, rj := notifications[i].Severity.Rank(), notifications[j].Severity.Rank()
		if ri != rj {
			return ri < rj
		}
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})

	return notifications, nil
}

// GetCounts reports how many notifications each category would yield. The
// counts come from the same derivation as ListNotifications, so they always
// agree with the list.
func (s *notificationService) GetCounts(ctx context.Context) (*domain.NotificationCounts, error) {
	_, counts, err := s.derive(ctx)
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (s *notificationService) derive(ctx context.Context) ([]domain.Notification, *domain.NotificationCounts, error) {
	reminderDays, err := s.settingSvc.GetReminderDays(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve reminder days")
		return nil, nil, fmt.Errorf("failed to resolve reminder days: %w", err)
	}

	today := s.today()
	now := s.now()
	counts := &domain.NotificationCounts{}
	notifications := []domain.Notification{}

	overdue, err := s.txnRepo.FindOverdueTransactions(ctx, today)
	if err != nil {
		s.LogError(ctx, err, "Failed to find overdue transactions")
		return nil, nil, fmt.Errorf("failed to find overdue transactions: %w", err)
	}
	for _, txn := range overdue {
		daysAgo := daysBetween(txn.DueDate, today)
		notifications = append(notifications, domain.Notification{
			ID:        fmt.Sprintf("overdue-%d", txn.TransactionID),
			Type:      domain.NotificationOverdue,
			Severity:  domain.SeverityError,
			Title:     "Tagihan Jatuh Tempo",
			Message:   fmt.Sprintf("%s: %s jatuh tempo %d hari yang lalu", txn.VendorShortName, txn.InvoiceNo, daysAgo),
			Data:      txn,
			CreatedAt: txn.DueDate,
		})
		counts.Overdue++
	}

	dueSoon, err := s.txnRepo.FindDueSoonTransactions(ctx, today, today.AddDate(0, 0, reminderDays))
	if err != nil {
		s.LogError(ctx, err, "Failed to find due soon transactions")
		return nil, nil, fmt.Errorf("failed to find due soon transactions: %w", err)
	}
	for _, txn := range dueSoon {
		daysLeft := daysBetween(today, txn.DueDate)
		notifications = append(notifications, domain.Notification{
			ID:        fmt.Sprintf("due-soon-%d", txn.TransactionID),
			Type:      domain.NotificationDueSoon,
			Severity:  domain.SeverityWarning,
			Title:     "Tagihan Akan Jatuh Tempo",
			Message:   fmt.Sprintf("%s: %s jatuh tempo dalam %d hari", txn.VendorShortName, txn.InvoiceNo, daysLeft),
			Data:      txn,
			CreatedAt: now,
		})
		counts.DueSoon++
	}

	usage, err := s.reportingRepo.GetVendorBudgetUsage(ctx, today.Year())
	if err != nil {
		s.LogError(ctx, err, "Failed to get vendor budget usage")
		return nil, nil, fmt.Errorf("failed to get vendor budget usage: %w", err)
	}
	for _, row := range usage {
		percent := domain.PercentOf(row.Actual, row.Budget)
		if percent < budgetWarningPercent {
			continue
		}

		notification := domain.Notification{
			ID:        fmt.Sprintf("budget-%d", row.VendorID),
			Type:      domain.NotificationBudgetWarning,
			Severity:  domain.SeverityWarning,
			Title:     "Peringatan Anggaran",
			Message:   fmt.Sprintf("%s: Realisasi %.0f%% dari anggaran", row.ShortName, percent),
			Data:      row,
			CreatedAt: now,
		}
		if percent >= overBudgetPercent {
			notification.Type = domain.NotificationOverBudget
			notification.Severity = domain.SeverityError
			notification.Title = "Anggaran Terlampaui"
		}
		notifications = append(notifications, notification)
		counts.OverBudget++
	}

	counts.Total = counts.Overdue + counts.DueSoon + counts.OverBudget
	return notifications, counts, nil
}
