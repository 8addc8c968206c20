package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/bsgti/vendor_budget_app/internal/apperrors"
	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	portsrepo "github.com/bsgti/vendor_budget_app/internal/core/ports/repositories"
	portssvc "github.com/bsgti/vendor_budget_app/internal/core/ports/services"
	"github.com/bsgti/vendor_budget_app/internal/dto"
)

// settingService implements the SettingSvcFacade interface
type settingService struct {
	BaseService
	settingRepo portsrepo.SettingRepositoryFacade
}

// NewSettingService creates a new settings service
func NewSettingService(settingRepo portsrepo.SettingRepositoryFacade) portssvc.SettingSvcFacade {
	return &settingService{settingRepo: settingRepo}
}

var _ portssvc.SettingSvcFacade = (*settingService)(nil)

func (s *settingService) ListSettings(ctx context.Context) (map[string]dto.SettingEntry, error) {
	settings, err := s.settingRepo.ListSettings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list settings")
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	entries := make(map[string]dto.SettingEntry, len(settings))
	for _, setting := range settings {
		entries[setting.Key] = dto.SettingEntry{
			Value:       setting.Value,
			Description: setting.Description,
			UpdatedAt:   setting.UpdatedAt,
		}
	}
	return entries, nil
}

func (s *settingService) GetSettingByKey(ctx context.Context, key string) (*domain.Setting, error) {
	return s.settingRepo.FindSettingByKey(ctx, key)
}

// GetReminderDays resolves the due-soon window from the reminder_days_before
// setting, falling back to the default when missing or unparsable.
func (s *settingService) GetReminderDays(ctx context.Context) (int, error) {
	setting, err := s.settingRepo.FindSettingByKey(ctx, domain.SettingReminderDaysBefore)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.DefaultReminderDays, nil
		}
		return 0, err
	}

	days, err := strconv.Atoi(setting.Value)
	if err != nil || days < 0 {
		s.LogDebug(ctx, "Unparsable reminder_days_before value, using default", slog.String("value", setting.Value))
		return domain.DefaultReminderDays, nil
	}
	return days, nil
}

func (s *settingService) UpsertSetting(ctx context.Context, key string, req dto.UpsertSettingRequest) (*domain.Setting, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: setting key must not be empty", apperrors.ErrValidation)
	}

	if err := s.settingRepo.UpsertSetting(ctx, key, req.Value, req.Description); err != nil {
		s.LogError(ctx, err, "Failed to upsert setting", slog.String("key", key))
		return nil, err
	}

	s.LogInfo(ctx, "Setting upserted", slog.String("key", key))
	return s.settingRepo.FindSettingByKey(ctx, key)
}

// UpsertSettings writes a batch of settings in one database transaction so a
// partial failure leaves nothing applied.
func (s *settingService) UpsertSettings(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: settings must not be empty", apperrors.ErrValidation)
	}

	if err := s.settingRepo.UpsertSettings(ctx, values); err != nil {
		s.LogError(ctx, err, "Failed to upsert settings", slog.Int("count", len(values)))
		return err
	}

	s.LogInfo(ctx, "Settings upserted", slog.Int("count", len(values)))
	return nil
}
