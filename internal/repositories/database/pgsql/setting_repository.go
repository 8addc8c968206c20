package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bsgti/vendor_budget_app/internal/apperrors"
	"github.com/bsgti/vendor_budget_app/internal/core/domain"
	portsrepo "github.com/bsgti/vendor_budget_app/internal/core/ports/repositories"
	"github.com/bsgti/vendor_budget_app/internal/models"
	"github.com/bsgti/vendor_budget_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingRepository struct {
	BaseRepository
}

// newPgxSettingRepository creates a new repository for settings data.
func newPgxSettingRepository(pool *pgxpool.Pool) portsrepo.SettingRepositoryFacade {
	return &PgxSettingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SettingRepositoryFacade = (*PgxSettingRepository)(nil)

// ListSettings retrieves every settings row.
func (r *PgxSettingRepository) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	query := `SELECT key, value, description, updated_at FROM settings ORDER BY key;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	modelSettings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Setting, error) {
		var setting models.Setting
		err := row.Scan(&setting.Key, &setting.Value, &setting.Description, &setting.UpdatedAt)
		return setting, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan settings: %w", err)
	}
	return mapping.ToDomainSettingSlice(modelSettings), nil
}

// FindSettingByKey retrieves one setting.
func (r *PgxSettingRepository) FindSettingByKey(ctx context.Context, key string) (*domain.Setting, error) {
	query := `SELECT key, value, description, updated_at FROM settings WHERE key = $1;`
	var modelSetting models.Setting
	err := r.Pool.QueryRow(ctx, query, key).Scan(
		&modelSetting.Key,
		&modelSetting.Value,
		&modelSetting.Description,
		&modelSetting.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find setting %q: %w", key, err)
	}

	setting := mapping.ToDomainSetting(modelSetting)
	return &setting, nil
}

// UpsertSetting inserts or updates a single setting. A nil description keeps
// the stored one.
func (r *PgxSettingRepository) UpsertSetting(ctx context.Context, key, value string, description *string) error {
	query := `
		INSERT INTO settings (key, value, description, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			description = COALESCE(EXCLUDED.description, settings.description),
			updated_at = NOW();
	`
	if _, err := r.Pool.Exec(ctx, query, key, value, description); err != nil {
		return fmt.Errorf("failed to upsert setting %q: %w", key, err)
	}
	return nil
}

// UpsertSettings applies a batch of key/value upserts inside one transaction:
// either every pair is written or none is.
func (r *PgxSettingRepository) UpsertSettings(ctx context.Context, values map[string]string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW();
	`
	for key, value := range values {
		if _, err := tx.Exec(ctx, query, key, value); err != nil {
			return fmt.Errorf("failed to upsert setting %q: %w", key, err)
		}
	}

	return r.Commit(ctx, tx)
}
