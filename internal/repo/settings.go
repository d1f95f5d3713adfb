package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

const settingsRowID = 1

func (r *postgresRepo) GetContractSettings(ctx context.Context) (entities.ContractSettings, error) {
	query, args := r.qb.Select("contract_id", "updated_by", "updated_at").
		From("contract_settings").
		Where(sq.Eq{"id": settingsRowID}).
		MustSql()

	var settings ContractSettings
	err := r.getContext(ctx, &settings, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ContractSettings{}, entities.ErrSettingsNotFound
	}
	if err != nil {
		return entities.ContractSettings{}, fmt.Errorf("failed to get contract settings: %w", err)
	}
	return ContractSettingsToEntity(settings), nil
}

func (r *postgresRepo) SaveContractSettings(ctx context.Context, s entities.ContractSettings) (entities.ContractSettings, error) {
	query, args := r.qb.Insert("contract_settings").
		Columns("id", "contract_id", "updated_by").
		Values(settingsRowID, s.ContractID, s.UpdatedBy).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			contract_id = EXCLUDED.contract_id,
			updated_by = EXCLUDED.updated_by,
			updated_at = now()
			RETURNING contract_id, updated_by, updated_at`).
		MustSql()

	var saved ContractSettings
	if err := r.getContext(ctx, &saved, query, args...); err != nil {
		return entities.ContractSettings{}, fmt.Errorf("failed to save contract settings: %w", err)
	}
	return ContractSettingsToEntity(saved), nil
}
