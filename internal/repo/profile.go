package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) GetProfile(ctx context.Context, userID string) (entities.Profile, error) {
	query, args := r.qb.Select("user_id", "full_name", "phone", "avatar_url", "updated_at").
		From("profiles").
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	var profile Profile
	err := r.getContext(ctx, &profile, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Profile{}, entities.ErrProfileNotFound
	}
	if err != nil {
		return entities.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return ProfileToEntity(profile), nil
}

// SaveProfile upserts name and phone, leaving the avatar untouched.
func (r *postgresRepo) SaveProfile(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	query, args := r.qb.Insert("profiles").
		Columns("user_id", "full_name", "phone").
		Values(p.UserID, nullString(p.FullName), nullString(p.Phone)).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			phone = EXCLUDED.phone,
			updated_at = now()
			RETURNING user_id, full_name, phone, avatar_url, updated_at`).
		MustSql()

	var saved Profile
	if err := r.getContext(ctx, &saved, query, args...); err != nil {
		return entities.Profile{}, fmt.Errorf("failed to save profile: %w", err)
	}
	return ProfileToEntity(saved), nil
}

func (r *postgresRepo) SetAvatarURL(ctx context.Context, userID, avatarURL string) error {
	query, args := r.qb.Insert("profiles").
		Columns("user_id", "avatar_url").
		Values(userID, avatarURL).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET avatar_url = EXCLUDED.avatar_url, updated_at = now()").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to set avatar: %w", err)
	}
	return nil
}
