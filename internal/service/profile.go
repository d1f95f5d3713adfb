package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"
)

type ProfileRepo interface {
	GetProfile(ctx context.Context, userID string) (entities.Profile, error)
	SaveProfile(ctx context.Context, p entities.Profile) (entities.Profile, error)
	SetAvatarURL(ctx context.Context, userID, avatarURL string) error
}

type ObjectStorage interface {
	Upload(ctx context.Context, bucket, objectPath, contentType string, body io.Reader) (string, error)
}

var avatarExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/webp": "webp",
}

type profileService struct {
	logger  *slog.Logger
	repo    ProfileRepo
	storage ObjectStorage
	bucket  string
}

func NewProfileService(logger *slog.Logger, repo ProfileRepo, storage ObjectStorage, avatarsBucket string) *profileService {
	return &profileService{
		logger:  logger.With(slog.String("service", "profile")),
		repo:    repo,
		storage: storage,
		bucket:  avatarsBucket,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (entities.Profile, error) {
	return s.repo.GetProfile(ctx, userID)
}

func (s *profileService) UpdateProfile(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	saved, err := s.repo.SaveProfile(ctx, p)
	if err != nil {
		return entities.Profile{}, fmt.Errorf("failed to save profile: %w", err)
	}
	return saved, nil
}

// UploadAvatar stores the image under the user's folder and returns its public URL.
func (s *profileService) UploadAvatar(ctx context.Context, userID, contentType string, body io.Reader) (string, error) {
	ext, ok := avatarExtensions[contentType]
	if !ok {
		return "", entities.ErrUnsupportedMedia
	}

	url, err := s.storage.Upload(ctx, s.bucket, userID+"/avatar."+ext, contentType, body)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetAvatarURL(ctx, userID, url); err != nil {
		return "", fmt.Errorf("failed to save avatar url: %w", err)
	}

	s.logger.DebugContext(ctx, "avatar uploaded", slog.String("user_id", userID))
	return url, nil
}
