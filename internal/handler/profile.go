package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"
	"github.com/Elly-L/main-shilingi-x-sub001/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	maxAvatarBytes = 5 << 20
	avatarField    = "avatar"
	sniffLen       = 512
)

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (entities.Profile, error)
	UpdateProfile(ctx context.Context, p entities.Profile) (entities.Profile, error)
	UploadAvatar(ctx context.Context, userID, contentType string, body io.Reader) (string, error)
}

type ProfileHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	auth     Authenticator
	svc      ProfileService
}

func NewProfileHandler(logger *slog.Logger, auth Authenticator, svc ProfileService) *ProfileHandler {
	return &ProfileHandler{
		logger:   logger.With(slog.String("handler", "profile")),
		validate: newValidator(),
		auth:     auth,
		svc:      svc,
	}
}

func (h *ProfileHandler) Init(r chi.Router) {
	r.Route("/profile", func(r chi.Router) {
		r.Use(h.auth.RequireUser)
		r.Get("/", h.GetProfile)
		r.Put("/", h.UpdateProfile)
		r.Post("/avatar", h.UploadAvatar)
	})
}

// GetProfile returns the caller's profile.
// @Summary      Get profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Profile
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)

	profile, err := h.svc.GetProfile(ctx, user.ID)

	if errors.Is(err, entities.ErrProfileNotFound) {
		utils.WriteError(w, "profile not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get profile", slog.Any("error", err), slog.String("user_id", user.ID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ProfileEntityToJSON(profile), http.StatusOK)
}

// UpdateProfile creates or replaces the caller's profile.
// @Summary      Update profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  UpdateProfileRequest  true  "Profile"
// @Success      200  {object}  Profile
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /profile [put]
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)

	var req UpdateProfileRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	profile, err := h.svc.UpdateProfile(ctx, entities.Profile{
		UserID:   user.ID,
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update profile", slog.Any("error", err), slog.String("user_id", user.ID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ProfileEntityToJSON(profile), http.StatusOK)
}

// UploadAvatar stores a new profile picture.
// @Summary      Upload avatar
// @Tags         profile
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        avatar  formData  file  true  "PNG, JPEG or WebP image, at most 5MB"
// @Success      200  {object}  AvatarResponse
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      415  {object}  utils.ErrorResponse
// @Failure      502  {object}  utils.ErrorResponse
// @Router       /profile/avatar [post]
func (h *ProfileHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := currentUser(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarBytes+1<<10)
	file, header, err := r.FormFile(avatarField)
	if err != nil {
		utils.WriteError(w, "avatar file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > maxAvatarBytes {
		utils.WriteError(w, "avatar is too large", http.StatusBadRequest)
		return
	}

	contentType, body, err := sniffContentType(file)
	if err != nil {
		utils.WriteError(w, "failed to read avatar", http.StatusBadRequest)
		return
	}

	url, err := h.svc.UploadAvatar(ctx, user.ID, contentType, body)

	if errors.Is(err, entities.ErrUnsupportedMedia) {
		utils.WriteError(w, "avatar must be a png, jpeg or webp image", http.StatusUnsupportedMediaType)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to upload avatar", slog.Any("error", err), slog.String("user_id", user.ID))
		utils.WriteError(w, "failed to upload avatar", http.StatusBadGateway)
		return
	}

	utils.WriteJSON(w, AvatarResponse{AvatarURL: url}, http.StatusOK)
}

// sniffContentType detects the media type from the leading bytes and ignores
// whatever the client declared. The returned reader yields the full content.
func sniffContentType(r io.Reader) (string, io.Reader, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", nil, err
	}
	head = head[:n]
	return http.DetectContentType(head), io.MultiReader(bytes.NewReader(head), r), nil
}
