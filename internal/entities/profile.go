package entities

import (
	"errors"
	"time"
)

type Profile struct {
	UserID    string
	FullName  string
	Phone     string
	AvatarURL string
	UpdatedAt time.Time
}

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrUnsupportedMedia = errors.New("unsupported media type")
)
