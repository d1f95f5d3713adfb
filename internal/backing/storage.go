// Package backing talks to the object storage API of the backing service.
package backing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/config"
)

var ErrUploadFailed = errors.New("upload failed")

type Storage struct {
	baseURL    string
	serviceKey string
	http       *http.Client
}

func NewStorage(cfg config.Supabase) *Storage {
	return &Storage{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		serviceKey: cfg.ServiceKey,
		http:       &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload stores body at bucket/objectPath, replacing any existing object,
// and returns its public URL.
func (s *Storage) Upload(ctx context.Context, bucket, objectPath, contentType string, body io.Reader) (string, error) {
	endpoint := s.baseURL + "/storage/v1/object/" + escapePath(bucket, objectPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("apikey", s.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := s.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: status %d: %s", ErrUploadFailed, resp.StatusCode, msg)
	}

	return s.PublicURL(bucket, objectPath), nil
}

func (s *Storage) PublicURL(bucket, objectPath string) string {
	return s.baseURL + "/storage/v1/object/public/" + escapePath(bucket, objectPath)
}

func escapePath(bucket, objectPath string) string {
	parts := append([]string{bucket}, strings.Split(strings.Trim(objectPath, "/"), "/")...)
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
