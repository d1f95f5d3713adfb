package backing

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_Upload(t *testing.T) {
	var gotPath, gotBody string
	var gotHeader http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotHeader = r.Header.Clone()
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		_, _ = io.WriteString(w, `{"Key":"avatars/user-1/avatar.png"}`)
	}))
	defer srv.Close()

	s := NewStorage(config.Supabase{URL: srv.URL + "/", ServiceKey: "service-key"})

	publicURL, err := s.Upload(context.Background(), "avatars", "user-1/avatar.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "/storage/v1/object/avatars/user-1/avatar.png", gotPath)
	assert.Equal(t, "Bearer service-key", gotHeader.Get("Authorization"))
	assert.Equal(t, "service-key", gotHeader.Get("apikey"))
	assert.Equal(t, "image/png", gotHeader.Get("Content-Type"))
	assert.Equal(t, "true", gotHeader.Get("x-upsert"))
	assert.Equal(t, "png-bytes", gotBody)
	assert.Equal(t, srv.URL+"/storage/v1/object/public/avatars/user-1/avatar.png", publicURL)
}

func TestStorage_Upload_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"error":"Unauthorized"}`)
	}))
	defer srv.Close()

	s := NewStorage(config.Supabase{URL: srv.URL, ServiceKey: "bad"})

	_, err := s.Upload(context.Background(), "avatars", "user 1/a.png", "image/png", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUploadFailed)
	assert.Contains(t, err.Error(), "403")
}

func TestStorage_PublicURL_Escapes(t *testing.T) {
	s := NewStorage(config.Supabase{URL: "https://project.supabase.co"})
	assert.Equal(t,
		"https://project.supabase.co/storage/v1/object/public/avatars/user%201/a.png",
		s.PublicURL("avatars", "/user 1/a.png"))
}
