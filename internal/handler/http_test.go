package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	user middleware.User
}

func (a fakeAuth) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.user.ID == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(middleware.WithUser(r.Context(), a.user)))
	})
}

func (a fakeAuth) RequireAdmin(next http.Handler) http.Handler {
	return a.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.user.IsAdmin() {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

var (
	signedIn = fakeAuth{user: middleware.User{ID: "user-1"}}
	admin    = fakeAuth{user: middleware.User{ID: "admin-1", Role: middleware.RoleAdmin}}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type initer interface {
	Init(r chi.Router)
}

func serve(t *testing.T, h initer, req *http.Request) (int, string) {
	t.Helper()

	r := chi.NewRouter()
	h.Init(r)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(body)
}
