package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Elly-L/main-shilingi-x-sub001/pkg/utils"

	"github.com/golang-jwt/jwt"
)

const RoleAdmin = "admin"

type User struct {
	ID    string
	Email string
	Role  string
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

type userCtxKey struct{}

func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, u)
}

func UserFromContext(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(userCtxKey{}).(User)
	return u, ok
}

// Claims is the payload of an access token issued by the backing service.
type Claims struct {
	Email       string `json:"email"`
	AppMetadata struct {
		Role string `json:"role"`
	} `json:"app_metadata"`
	jwt.StandardClaims
}

var errMissingToken = errors.New("missing bearer token")

type Authenticator struct {
	logger *slog.Logger
	secret []byte
}

func NewAuthenticator(logger *slog.Logger, jwtSecret string) *Authenticator {
	return &Authenticator{
		logger: logger.With(slog.String("middleware", "auth")),
		secret: []byte(jwtSecret),
	}
}

// RequireUser rejects requests without a valid access token.
func (a *Authenticator) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := a.authenticate(r)
		if err != nil {
			a.logger.DebugContext(r.Context(), "unauthenticated request", slog.Any("error", err))
			utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// RequireAdmin behaves like RequireUser and also requires the admin role.
func (a *Authenticator) RequireAdmin(next http.Handler) http.Handler {
	return a.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _ := UserFromContext(r.Context())
		if !user.IsAdmin() {
			utils.WriteError(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func (a *Authenticator) authenticate(r *http.Request) (User, error) {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return User{}, errMissingToken
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(parts[1], &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return User{}, err
	}
	if !token.Valid || claims.Subject == "" {
		return User{}, errors.New("invalid token claims")
	}

	return User{
		ID:    claims.Subject,
		Email: claims.Email,
		Role:  claims.AppMetadata.Role,
	}, nil
}
