package handler

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/middleware"

	"github.com/go-playground/validator/v10"
)

// Authenticator guards routes that need a signed-in user or an admin.
type Authenticator interface {
	RequireUser(next http.Handler) http.Handler
	RequireAdmin(next http.Handler) http.Handler
}

// Kenyan mobile numbers in local (07..., 01...) or international (254..., +254...) form.
var msisdnPattern = regexp.MustCompile(`^(?:\+?254|0)[17]\d{8}$`)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("msisdn", func(fl validator.FieldLevel) bool {
		return msisdnPattern.MatchString(fl.Field().String())
	})
	return v
}

// normalizeMSISDN rewrites a valid number to the international form without "+".
func normalizeMSISDN(phone string) string {
	phone = strings.TrimPrefix(phone, "+")
	if strings.HasPrefix(phone, "0") {
		return "254" + phone[1:]
	}
	return phone
}

func currentUser(r *http.Request) middleware.User {
	u, _ := middleware.UserFromContext(r.Context())
	return u
}
