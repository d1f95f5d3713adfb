package mpesa

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 4, 27, 10, 23, 22, 0, time.Local)

func testConfig(baseURL string) config.Mpesa {
	return config.Mpesa{
		BaseURL:          baseURL,
		ShortCode:        174379,
		Passkey:          "passkey",
		BearerToken:      "test-token",
		TransactionType:  "CustomerPayBillOnline",
		CallbackURL:      "https://example.com/api/mpesa/callback",
		AccountReference: "ShilingiX",
		Description:      "Wallet top up",
		Timeout:          time.Second,
	}
}

func newTestClient(t *testing.T, cfg config.Mpesa) *Client {
	t.Helper()
	c := NewClient(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)
	c.now = func() time.Time { return fixedNow }
	return c
}

func TestTimestamp(t *testing.T) {
	testCases := []struct {
		name string
		at   time.Time
		want string
	}{
		{name: "example from docs", at: time.Date(2025, 4, 27, 10, 23, 22, 0, time.UTC), want: "20250427102322"},
		{name: "zero padded", at: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), want: "20240102030405"},
		{name: "end of year", at: time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC), want: "19991231235959"},
	}

	digits := regexp.MustCompile(`^\d{14}$`)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Timestamp(tc.at)
			assert.Equal(t, tc.want, got)
			assert.Regexp(t, digits, got)
		})
	}
}

func TestPasskeySigner(t *testing.T) {
	got := PasskeySigner(174379, "passkey").Sign("20250427102322")
	want := base64.StdEncoding.EncodeToString([]byte("174379passkey20250427102322"))
	assert.Equal(t, want, got)

	assert.NotEqual(t, got, PasskeySigner(174379, "passkey").Sign("20250427102323"))
}

func TestStaticSigner(t *testing.T) {
	s := StaticSigner("precomputed")
	assert.Equal(t, "precomputed", s.Sign("20250427102322"))
	assert.Equal(t, "precomputed", s.Sign("20250427102323"))
}

func TestClient_InitiatePayment(t *testing.T) {
	providerBody := `{"MerchantRequestID":"29115-34620561-1","CheckoutRequestID":"ws_CO_191220191020363925","ResponseCode":"0","ResponseDescription":"Success. Request accepted for processing","CustomerMessage":"Success. Request accepted for processing"}`

	testCases := []struct {
		name        string
		amount      int64
		phone       string
		status      int
		body        string
		wantPhone   int64
		wantRaw     string
		wantErr     bool
		wantRequest bool
	}{
		{
			name:        "accepted push is relayed verbatim",
			amount:      100,
			phone:       "254708374149",
			status:      http.StatusOK,
			body:        providerBody,
			wantPhone:   254708374149,
			wantRaw:     providerBody,
			wantRequest: true,
		},
		{
			name:        "business failure is relayed unchanged",
			amount:      1,
			phone:       "+254708374149",
			status:      http.StatusBadRequest,
			body:        `{"requestId":"1","errorCode":"400.002.02","errorMessage":"Bad Request - Invalid PhoneNumber"}`,
			wantPhone:   254708374149,
			wantRaw:     `{"requestId":"1","errorCode":"400.002.02","errorMessage":"Bad Request - Invalid PhoneNumber"}`,
			wantRequest: true,
		},
		{
			name:        "local format phone parsed as integer",
			amount:      50,
			phone:       "0712345678",
			status:      http.StatusOK,
			body:        providerBody,
			wantPhone:   712345678,
			wantRaw:     providerBody,
			wantRequest: true,
		},
		{
			name:        "non JSON body is a failure",
			amount:      100,
			phone:       "254708374149",
			status:      http.StatusBadGateway,
			body:        "<html>bad gateway</html>",
			wantPhone:   254708374149,
			wantErr:     true,
			wantRequest: true,
		},
		{
			name:    "unparseable phone never reaches provider",
			amount:  100,
			phone:   "07-12",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			requested := false
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requested = true
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, stkPushPath, r.URL.Path)
				assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var got map[string]any
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				assert.EqualValues(t, tc.amount, got["Amount"])
				assert.EqualValues(t, tc.wantPhone, got["PartyA"])
				assert.EqualValues(t, tc.wantPhone, got["PhoneNumber"])
				assert.EqualValues(t, 174379, got["BusinessShortCode"])
				assert.EqualValues(t, 174379, got["PartyB"])
				assert.Equal(t, "20250427102322", got["Timestamp"])
				assert.Equal(t, PasskeySigner(174379, "passkey").Sign("20250427102322"), got["Password"])
				assert.Equal(t, "CustomerPayBillOnline", got["TransactionType"])
				assert.Equal(t, "https://example.com/api/mpesa/callback", got["CallBackURL"])
				assert.Equal(t, "ShilingiX", got["AccountReference"])
				assert.Equal(t, "Wallet top up", got["TransactionDesc"])

				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			c := newTestClient(t, testConfig(srv.URL))
			raw, err := c.InitiatePayment(context.Background(), tc.amount, tc.phone)

			assert.Equal(t, tc.wantRequest, requested)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInitiationFailed)
				assert.Nil(t, raw)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantRaw, string(raw))
		})
	}
}

func TestClient_InitiatePayment_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := newTestClient(t, testConfig(url))
	raw, err := c.InitiatePayment(context.Background(), 100, "254708374149")

	assert.ErrorIs(t, err, ErrInitiationFailed)
	assert.Equal(t, "failed to initiate payment", err.Error())
	assert.Nil(t, raw)
}

func TestClient_InitiatePayment_StaticPassword(t *testing.T) {
	var password string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var got stkPushRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		password = got.Password
		_, _ = io.WriteString(w, `{"ResponseCode":"0"}`)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Password = "static-sandbox-password"
	c := newTestClient(t, cfg)

	_, err := c.InitiatePayment(context.Background(), 10, "254708374149")
	require.NoError(t, err)
	assert.Equal(t, "static-sandbox-password", password)
}

func TestClient_InitiatePayment_OAuthToken(t *testing.T) {
	tokenCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/v1/generate", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "key", user)
		assert.Equal(t, "secret", pass)
		assert.Equal(t, "client_credentials", r.URL.Query().Get("grant_type"))
		_, _ = io.WriteString(w, `{"access_token":"oauth-token","expires_in":"3599"}`)
	})
	mux.HandleFunc(stkPushPath, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer oauth-token", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"ResponseCode":"0"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.BearerToken = ""
	cfg.ConsumerKey = "key"
	cfg.ConsumerSecret = "secret"
	c := newTestClient(t, cfg)

	for range 2 {
		_, err := c.InitiatePayment(context.Background(), 10, "254708374149")
		require.NoError(t, err)
	}
	assert.Equal(t, 1, tokenCalls, "token must be reused until it expires")
}

func TestClient_InitiatePayment_OAuthFailure(t *testing.T) {
	pushed := false
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/v1/generate", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc(stkPushPath, func(w http.ResponseWriter, r *http.Request) {
		pushed = true
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.BearerToken = ""
	cfg.ConsumerKey = "key"
	cfg.ConsumerSecret = "secret"
	c := newTestClient(t, cfg)

	_, err := c.InitiatePayment(context.Background(), 10, "254708374149")
	assert.ErrorIs(t, err, ErrInitiationFailed)
	assert.False(t, pushed)
}

func TestClient_InitiatePayment_TrailingSlashBaseURL(t *testing.T) {
	var paths []string
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/oauth/v1/generate" {
			_, _ = io.WriteString(w, `{"access_token":"oauth-token","expires_in":"3599"}`)
			return
		}
		_, _ = io.WriteString(w, `{"ResponseCode":"0"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := testConfig(srv.URL + "/")
	cfg.BearerToken = ""
	cfg.ConsumerKey = "key"
	cfg.ConsumerSecret = "secret"
	c := newTestClient(t, cfg)

	_, err := c.InitiatePayment(context.Background(), 10, "254708374149")
	require.NoError(t, err)
	assert.Equal(t, []string{"/oauth/v1/generate", stkPushPath}, paths)
}

func TestWithCallbackToken(t *testing.T) {
	testCases := []struct {
		name  string
		url   string
		token string
		want  string
	}{
		{
			name: "no token",
			url:  "https://example.com/api/mpesa/callback",
			want: "https://example.com/api/mpesa/callback",
		},
		{
			name:  "token added",
			url:   "https://example.com/api/mpesa/callback",
			token: "3f9c1a7e5b2d4c8f",
			want:  "https://example.com/api/mpesa/callback?token=3f9c1a7e5b2d4c8f",
		},
		{
			name:  "existing query kept",
			url:   "https://example.com/api/mpesa/callback?env=sandbox",
			token: "secret value",
			want:  "https://example.com/api/mpesa/callback?env=sandbox&token=secret+value",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, withCallbackToken(tc.url, tc.token))
		})
	}
}

func TestClient_InitiatePayment_CallbackURLCarriesToken(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"ResponseCode":"0"}`)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.CallbackToken = "3f9c1a7e5b2d4c8f"
	c := newTestClient(t, cfg)

	_, err := c.InitiatePayment(context.Background(), 10, "254708374149")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api/mpesa/callback?token=3f9c1a7e5b2d4c8f", got["CallBackURL"])
}
