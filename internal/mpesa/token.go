package mpesa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"
)

type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type StaticToken string

func (t StaticToken) Token(context.Context) (string, error) { return string(t), nil }

// tokenExpiryMargin is subtracted from the advertised lifetime so a token
// is never sent in the last moments of its validity.
const tokenExpiryMargin = time.Minute

// OAuthTokenSource fetches client-credentials tokens and reuses them until they expire.
type OAuthTokenSource struct {
	endpoint string
	key      string
	secret   string
	client   *http.Client
	now      func() time.Time

	mu      sync.Mutex
	token   string
	expires time.Time
}

func NewOAuthTokenSource(baseURL, consumerKey, consumerSecret string, client *http.Client) *OAuthTokenSource {
	return &OAuthTokenSource{
		endpoint: baseURL + "/oauth/v1/generate?grant_type=client_credentials",
		key:      consumerKey,
		secret:   consumerSecret,
		client:   client,
		now:      time.Now,
	}
}

type oauthResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

func (s *OAuthTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && s.now().Before(s.expires) {
		return s.token, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.SetBasicAuth(s.key, s.secret)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to request token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var body oauthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if body.AccessToken == "" {
		return "", errors.New("token endpoint returned empty access token")
	}

	lifetime, err := strconv.Atoi(body.ExpiresIn)
	if err != nil {
		return "", fmt.Errorf("invalid expires_in %q: %w", body.ExpiresIn, err)
	}

	s.token = body.AccessToken
	s.expires = s.now().Add(time.Duration(lifetime)*time.Second - tokenExpiryMargin)
	return s.token, nil
}
