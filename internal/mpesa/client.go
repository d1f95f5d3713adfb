package mpesa

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/config"
)

const (
	stkPushPath     = "/mpesa/stkpush/v1/processrequest"
	maxResponseSize = 1 << 20
)

// ErrInitiationFailed is the only error InitiatePayment returns; the cause is logged.
var ErrInitiationFailed = errors.New("failed to initiate payment")

type stkPushRequest struct {
	BusinessShortCode int64  `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            int64  `json:"PartyA"`
	PartyB            int64  `json:"PartyB"`
	PhoneNumber       int64  `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type Client struct {
	logger *slog.Logger
	http   *http.Client
	signer Signer
	tokens TokenSource
	now    func() time.Time

	endpoint         string
	shortCode        int64
	partyB           int64
	transactionType  string
	callbackURL      string
	accountReference string
	description      string
}

func NewClient(logger *slog.Logger, cfg config.Mpesa) *Client {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")

	var signer Signer = PasskeySigner(cfg.ShortCode, cfg.Passkey)
	if cfg.Password != "" {
		signer = StaticSigner(cfg.Password)
	}

	var tokens TokenSource = StaticToken(cfg.BearerToken)
	if cfg.BearerToken == "" {
		tokens = NewOAuthTokenSource(baseURL, cfg.ConsumerKey, cfg.ConsumerSecret, httpClient)
	}

	partyB := cfg.PartyB
	if partyB == 0 {
		partyB = cfg.ShortCode
	}

	return &Client{
		logger: logger.With(slog.String("client", "mpesa")),
		http:   httpClient,
		signer: signer,
		tokens: tokens,
		now:    time.Now,

		endpoint:         baseURL + stkPushPath,
		shortCode:        cfg.ShortCode,
		partyB:           partyB,
		transactionType:  cfg.TransactionType,
		callbackURL:      withCallbackToken(cfg.CallbackURL, cfg.CallbackToken),
		accountReference: cfg.AccountReference,
		description:      cfg.Description,
	}
}

// InitiatePayment sends one STK push and returns the provider's response body
// unchanged, whether or not the provider accepted the push.
func (c *Client) InitiatePayment(ctx context.Context, amount int64, phoneNumber string) (json.RawMessage, error) {
	body, err := c.initiate(ctx, amount, phoneNumber)
	if err != nil {
		c.logger.ErrorContext(ctx, "stk push failed", slog.Any("error", err))
		return nil, ErrInitiationFailed
	}
	return body, nil
}

func (c *Client) initiate(ctx context.Context, amount int64, phoneNumber string) (json.RawMessage, error) {
	phone, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(phoneNumber), "+"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid phone number: %w", err)
	}

	payload, err := json.Marshal(c.buildRequest(amount, phone, Timestamp(c.now())))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get access token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("provider returned non-JSON body with status %d", resp.StatusCode)
	}

	c.logger.DebugContext(ctx, "stk push sent", slog.Int("status", resp.StatusCode))
	return json.RawMessage(raw), nil
}

func (c *Client) buildRequest(amount, phone int64, timestamp string) stkPushRequest {
	return stkPushRequest{
		BusinessShortCode: c.shortCode,
		Password:          c.signer.Sign(timestamp),
		Timestamp:         timestamp,
		TransactionType:   c.transactionType,
		Amount:            amount,
		PartyA:            phone,
		PartyB:            c.partyB,
		PhoneNumber:       phone,
		CallBackURL:       c.callbackURL,
		AccountReference:  c.accountReference,
		TransactionDesc:   c.description,
	}
}

// withCallbackToken adds the shared callback secret as the token query
// parameter. The URL is returned unchanged when it cannot be parsed.
func withCallbackToken(callbackURL, token string) string {
	if token == "" {
		return callbackURL
	}
	u, err := url.Parse(callbackURL)
	if err != nil {
		return callbackURL
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}
