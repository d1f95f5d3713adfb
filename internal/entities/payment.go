package entities

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentAccepted  PaymentStatus = "accepted"
	PaymentRejected  PaymentStatus = "rejected"
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"
)

// PaymentAttempt is one STK push sent to the provider and its outcome.
type PaymentAttempt struct {
	ID                string
	UserID            string
	Amount            int64
	Phone             string
	MerchantRequestID string
	CheckoutRequestID string
	Status            PaymentStatus
	ResultCode        *int
	ResultDesc        string
	MpesaReceipt      string
	ProviderResponse  json.RawMessage
	// PublishedAt is set once the final result has been published.
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PaymentResult is published once the provider reports the final outcome of a push.
type PaymentResult struct {
	AttemptID         string          `json:"attempt_id"`
	UserID            string          `json:"user_id"`
	CheckoutRequestID string          `json:"checkout_request_id"`
	Status            PaymentStatus   `json:"status"`
	Amount            decimal.Decimal `json:"amount"`
	MpesaReceipt      string          `json:"mpesa_receipt,omitempty"`
	ResultCode        int             `json:"result_code"`
	ResultDesc        string          `json:"result_desc"`
	CompletedAt       time.Time       `json:"completed_at"`
}

var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrDuplicateRequest = errors.New("duplicate request")
	ErrCallbackMismatch = errors.New("callback does not match payment attempt")
)
