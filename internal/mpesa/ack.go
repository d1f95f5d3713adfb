package mpesa

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

var ErrInvalidCallback = errors.New("invalid callback")

// Ack is the provider's synchronous answer to an STK push.
type Ack struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`

	RequestID    string `json:"requestId"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

func ParseAck(raw json.RawMessage) (Ack, error) {
	var ack Ack
	if err := json.Unmarshal(raw, &ack); err != nil {
		return Ack{}, fmt.Errorf("failed to decode ack: %w", err)
	}
	return ack, nil
}

func (a Ack) Accepted() bool {
	return a.ResponseCode == "0" && a.CheckoutRequestID != ""
}

// Reason describes why the push was rejected.
func (a Ack) Reason() string {
	if a.ErrorMessage != "" {
		return a.ErrorMessage
	}
	return a.ResponseDescription
}

type CallbackItem struct {
	Name  string `json:"Name"`
	Value any    `json:"Value,omitempty"`
}

type StkCallback struct {
	MerchantRequestID string `json:"MerchantRequestID"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
	ResultCode        int    `json:"ResultCode"`
	ResultDesc        string `json:"ResultDesc"`
	CallbackMetadata  struct {
		Item []CallbackItem `json:"Item"`
	} `json:"CallbackMetadata"`
}

// Callback is the asynchronous result the provider posts to the callback URL.
type Callback struct {
	Body struct {
		StkCallback StkCallback `json:"stkCallback"`
	} `json:"Body"`
}

func ParseCallback(data []byte) (StkCallback, error) {
	var cb Callback
	if err := json.Unmarshal(data, &cb); err != nil {
		return StkCallback{}, fmt.Errorf("%w: %w", ErrInvalidCallback, err)
	}
	if cb.Body.StkCallback.CheckoutRequestID == "" {
		return StkCallback{}, fmt.Errorf("%w: missing checkout request id", ErrInvalidCallback)
	}
	return cb.Body.StkCallback, nil
}

func (c StkCallback) Succeeded() bool { return c.ResultCode == 0 }

func (c StkCallback) item(name string) (any, bool) {
	for _, it := range c.CallbackMetadata.Item {
		if it.Name == name && it.Value != nil {
			return it.Value, true
		}
	}
	return nil, false
}

func (c StkCallback) Amount() decimal.Decimal {
	v, ok := c.item("Amount")
	if !ok {
		return decimal.Zero
	}
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n)
	case string:
		d, err := decimal.NewFromString(n)
		if err == nil {
			return d
		}
	}
	return decimal.Zero
}

func (c StkCallback) Receipt() string {
	return c.stringItem("MpesaReceiptNumber")
}

func (c StkCallback) PhoneNumber() string {
	return c.stringItem("PhoneNumber")
}

func (c StkCallback) stringItem(name string) string {
	v, ok := c.item(name)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
