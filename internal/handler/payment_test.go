package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/handler"
	mocks "github.com/Elly-L/main-shilingi-x-sub001/internal/handler/mocks"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/mpesa"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const callbackToken = "3f9c1a7e5b2d4c8f"

func TestPaymentHandler_StkPush(t *testing.T) {
	ack := `{"MerchantRequestID":"m-1","CheckoutRequestID":"ws_CO_1","ResponseCode":"0"}`

	testCases := []struct {
		name         string
		body         string
		idemKey      string
		mockBehavior func(svc *mocks.MockPaymentService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "provider body is relayed verbatim",
			body: `{"amount":100,"phoneNumber":"254712345678"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().InitiateDeposit(mock.Anything, "user-1", int64(100), "254712345678", "").
					Return(json.RawMessage(ack), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   ack,
		},
		{
			name: "local number is normalized",
			body: `{"amount":50,"phoneNumber":"0712345678"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().InitiateDeposit(mock.Anything, "user-1", int64(50), "254712345678", "").
					Return(json.RawMessage(ack), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   ack,
		},
		{
			name:    "idempotency key is forwarded",
			body:    `{"amount":100,"phoneNumber":"+254712345678"}`,
			idemKey: "key-1",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().InitiateDeposit(mock.Anything, "user-1", int64(100), "254712345678", "key-1").
					Return(json.RawMessage(ack), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   ack,
		},
		{
			name:       "zero amount",
			body:       `{"amount":0,"phoneNumber":"254712345678"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Amount":"gt"`,
		},
		{
			name:       "bad phone",
			body:       `{"amount":100,"phoneNumber":"12ab"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"PhoneNumber":"msisdn"`,
		},
		{
			name:       "malformed body",
			body:       `{"amount":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid request body"`,
		},
		{
			name: "duplicate in flight",
			body: `{"amount":100,"phoneNumber":"254712345678"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().InitiateDeposit(mock.Anything, "user-1", int64(100), "254712345678", "").
					Return(nil, entities.ErrDuplicateRequest).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"error"`,
		},
		{
			name: "adapter failure",
			body: `{"amount":100,"phoneNumber":"254712345678"}`,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().InitiateDeposit(mock.Anything, "user-1", int64(100), "254712345678", "").
					Return(nil, mpesa.ErrInitiationFailed).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"failed to initiate payment"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockPaymentService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}
			h := handler.NewPaymentHandler(discardLogger(), signedIn, svc, callbackToken)

			req := httptest.NewRequest(http.MethodPost, "/stkpush", strings.NewReader(tc.body))
			if tc.idemKey != "" {
				req.Header.Set(handler.IdempotencyKeyHeader, tc.idemKey)
			}

			status, body := serve(t, h, req)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestPaymentHandler_StkPush_RequiresUser(t *testing.T) {
	svc := mocks.NewMockPaymentService(t)
	h := handler.NewPaymentHandler(discardLogger(), fakeAuth{}, svc, callbackToken)

	req := httptest.NewRequest(http.MethodPost, "/stkpush", strings.NewReader(`{"amount":100,"phoneNumber":"254712345678"}`))
	status, _ := serve(t, h, req)

	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestPaymentHandler_Callback(t *testing.T) {
	const wantAck = `{"ResultCode":0,"ResultDesc":"Accepted"}`

	valid := `{"Body":{"stkCallback":{"MerchantRequestID":"m-1","CheckoutRequestID":"ws_CO_1","ResultCode":0,"ResultDesc":"ok",
		"CallbackMetadata":{"Item":[{"Name":"Amount","Value":100},{"Name":"MpesaReceiptNumber","Value":"NLJ7RT61SV"}]}}}}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockPaymentService)
	}{
		{
			name: "handled",
			body: valid,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					HandleCallback(mock.Anything, mock.MatchedBy(func(cb mpesa.StkCallback) bool {
						return cb.CheckoutRequestID == "ws_CO_1" && cb.Receipt() == "NLJ7RT61SV"
					})).
					Return(nil).Once()
			},
		},
		{
			name: "unknown payment",
			body: valid,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().HandleCallback(mock.Anything, mock.Anything).Return(entities.ErrPaymentNotFound).Once()
			},
		},
		{
			name: "mismatched payment",
			body: valid,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().HandleCallback(mock.Anything, mock.Anything).Return(entities.ErrCallbackMismatch).Once()
			},
		},
		{
			name: "service failure",
			body: valid,
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().HandleCallback(mock.Anything, mock.Anything).Return(errors.New("db error")).Once()
			},
		},
		{
			name: "garbage",
			body: `not json`,
		},
		{
			name: "missing checkout id",
			body: `{"Body":{"stkCallback":{"ResultCode":0}}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockPaymentService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}
			h := handler.NewPaymentHandler(discardLogger(), fakeAuth{}, svc, callbackToken)

			req := httptest.NewRequest(http.MethodPost, "/mpesa/callback?token="+callbackToken, strings.NewReader(tc.body))
			status, body := serve(t, h, req)

			assert.Equal(t, http.StatusOK, status)
			assert.JSONEq(t, wantAck, body)
		})
	}
}

func TestPaymentHandler_Callback_RejectsBadToken(t *testing.T) {
	forged := `{"Body":{"stkCallback":{"MerchantRequestID":"m-1","CheckoutRequestID":"ws_CO_1","ResultCode":0,"ResultDesc":"ok",
		"CallbackMetadata":{"Item":[{"Name":"Amount","Value":1000000},{"Name":"MpesaReceiptNumber","Value":"FORGED0001"}]}}}}`

	testCases := []struct {
		name       string
		configured string
		target     string
	}{
		{
			name:       "missing token",
			configured: callbackToken,
			target:     "/mpesa/callback",
		},
		{
			name:       "wrong token",
			configured: callbackToken,
			target:     "/mpesa/callback?token=0000000000000000",
		},
		{
			name:       "token prefix",
			configured: callbackToken,
			target:     "/mpesa/callback?token=" + callbackToken[:8],
		},
		{
			name:   "no token configured",
			target: "/mpesa/callback?token=",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockPaymentService(t)
			h := handler.NewPaymentHandler(discardLogger(), fakeAuth{}, svc, tc.configured)

			req := httptest.NewRequest(http.MethodPost, tc.target, strings.NewReader(forged))
			status, body := serve(t, h, req)

			assert.Equal(t, http.StatusUnauthorized, status)
			assert.JSONEq(t, `{"error":"unauthorized"}`, body)
			svc.AssertNotCalled(t, "HandleCallback", mock.Anything, mock.Anything)
		})
	}
}
