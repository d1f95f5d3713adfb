package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/handler"
	mocks "github.com/Elly-L/main-shilingi-x-sub001/internal/handler/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWalletHandler_GetWallet(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(svc *mocks.MockWalletService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			mockBehavior: func(svc *mocks.MockWalletService) {
				svc.EXPECT().GetWallet(mock.Anything, "user-1").
					Return(entities.Wallet{UserID: "user-1", Currency: "KES", Balance: decimal.RequireFromString("1250.5")}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"balance":"1250.50"`,
		},
		{
			name: "internal error",
			mockBehavior: func(svc *mocks.MockWalletService) {
				svc.EXPECT().GetWallet(mock.Anything, "user-1").Return(entities.Wallet{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockWalletService(t)
			tc.mockBehavior(svc)
			h := handler.NewWalletHandler(discardLogger(), signedIn, svc)

			status, body := serve(t, h, httptest.NewRequest(http.MethodGet, "/wallet", nil))

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestWalletHandler_ListTransactions(t *testing.T) {
	testCases := []struct {
		name         string
		query        string
		mockBehavior func(svc *mocks.MockWalletService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "default limit",
			query: "",
			mockBehavior: func(svc *mocks.MockWalletService) {
				svc.EXPECT().ListTransactions(mock.Anything, "user-1", 0).
					Return([]entities.WalletTransaction{{ID: "tx-1", Type: entities.TransactionDeposit, Amount: decimal.NewFromInt(100)}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"tx-1"`,
		},
		{
			name:  "explicit limit",
			query: "?limit=5",
			mockBehavior: func(svc *mocks.MockWalletService) {
				svc.EXPECT().ListTransactions(mock.Anything, "user-1", 5).Return([]entities.WalletTransaction{}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "invalid limit",
			query:      "?limit=abc",
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid request"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockWalletService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}
			h := handler.NewWalletHandler(discardLogger(), signedIn, svc)

			status, body := serve(t, h, httptest.NewRequest(http.MethodGet, "/wallet/transactions"+tc.query, nil))

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestWalletHandler_Withdraw(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockWalletService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"amount":"200.00"}`,
			mockBehavior: func(svc *mocks.MockWalletService) {
				svc.EXPECT().
					Withdraw(mock.Anything, "user-1", mock.MatchedBy(func(d decimal.Decimal) bool {
						return d.Equal(decimal.NewFromInt(200))
					})).
					Return(entities.WalletTransaction{ID: "tx-2", Type: entities.TransactionWithdrawal, Status: entities.TransactionPending, Amount: decimal.NewFromInt(200)}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"status":"pending"`,
		},
		{
			name: "insufficient funds",
			body: `{"amount":"9000"}`,
			mockBehavior: func(svc *mocks.MockWalletService) {
				svc.EXPECT().Withdraw(mock.Anything, "user-1", mock.Anything).
					Return(entities.WalletTransaction{}, entities.ErrInsufficientFunds).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"insufficient funds"`,
		},
		{
			name: "negative amount",
			body: `{"amount":"-5"}`,
			mockBehavior: func(svc *mocks.MockWalletService) {
				svc.EXPECT().Withdraw(mock.Anything, "user-1", mock.Anything).
					Return(entities.WalletTransaction{}, entities.ErrInvalidAmount).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid amount"`,
		},
		{
			name: "sub-cent amount",
			body: `{"amount":"0.005"}`,
			mockBehavior: func(svc *mocks.MockWalletService) {
				svc.EXPECT().
					Withdraw(mock.Anything, "user-1", mock.MatchedBy(func(d decimal.Decimal) bool {
						return d.Equal(decimal.RequireFromString("0.005"))
					})).
					Return(entities.WalletTransaction{}, entities.ErrInvalidAmount).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid amount"`,
		},
		{
			name:       "not a number",
			body:       `{"amount":"lots"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Amount":"numeric"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockWalletService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}
			h := handler.NewWalletHandler(discardLogger(), signedIn, svc)

			status, body := serve(t, h, httptest.NewRequest(http.MethodPost, "/wallet/withdraw", strings.NewReader(tc.body)))

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}
