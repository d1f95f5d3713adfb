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
	"github.com/Elly-L/main-shilingi-x-sub001/internal/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLedgerHandler_Conversions(t *testing.T) {
	testCases := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "account to address",
			path:       "/ledger/address/0.0.12345",
			wantStatus: http.StatusOK,
			wantBody:   `"address":"0x0000000000000000000000000000000000003039"`,
		},
		{
			name:       "address to account",
			path:       "/ledger/account/0x0000000000000000000000000000000000003039",
			wantStatus: http.StatusOK,
			wantBody:   `"account_id":"0.0.12345"`,
		},
		{
			name:       "bad account",
			path:       "/ledger/address/0.0.abc",
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid account id"`,
		},
		{
			name:       "bad address",
			path:       "/ledger/account/0xzz",
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid address"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockSettingsService(t)
			h := handler.NewLedgerHandler(discardLogger(), fakeAuth{}, svc)

			status, body := serve(t, h, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestLedgerHandler_AdminRoutesRequireAdmin(t *testing.T) {
	svc := mocks.NewMockSettingsService(t)
	h := handler.NewLedgerHandler(discardLogger(), signedIn, svc)

	status, _ := serve(t, h, httptest.NewRequest(http.MethodGet, "/admin/contract-settings", nil))

	assert.Equal(t, http.StatusForbidden, status)
}

func TestLedgerHandler_SetContractSettings(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockSettingsService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"contract_id":"0.0.4821"}`,
			mockBehavior: func(svc *mocks.MockSettingsService) {
				svc.EXPECT().SetContractID(mock.Anything, "0.0.4821", "admin-1").
					Return(entities.ContractSettings{ContractID: "0.0.4821", UpdatedBy: "admin-1"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"contract_id":"0.0.4821"`,
		},
		{
			name: "invalid id",
			body: `{"contract_id":"4821"}`,
			mockBehavior: func(svc *mocks.MockSettingsService) {
				svc.EXPECT().SetContractID(mock.Anything, "4821", "admin-1").
					Return(entities.ContractSettings{}, entities.ErrInvalidAccountID).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid contract id"`,
		},
		{
			name:       "missing id",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"ContractID":"required"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockSettingsService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}
			h := handler.NewLedgerHandler(discardLogger(), admin, svc)

			req := httptest.NewRequest(http.MethodPut, "/admin/contract-settings", strings.NewReader(tc.body))
			status, body := serve(t, h, req)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestLedgerHandler_WalletID(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "contract not set", err: entities.ErrContractNotSet, wantStatus: http.StatusConflict},
		{name: "invalid account", err: entities.ErrInvalidAccountID, wantStatus: http.StatusBadRequest},
		{name: "rpc failure", err: errors.New("connection reset"), wantStatus: http.StatusBadGateway},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockSettingsService(t)
			walletID := ""
			if tc.err == nil {
				walletID = "wallet-42"
			}
			svc.EXPECT().WalletID(mock.Anything, "0.0.12345").Return(walletID, tc.err).Once()
			h := handler.NewLedgerHandler(discardLogger(), admin, svc)

			status, body := serve(t, h, httptest.NewRequest(http.MethodGet, "/admin/wallet-id/0.0.12345", nil))

			assert.Equal(t, tc.wantStatus, status)
			if tc.err == nil {
				assert.Contains(t, body, `"wallet_id":"wallet-42"`)
			}
		})
	}
}

func TestLedgerHandler_EstimateGas(t *testing.T) {
	t.Run("failure is reported in the body", func(t *testing.T) {
		svc := mocks.NewMockSettingsService(t)
		svc.EXPECT().EstimateGas(mock.Anything, "invest", []any{"tbill-91", float64(100)}).
			Return(ledger.GasEstimate{Formatted: ledger.GasEstimatePlaceholder, Reason: "execution reverted"}).Once()
		h := handler.NewLedgerHandler(discardLogger(), admin, svc)

		req := httptest.NewRequest(http.MethodPost, "/admin/estimate-gas", strings.NewReader(`{"method":"invest","params":["tbill-91",100]}`))
		status, body := serve(t, h, req)

		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"ok":false,"fee":0,"formatted":"Fee unavailable","reason":"execution reverted"}`, body)
	})

	t.Run("success", func(t *testing.T) {
		svc := mocks.NewMockSettingsService(t)
		svc.EXPECT().EstimateGas(mock.Anything, "invest", mock.Anything).
			Return(ledger.GasEstimate{OK: true, Fee: 0, Formatted: ledger.FormatGasFee(0)}).Once()
		h := handler.NewLedgerHandler(discardLogger(), admin, svc)

		req := httptest.NewRequest(http.MethodPost, "/admin/estimate-gas", strings.NewReader(`{"method":"invest"}`))
		status, body := serve(t, h, req)

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"formatted":"0.00000000 HBAR"`)
	})
}
