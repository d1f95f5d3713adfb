package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/ledger"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/service"
	mocks "github.com/Elly-L/main-shilingi-x-sub001/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeContract struct {
	fee      int64
	feeErr   error
	walletID string
}

func (c fakeContract) EstimateFee(ctx context.Context, method string, params ...any) (int64, error) {
	return c.fee, c.feeErr
}

func (c fakeContract) WalletID(ctx context.Context, ownerAccountID string) (string, error) {
	return c.walletID, nil
}

func newSettingsService(repo service.SettingsRepo, opener service.ContractOpener) interface {
	SetContractID(ctx context.Context, contractID, updatedBy string) (entities.ContractSettings, error)
	WalletID(ctx context.Context, ownerAccountID string) (string, error)
	EstimateGas(ctx context.Context, method string, params []any) ledger.GasEstimate
} {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewSettingsService(logger, repo, opener)
}

func TestSettingsService_SetContractID(t *testing.T) {
	testCases := []struct {
		name       string
		contractID string
		wantErr    error
	}{
		{name: "OK", contractID: "0.0.4821"},
		{name: "non zero shard", contractID: "1.0.4821", wantErr: entities.ErrInvalidAccountID},
		{name: "not an id", contractID: "contract", wantErr: entities.ErrInvalidAccountID},
		{name: "empty", contractID: "", wantErr: entities.ErrInvalidAccountID},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockSettingsRepo(t)
			opener := mocks.NewMockContractOpener(t)
			if tc.wantErr == nil {
				repo.EXPECT().
					SaveContractSettings(mock.Anything, entities.ContractSettings{ContractID: tc.contractID, UpdatedBy: "admin-1"}).
					Return(entities.ContractSettings{ContractID: tc.contractID, UpdatedBy: "admin-1"}, nil)
			}

			got, err := newSettingsService(repo, opener).SetContractID(context.Background(), tc.contractID, "admin-1")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.contractID, got.ContractID)
		})
	}
}

func TestSettingsService_EstimateGas(t *testing.T) {
	type MockBehavior func(repo *mocks.MockSettingsRepo, opener *mocks.MockContractOpener)

	testCases := []struct {
		name          string
		mockBehavior  MockBehavior
		wantOK        bool
		wantFormatted string
		wantReason    string
	}{
		{
			name: "OK",
			mockBehavior: func(repo *mocks.MockSettingsRepo, opener *mocks.MockContractOpener) {
				repo.EXPECT().GetContractSettings(mock.Anything).Return(entities.ContractSettings{ContractID: "0.0.4821"}, nil)
				opener.EXPECT().Open("0.0.4821").Return(fakeContract{fee: 125000000}, nil)
			},
			wantOK:        true,
			wantFormatted: "1.25000000 HBAR",
		},
		{
			name: "contract rejects",
			mockBehavior: func(repo *mocks.MockSettingsRepo, opener *mocks.MockContractOpener) {
				repo.EXPECT().GetContractSettings(mock.Anything).Return(entities.ContractSettings{ContractID: "0.0.4821"}, nil)
				opener.EXPECT().Open("0.0.4821").Return(fakeContract{feeErr: errors.New("execution reverted")}, nil)
			},
			wantFormatted: ledger.GasEstimatePlaceholder,
			wantReason:    "execution reverted",
		},
		{
			name: "no contract configured",
			mockBehavior: func(repo *mocks.MockSettingsRepo, opener *mocks.MockContractOpener) {
				repo.EXPECT().GetContractSettings(mock.Anything).Return(entities.ContractSettings{}, entities.ErrSettingsNotFound)
			},
			wantFormatted: ledger.GasEstimatePlaceholder,
			wantReason:    entities.ErrContractNotSet.Error(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockSettingsRepo(t)
			opener := mocks.NewMockContractOpener(t)
			tc.mockBehavior(repo, opener)

			est := newSettingsService(repo, opener).EstimateGas(context.Background(), "invest", []any{"tbill-91", 100})

			assert.Equal(t, tc.wantOK, est.OK)
			assert.Equal(t, tc.wantFormatted, est.String())
			assert.Contains(t, est.Reason, tc.wantReason)
		})
	}
}

func TestSettingsService_WalletID(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		repo := mocks.NewMockSettingsRepo(t)
		opener := mocks.NewMockContractOpener(t)
		repo.EXPECT().GetContractSettings(mock.Anything).Return(entities.ContractSettings{ContractID: "0.0.4821"}, nil)
		opener.EXPECT().Open("0.0.4821").Return(fakeContract{walletID: "wallet-42"}, nil)

		got, err := newSettingsService(repo, opener).WalletID(context.Background(), "0.0.12345")
		require.NoError(t, err)
		assert.Equal(t, "wallet-42", got)
	})

	t.Run("invalid owner", func(t *testing.T) {
		repo := mocks.NewMockSettingsRepo(t)
		opener := mocks.NewMockContractOpener(t)

		_, err := newSettingsService(repo, opener).WalletID(context.Background(), "not-an-id")
		assert.ErrorIs(t, err, entities.ErrInvalidAccountID)
	})

	t.Run("contract not set", func(t *testing.T) {
		repo := mocks.NewMockSettingsRepo(t)
		opener := mocks.NewMockContractOpener(t)
		repo.EXPECT().GetContractSettings(mock.Anything).Return(entities.ContractSettings{}, entities.ErrSettingsNotFound)

		_, err := newSettingsService(repo, opener).WalletID(context.Background(), "0.0.12345")
		assert.ErrorIs(t, err, entities.ErrContractNotSet)
	})
}
