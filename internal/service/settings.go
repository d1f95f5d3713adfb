package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/ledger"
)

var contractIDPattern = regexp.MustCompile(`^0\.0\.\d+$`)

type SettingsRepo interface {
	GetContractSettings(ctx context.Context) (entities.ContractSettings, error)
	SaveContractSettings(ctx context.Context, s entities.ContractSettings) (entities.ContractSettings, error)
}

type ContractHandle interface {
	ledger.Estimator
	WalletID(ctx context.Context, ownerAccountID string) (string, error)
}

type ContractOpener interface {
	Open(contractID string) (ContractHandle, error)
}

type settingsService struct {
	logger    *slog.Logger
	repo      SettingsRepo
	contracts ContractOpener
}

func NewSettingsService(logger *slog.Logger, repo SettingsRepo, contracts ContractOpener) *settingsService {
	return &settingsService{
		logger:    logger.With(slog.String("service", "settings")),
		repo:      repo,
		contracts: contracts,
	}
}

func (s *settingsService) GetContractSettings(ctx context.Context) (entities.ContractSettings, error) {
	return s.repo.GetContractSettings(ctx)
}

// SetContractID accepts only shard 0, realm 0 ids such as 0.0.4821.
func (s *settingsService) SetContractID(ctx context.Context, contractID, updatedBy string) (entities.ContractSettings, error) {
	if !contractIDPattern.MatchString(contractID) {
		return entities.ContractSettings{}, entities.ErrInvalidAccountID
	}
	if _, err := ledger.AccountIDToAddress(contractID); err != nil {
		return entities.ContractSettings{}, fmt.Errorf("%w: %v", entities.ErrInvalidAccountID, err)
	}

	saved, err := s.repo.SaveContractSettings(ctx, entities.ContractSettings{
		ContractID: contractID,
		UpdatedBy:  updatedBy,
	})
	if err != nil {
		return entities.ContractSettings{}, fmt.Errorf("failed to save contract settings: %w", err)
	}

	s.logger.InfoContext(ctx, "contract id updated",
		slog.String("contract_id", contractID),
		slog.String("updated_by", updatedBy),
	)
	return saved, nil
}

// WalletID looks up the on-ledger wallet registered for an account.
func (s *settingsService) WalletID(ctx context.Context, ownerAccountID string) (string, error) {
	if _, err := ledger.AccountIDToAddress(ownerAccountID); err != nil {
		return "", fmt.Errorf("%w: %v", entities.ErrInvalidAccountID, err)
	}

	contract, err := s.contract(ctx)
	if err != nil {
		return "", err
	}
	return contract.WalletID(ctx, ownerAccountID)
}

func (s *settingsService) EstimateGas(ctx context.Context, method string, params []any) ledger.GasEstimate {
	var est ledger.GasEstimate

	contract, err := s.contract(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "gas estimation unavailable", slog.Any("error", err))
		est = ledger.GasEstimate{Formatted: ledger.GasEstimatePlaceholder, Reason: err.Error()}
	} else {
		est = ledger.EstimateGas(ctx, contract, method, params)
	}

	if est.OK {
		gasEstimates.WithLabelValues("ok").Inc()
	} else {
		gasEstimates.WithLabelValues("failed").Inc()
		s.logger.DebugContext(ctx, "gas estimation failed",
			slog.String("method", method),
			slog.String("reason", est.Reason),
		)
	}
	return est
}

func (s *settingsService) contract(ctx context.Context) (ContractHandle, error) {
	settings, err := s.repo.GetContractSettings(ctx)
	if errors.Is(err, entities.ErrSettingsNotFound) || (err == nil && settings.ContractID == "") {
		return nil, entities.ErrContractNotSet
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load contract settings: %w", err)
	}

	contract, err := s.contracts.Open(settings.ContractID)
	if err != nil {
		return nil, fmt.Errorf("failed to open contract %s: %w", settings.ContractID, err)
	}
	return contract, nil
}
