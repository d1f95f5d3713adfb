package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"
	"github.com/Elly-L/main-shilingi-x-sub001/pkg/trm"
	"github.com/Elly-L/main-shilingi-x-sub001/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultTransactionsLimit = 20
	MaxTransactionsLimit     = 100

	providerMpesa = "mpesa"
)

type WalletRepo interface {
	GetWallet(ctx context.Context, userID string) (entities.Wallet, error)
	// LockWallet creates the wallet when missing and locks it until the transaction ends.
	LockWallet(ctx context.Context, userID string) (entities.Wallet, error)
	UpdateBalance(ctx context.Context, userID string, balance decimal.Decimal) error
	// SaveTransaction returns entities.ErrTransactionExists for a repeated provider reference.
	SaveTransaction(ctx context.Context, t entities.WalletTransaction) error
	ListTransactions(ctx context.Context, userID string, limit int) ([]entities.WalletTransaction, error)
}

type walletService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      WalletRepo
}

func NewWalletService(logger *slog.Logger, txManager trm.Manager, repo WalletRepo) *walletService {
	return &walletService{
		logger:    logger.With(slog.String("service", "wallet")),
		txManager: txManager,
		repo:      repo,
	}
}

// GetWallet returns an empty wallet for users who never deposited.
func (s *walletService) GetWallet(ctx context.Context, userID string) (entities.Wallet, error) {
	var wallet entities.Wallet
	fn := func() error {
		var err error
		wallet, err = s.repo.GetWallet(ctx, userID)
		return err
	}

	err := utils.Retry(ctx, retryConfig, fn, entities.ErrWalletNotFound)
	if errors.Is(err, entities.ErrWalletNotFound) {
		return entities.Wallet{
			UserID:   userID,
			Currency: entities.DefaultCurrency,
			Balance:  decimal.Zero,
		}, nil
	}
	if err != nil {
		return entities.Wallet{}, err
	}
	return wallet, nil
}

func (s *walletService) ListTransactions(ctx context.Context, userID string, limit int) ([]entities.WalletTransaction, error) {
	switch {
	case limit <= 0:
		limit = DefaultTransactionsLimit
	case limit > MaxTransactionsLimit:
		limit = MaxTransactionsLimit
	}

	txs, err := s.repo.ListTransactions(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

// Withdraw debits the wallet and records a pending payout. Amounts finer
// than one cent are rejected.
func (s *walletService) Withdraw(ctx context.Context, userID string, amount decimal.Decimal) (entities.WalletTransaction, error) {
	if !amount.IsPositive() || !amount.Equal(amount.Truncate(2)) {
		return entities.WalletTransaction{}, entities.ErrInvalidAmount
	}

	txn := entities.WalletTransaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        entities.TransactionWithdrawal,
		Status:      entities.TransactionPending,
		Amount:      amount,
		Provider:    providerMpesa,
		ProviderRef: "withdrawal:" + uuid.NewString(),
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		wallet, err := s.repo.LockWallet(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to lock wallet: %w", err)
		}
		if wallet.Balance.LessThan(amount) {
			return entities.ErrInsufficientFunds
		}
		if err := s.repo.UpdateBalance(ctx, userID, wallet.Balance.Sub(amount)); err != nil {
			return fmt.Errorf("failed to update balance: %w", err)
		}
		if err := s.repo.SaveTransaction(ctx, txn); err != nil {
			return fmt.Errorf("failed to save transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.WalletTransaction{}, err
	}

	s.logger.InfoContext(ctx, "withdrawal requested",
		slog.String("user_id", userID),
		slog.String("amount", amount.String()),
	)
	return txn, nil
}

// CreditDeposit applies a successful payment to the payer's wallet. Results
// are keyed by checkout request id, so redelivered results are ignored.
func (s *walletService) CreditDeposit(ctx context.Context, result entities.PaymentResult) error {
	if result.Status != entities.PaymentSucceeded {
		s.logger.DebugContext(ctx, "skipping unsuccessful payment",
			slog.String("checkout_request_id", result.CheckoutRequestID),
			slog.String("status", string(result.Status)),
		)
		return nil
	}
	if !result.Amount.IsPositive() || result.UserID == "" || result.CheckoutRequestID == "" {
		return fmt.Errorf("%w: %s", entities.ErrInvalidAmount, result.CheckoutRequestID)
	}

	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			wallet, err := s.repo.LockWallet(ctx, result.UserID)
			if err != nil {
				return fmt.Errorf("failed to lock wallet: %w", err)
			}

			err = s.repo.SaveTransaction(ctx, entities.WalletTransaction{
				ID:          uuid.NewString(),
				UserID:      result.UserID,
				Type:        entities.TransactionDeposit,
				Status:      entities.TransactionCompleted,
				Amount:      result.Amount,
				Provider:    providerMpesa,
				ProviderRef: result.CheckoutRequestID,
			})
			if err != nil {
				return err
			}

			if err := s.repo.UpdateBalance(ctx, result.UserID, wallet.Balance.Add(result.Amount)); err != nil {
				return fmt.Errorf("failed to update balance: %w", err)
			}
			return nil
		})
	}

	err := utils.Retry(ctx, retryConfig, fn, entities.ErrTransactionExists)
	if errors.Is(err, entities.ErrTransactionExists) {
		s.logger.DebugContext(ctx, "deposit already credited", slog.String("checkout_request_id", result.CheckoutRequestID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to credit deposit: %w", err)
	}

	depositsCredited.Inc()
	s.logger.InfoContext(ctx, "deposit credited",
		slog.String("user_id", result.UserID),
		slog.String("checkout_request_id", result.CheckoutRequestID),
		slog.String("amount", result.Amount.String()),
	)
	return nil
}
