package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

func (r *postgresRepo) GetWallet(ctx context.Context, userID string) (entities.Wallet, error) {
	query, args := r.qb.Select("user_id", "currency", "balance", "updated_at").
		From("wallets").
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	var wallet Wallet
	err := r.getContext(ctx, &wallet, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Wallet{}, entities.ErrWalletNotFound
	}
	if err != nil {
		return entities.Wallet{}, fmt.Errorf("failed to get wallet: %w", err)
	}
	return WalletToEntity(wallet), nil
}

// LockWallet creates the wallet if needed and locks its row until the
// surrounding transaction ends.
func (r *postgresRepo) LockWallet(ctx context.Context, userID string) (entities.Wallet, error) {
	query, args := r.qb.Insert("wallets").
		Columns("user_id", "currency", "balance").
		Values(userID, entities.DefaultCurrency, decimal.Zero).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.Wallet{}, fmt.Errorf("failed to create wallet: %w", err)
	}

	query, args = r.qb.Select("user_id", "currency", "balance", "updated_at").
		From("wallets").
		Where(sq.Eq{"user_id": userID}).
		Suffix("FOR UPDATE").
		MustSql()

	var wallet Wallet
	if err := r.getContext(ctx, &wallet, query, args...); err != nil {
		return entities.Wallet{}, fmt.Errorf("failed to lock wallet: %w", err)
	}
	return WalletToEntity(wallet), nil
}

func (r *postgresRepo) UpdateBalance(ctx context.Context, userID string, balance decimal.Decimal) error {
	query, args := r.qb.Update("wallets").
		Set("balance", balance).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}
	return nil
}

// SaveTransaction inserts t. A transaction with an already recorded
// provider reference is reported as ErrTransactionExists.
func (r *postgresRepo) SaveTransaction(ctx context.Context, t entities.WalletTransaction) error {
	query, args := r.qb.Insert("wallet_transactions").
		Columns("id", "user_id", "type", "status", "amount", "provider", "provider_ref").
		Values(t.ID, t.UserID, string(t.Type), string(t.Status), t.Amount, t.Provider, nullString(t.ProviderRef)).
		Suffix("ON CONFLICT (provider_ref) DO NOTHING").
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	if n == 0 {
		return entities.ErrTransactionExists
	}
	return nil
}

func (r *postgresRepo) ListTransactions(ctx context.Context, userID string, limit int) ([]entities.WalletTransaction, error) {
	query, args := r.qb.Select("id", "user_id", "type", "status", "amount", "provider", "provider_ref", "created_at").
		From("wallet_transactions").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		MustSql()

	var rows []WalletTransaction
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	result := make([]entities.WalletTransaction, 0, len(rows))
	for _, row := range rows {
		result = append(result, WalletTransactionToEntity(row))
	}
	return result, nil
}
