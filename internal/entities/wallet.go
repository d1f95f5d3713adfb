package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "KES"

type Wallet struct {
	UserID    string
	Currency  string
	Balance   decimal.Decimal
	UpdatedAt time.Time
}

type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

type WalletTransaction struct {
	ID          string
	UserID      string
	Type        TransactionType
	Status      TransactionStatus
	Amount      decimal.Decimal
	Provider    string
	ProviderRef string
	CreatedAt   time.Time
}

var (
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrTransactionExists = errors.New("transaction already recorded")
)
