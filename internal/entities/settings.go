package entities

import (
	"errors"
	"time"
)

// ContractSettings holds the ledger contract the platform records investments against.
type ContractSettings struct {
	ContractID string
	UpdatedBy  string
	UpdatedAt  time.Time
}

var (
	ErrSettingsNotFound = errors.New("contract settings not found")
	ErrContractNotSet   = errors.New("contract id is not configured")
	ErrInvalidAccountID = errors.New("invalid account id")
)
