package handler

import (
	"time"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/ledger"
)

// StkPushRequest starts a wallet deposit
type StkPushRequest struct {
	Amount      int64  `json:"amount" validate:"gt=0"`
	PhoneNumber string `json:"phoneNumber" validate:"required,msisdn"`
}

// CallbackAck is the answer the payment provider expects for every callback
type CallbackAck struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

// Wallet is a user's balance
type Wallet struct {
	UserID    string    `json:"user_id"`
	Currency  string    `json:"currency"`
	Balance   string    `json:"balance"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Transaction is a wallet movement
type Transaction struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Amount      string    `json:"amount"`
	Provider    string    `json:"provider"`
	ProviderRef string    `json:"provider_ref,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// WithdrawRequest debits the wallet. Amount is a decimal string such as "250.00".
type WithdrawRequest struct {
	Amount string `json:"amount" validate:"required,numeric"`
}

// Product is an investment product
type Product struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Description   string `json:"description,omitempty"`
	MinInvestment string `json:"min_investment"`
	AnnualYield   string `json:"annual_yield"`
	TenorMonths   int    `json:"tenor_months"`
	TokenID       string `json:"token_id,omitempty"`
}

// Profile is the user's public profile
type Profile struct {
	UserID    string    `json:"user_id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"required,max=120"`
	Phone    string `json:"phone" validate:"omitempty,msisdn"`
}

type AvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}

type AddressResponse struct {
	AccountID string `json:"account_id"`
	Address   string `json:"address"`
}

type ContractSettings struct {
	ContractID string    `json:"contract_id"`
	UpdatedBy  string    `json:"updated_by,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type SetContractRequest struct {
	ContractID string `json:"contract_id" validate:"required"`
}

type WalletIDResponse struct {
	AccountID string `json:"account_id"`
	WalletID  string `json:"wallet_id"`
}

type EstimateGasRequest struct {
	Method string `json:"method" validate:"required"`
	Params []any  `json:"params"`
}

// GasEstimate is either a fee in tinybars or the reason it is unknown
type GasEstimate struct {
	OK        bool   `json:"ok"`
	Fee       int64  `json:"fee"`
	Formatted string `json:"formatted"`
	Reason    string `json:"reason,omitempty"`
}

func WalletEntityToJSON(w entities.Wallet) Wallet {
	return Wallet{
		UserID:    w.UserID,
		Currency:  w.Currency,
		Balance:   w.Balance.StringFixed(2),
		UpdatedAt: w.UpdatedAt,
	}
}

func TransactionEntityToJSON(t entities.WalletTransaction) Transaction {
	return Transaction{
		ID:          t.ID,
		Type:        string(t.Type),
		Status:      string(t.Status),
		Amount:      t.Amount.StringFixed(2),
		Provider:    t.Provider,
		ProviderRef: t.ProviderRef,
		CreatedAt:   t.CreatedAt,
	}
}

func TransactionsEntityToJSON(txs []entities.WalletTransaction) []Transaction {
	res := make([]Transaction, len(txs))
	for i, t := range txs {
		res[i] = TransactionEntityToJSON(t)
	}
	return res
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ID:            p.ID,
		Name:          p.Name,
		Category:      string(p.Category),
		Description:   p.Description,
		MinInvestment: p.MinInvestment.StringFixed(2),
		AnnualYield:   p.AnnualYield.String(),
		TenorMonths:   p.TenorMonths,
		TokenID:       p.TokenID,
	}
}

func ProductsEntityToJSON(products []entities.Product) []Product {
	res := make([]Product, len(products))
	for i, p := range products {
		res[i] = ProductEntityToJSON(p)
	}
	return res
}

func ProfileEntityToJSON(p entities.Profile) Profile {
	return Profile{
		UserID:    p.UserID,
		FullName:  p.FullName,
		Phone:     p.Phone,
		AvatarURL: p.AvatarURL,
		UpdatedAt: p.UpdatedAt,
	}
}

func ContractSettingsEntityToJSON(s entities.ContractSettings) ContractSettings {
	return ContractSettings{
		ContractID: s.ContractID,
		UpdatedBy:  s.UpdatedBy,
		UpdatedAt:  s.UpdatedAt,
	}
}

func GasEstimateToJSON(g ledger.GasEstimate) GasEstimate {
	return GasEstimate{
		OK:        g.OK,
		Fee:       g.Fee,
		Formatted: g.Formatted,
		Reason:    g.Reason,
	}
}
