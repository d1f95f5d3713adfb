package repo

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"
	"github.com/shopspring/decimal"
)

type PaymentAttempt struct {
	ID                string         `db:"id"`
	UserID            string         `db:"user_id"`
	Amount            int64          `db:"amount"`
	Phone             string         `db:"phone"`
	MerchantRequestID sql.NullString `db:"merchant_request_id"`
	CheckoutRequestID sql.NullString `db:"checkout_request_id"`
	Status            string         `db:"status"`
	ResultCode        sql.NullInt32  `db:"result_code"`
	ResultDesc        sql.NullString `db:"result_desc"`
	MpesaReceipt      sql.NullString `db:"mpesa_receipt"`
	ProviderResponse  []byte         `db:"provider_response"`
	PublishedAt       sql.NullTime   `db:"published_at"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

type Wallet struct {
	UserID    string          `db:"user_id"`
	Currency  string          `db:"currency"`
	Balance   decimal.Decimal `db:"balance"`
	UpdatedAt time.Time       `db:"updated_at"`
}

type WalletTransaction struct {
	ID          string          `db:"id"`
	UserID      string          `db:"user_id"`
	Type        string          `db:"type"`
	Status      string          `db:"status"`
	Amount      decimal.Decimal `db:"amount"`
	Provider    string          `db:"provider"`
	ProviderRef sql.NullString  `db:"provider_ref"`
	CreatedAt   time.Time       `db:"created_at"`
}

type Product struct {
	ID            string          `db:"id"`
	Name          string          `db:"name"`
	Category      string          `db:"category"`
	Description   sql.NullString  `db:"description"`
	MinInvestment decimal.Decimal `db:"min_investment"`
	AnnualYield   decimal.Decimal `db:"annual_yield"`
	TenorMonths   int             `db:"tenor_months"`
	TokenID       sql.NullString  `db:"token_id"`
	Active        bool            `db:"active"`
}

type Profile struct {
	UserID    string         `db:"user_id"`
	FullName  sql.NullString `db:"full_name"`
	Phone     sql.NullString `db:"phone"`
	AvatarURL sql.NullString `db:"avatar_url"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type ContractSettings struct {
	ContractID string    `db:"contract_id"`
	UpdatedBy  string    `db:"updated_by"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func PaymentAttemptToEntity(p PaymentAttempt) entities.PaymentAttempt {
	a := entities.PaymentAttempt{
		ID:                p.ID,
		UserID:            p.UserID,
		Amount:            p.Amount,
		Phone:             p.Phone,
		MerchantRequestID: nullStringToString(p.MerchantRequestID),
		CheckoutRequestID: nullStringToString(p.CheckoutRequestID),
		Status:            entities.PaymentStatus(p.Status),
		ResultDesc:        nullStringToString(p.ResultDesc),
		MpesaReceipt:      nullStringToString(p.MpesaReceipt),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
	if p.ResultCode.Valid {
		code := int(p.ResultCode.Int32)
		a.ResultCode = &code
	}
	if p.PublishedAt.Valid {
		publishedAt := p.PublishedAt.Time
		a.PublishedAt = &publishedAt
	}
	if len(p.ProviderResponse) > 0 {
		a.ProviderResponse = json.RawMessage(p.ProviderResponse)
	}
	return a
}

func WalletToEntity(w Wallet) entities.Wallet {
	return entities.Wallet{
		UserID:    w.UserID,
		Currency:  w.Currency,
		Balance:   w.Balance,
		UpdatedAt: w.UpdatedAt,
	}
}

func WalletTransactionToEntity(t WalletTransaction) entities.WalletTransaction {
	return entities.WalletTransaction{
		ID:          t.ID,
		UserID:      t.UserID,
		Type:        entities.TransactionType(t.Type),
		Status:      entities.TransactionStatus(t.Status),
		Amount:      t.Amount,
		Provider:    t.Provider,
		ProviderRef: nullStringToString(t.ProviderRef),
		CreatedAt:   t.CreatedAt,
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:            p.ID,
		Name:          p.Name,
		Category:      entities.ProductCategory(p.Category),
		Description:   nullStringToString(p.Description),
		MinInvestment: p.MinInvestment,
		AnnualYield:   p.AnnualYield,
		TenorMonths:   p.TenorMonths,
		TokenID:       nullStringToString(p.TokenID),
		Active:        p.Active,
	}
}

func ProfileToEntity(p Profile) entities.Profile {
	return entities.Profile{
		UserID:    p.UserID,
		FullName:  nullStringToString(p.FullName),
		Phone:     nullStringToString(p.Phone),
		AvatarURL: nullStringToString(p.AvatarURL),
		UpdatedAt: p.UpdatedAt,
	}
}

func ContractSettingsToEntity(s ContractSettings) entities.ContractSettings {
	return entities.ContractSettings{
		ContractID: s.ContractID,
		UpdatedBy:  s.UpdatedBy,
		UpdatedAt:  s.UpdatedAt,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
