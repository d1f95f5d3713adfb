package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

type ProductCategory string

const (
	CategoryGovernmentSecurity ProductCategory = "government_security"
	CategoryInfrastructureBond ProductCategory = "infrastructure_bond"
	CategoryTokenizedEquity    ProductCategory = "tokenized_equity"
)

type Product struct {
	ID            string
	Name          string
	Category      ProductCategory
	Description   string
	MinInvestment decimal.Decimal
	AnnualYield   decimal.Decimal
	TenorMonths   int
	// TokenID is the ledger token backing a tokenized equity, empty otherwise.
	TokenID string
	Active  bool
}

var ErrProductNotFound = errors.New("product not found")
