package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// tinybarDecimals scales tinybars to HBAR.
	tinybarDecimals = 8
	gasFeeUnit      = "HBAR"

	GasEstimatePlaceholder = "Fee unavailable"
)

var ErrNoContract = errors.New("contract is not configured")

// FormatGasFee renders a fee given in tinybars as HBAR with a fixed number of decimals.
func FormatGasFee(fee int64) string {
	return decimal.New(fee, -tinybarDecimals).StringFixed(tinybarDecimals) + " " + gasFeeUnit
}

// Estimator estimates the fee of calling a contract method, in tinybars.
type Estimator interface {
	EstimateFee(ctx context.Context, method string, params ...any) (int64, error)
}

// GasEstimate is either a fee (OK) or the reason no fee could be estimated.
type GasEstimate struct {
	OK        bool   `json:"ok"`
	Fee       int64  `json:"fee"`
	Formatted string `json:"formatted"`
	Reason    string `json:"reason,omitempty"`
}

func (g GasEstimate) String() string {
	if !g.OK {
		return GasEstimatePlaceholder
	}
	return g.Formatted
}

func failedEstimate(reason string) GasEstimate {
	return GasEstimate{Formatted: GasEstimatePlaceholder, Reason: reason}
}

// EstimateGas never returns an error: failures are reported in the result.
func EstimateGas(ctx context.Context, contract Estimator, method string, params []any) (est GasEstimate) {
	if contract == nil {
		return failedEstimate(ErrNoContract.Error())
	}

	defer func() {
		if r := recover(); r != nil {
			est = failedEstimate(fmt.Sprintf("estimation panicked: %v", r))
		}
	}()

	fee, err := contract.EstimateFee(ctx, method, params...)
	if err != nil {
		return failedEstimate(err.Error())
	}
	return GasEstimate{OK: true, Fee: fee, Formatted: FormatGasFee(fee)}
}
