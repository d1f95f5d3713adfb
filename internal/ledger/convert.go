// Package ledger converts between Hedera account ids and EVM addresses and
// estimates contract call fees.
package ledger

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const (
	accountPrefix = "0.0."
	addressBytes  = 20
)

var (
	ErrInvalidAccountID = errors.New("invalid account id")
	ErrInvalidAddress   = errors.New("invalid address")
)

// AccountIDToAddress renders the numeric part of "0.0.N" as a 20 byte,
// zero padded hex address.
func AccountIDToAddress(accountID string) (string, error) {
	num := strings.TrimPrefix(accountID, accountPrefix)

	n, ok := new(big.Int).SetString(num, 10)
	if !ok || n.Sign() < 0 || strings.HasPrefix(num, "+") {
		return "", fmt.Errorf("%w: %q", ErrInvalidAccountID, accountID)
	}
	if n.BitLen() > addressBytes*8 {
		return "", fmt.Errorf("%w: %q does not fit in an address", ErrInvalidAccountID, accountID)
	}

	return "0x" + hex.EncodeToString(n.FillBytes(make([]byte, addressBytes))), nil
}

// AddressToAccountID is the inverse of AccountIDToAddress on the numeric payload.
func AddressToAccountID(address string) (string, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(address, "0x"), "0X")
	if len(digits) > addressBytes*2 {
		return "", fmt.Errorf("%w: %q is longer than %d bytes", ErrInvalidAddress, address, addressBytes)
	}

	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		if address == "" || address == "0x" || address == "0X" {
			return "", fmt.Errorf("%w: empty address", ErrInvalidAddress)
		}
		return accountPrefix + "0", nil
	}

	n, ok := new(big.Int).SetString(digits, 16)
	if !ok || strings.ContainsAny(digits, "+-") {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return accountPrefix + n.String(), nil
}
