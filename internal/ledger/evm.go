package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const walletIDMethod = "getWalletId"

// weibarPerTinybar converts JSON-RPC relay gas prices (weibar) to tinybars.
var weibarPerTinybar = big.NewInt(10_000_000_000)

// Backend is the subset of *ethclient.Client used by contracts.
type Backend interface {
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

func ParseABI(contractABI string) (abi.ABI, error) {
	parsed, err := abi.JSON(strings.NewReader(contractABI))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to parse contract abi: %w", err)
	}
	return parsed, nil
}

// Contracts opens handles to deployments of one contract ABI.
type Contracts struct {
	backend Backend
	abi     abi.ABI
}

func NewContracts(backend Backend, contractABI abi.ABI) *Contracts {
	return &Contracts{backend: backend, abi: contractABI}
}

// At returns a handle to the deployment with the given ledger contract id.
func (c *Contracts) At(contractID string) (*Contract, error) {
	addr, err := AccountIDToAddress(contractID)
	if err != nil {
		return nil, err
	}
	return &Contract{backend: c.backend, abi: c.abi, address: common.HexToAddress(addr)}, nil
}

type Contract struct {
	backend Backend
	abi     abi.ABI
	address common.Address
}

func (c *Contract) Address() common.Address { return c.address }

// EstimateFee returns estimated gas times the current gas price, in tinybars.
func (c *Contract) EstimateFee(ctx context.Context, method string, params ...any) (int64, error) {
	data, err := c.pack(method, params)
	if err != nil {
		return 0, err
	}

	gas, err := c.backend.EstimateGas(ctx, ethereum.CallMsg{To: &c.address, Data: data})
	if err != nil {
		return 0, fmt.Errorf("failed to estimate gas: %w", err)
	}
	price, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get gas price: %w", err)
	}

	fee := new(big.Int).Mul(new(big.Int).SetUint64(gas), price)
	fee.Quo(fee, weibarPerTinybar)
	if !fee.IsInt64() {
		return 0, fmt.Errorf("fee %s overflows int64", fee)
	}
	return fee.Int64(), nil
}

// WalletID reads the wallet id the contract assigned to owner.
func (c *Contract) WalletID(ctx context.Context, ownerAccountID string) (string, error) {
	data, err := c.pack(walletIDMethod, []any{ownerAccountID})
	if err != nil {
		return "", err
	}

	out, err := c.backend.CallContract(ctx, ethereum.CallMsg{To: &c.address, Data: data}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to call %s: %w", walletIDMethod, err)
	}

	values, err := c.abi.Unpack(walletIDMethod, out)
	if err != nil {
		return "", fmt.Errorf("failed to unpack %s: %w", walletIDMethod, err)
	}
	if len(values) == 0 {
		return "", fmt.Errorf("%s returned no values", walletIDMethod)
	}

	switch v := values[0].(type) {
	case string:
		return v, nil
	case common.Address:
		return AddressToAccountID(v.Hex())
	case *big.Int:
		return v.String(), nil
	default:
		return fmt.Sprint(v), nil
	}
}

func (c *Contract) pack(method string, params []any) ([]byte, error) {
	m, ok := c.abi.Methods[method]
	if !ok {
		return nil, fmt.Errorf("unknown contract method %q", method)
	}
	if len(params) != len(m.Inputs) {
		return nil, fmt.Errorf("method %q takes %d params, got %d", method, len(m.Inputs), len(params))
	}

	args := make([]any, len(params))
	for i, p := range params {
		arg, err := coerce(m.Inputs[i].Type, p)
		if err != nil {
			return nil, fmt.Errorf("param %d of %q: %w", i, method, err)
		}
		args[i] = arg
	}

	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %q: %w", method, err)
	}
	return data, nil
}

// coerce converts loosely typed values (as decoded from JSON) into the Go
// type the ABI encoder expects for t.
func coerce(t abi.Type, v any) (any, error) {
	switch t.T {
	case abi.IntTy, abi.UintTy:
		n, err := toBigInt(v)
		if err != nil {
			return nil, err
		}
		target := t.GetType()
		if target == reflect.TypeOf(&big.Int{}) {
			return n, nil
		}
		out := reflect.New(target).Elem()
		if t.T == abi.UintTy {
			if n.Sign() < 0 || !n.IsUint64() || out.OverflowUint(n.Uint64()) {
				return nil, fmt.Errorf("%s out of range for %s", n, t)
			}
			out.SetUint(n.Uint64())
		} else {
			if !n.IsInt64() || out.OverflowInt(n.Int64()) {
				return nil, fmt.Errorf("%s out of range for %s", n, t)
			}
			out.SetInt(n.Int64())
		}
		return out.Interface(), nil
	case abi.AddressTy:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected address string, got %T", v)
		}
		if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
			addr, err := AccountIDToAddress(s)
			if err != nil {
				return nil, err
			}
			s = addr
		}
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
		}
		return common.HexToAddress(s), nil
	case abi.StringTy:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		return s, nil
	case abi.BoolTy:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("expected bool, got %T", v)
		}
		return b, nil
	default:
		return v, nil
	}
}

func toBigInt(v any) (*big.Int, error) {
	switch n := v.(type) {
	case *big.Int:
		return n, nil
	case int:
		return big.NewInt(int64(n)), nil
	case int64:
		return big.NewInt(n), nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	case float64:
		if n != float64(int64(n)) {
			return nil, fmt.Errorf("expected integer, got %v", n)
		}
		return big.NewInt(int64(n)), nil
	case json.Number:
		return parseBigInt(n.String())
	case string:
		return parseBigInt(n)
	default:
		return nil, fmt.Errorf("expected integer, got %T", v)
	}
}

func parseBigInt(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return n, nil
}
