package services

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// NormalizeAddress validates a hex address and returns it lowercased.
func NormalizeAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if !strings.HasPrefix(address, "0x") || !common.IsHexAddress(address) {
		return "", invalidInput("malformed address %q", address)
	}
	return strings.ToLower(address), nil
}

// ToRawUnits converts a human-scaled amount into raw integer units.
// Fractions below one raw unit are truncated.
func ToRawUnits(human decimal.Decimal, decimals int32) string {
	return human.Shift(decimals).Truncate(0).BigInt().String()
}

// FromRawUnits renders a raw integer amount as a human-scaled decimal string.
func FromRawUnits(raw string, decimals int32) string {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return "0"
	}
	return d.Shift(-decimals).String()
}

func parseRaw(raw string) (*big.Int, error) {
	if raw == "" {
		return new(big.Int), nil
	}
	v, ok := new(big.Int).SetString(raw, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("invalid raw amount %q", raw)
	}
	return v, nil
}
