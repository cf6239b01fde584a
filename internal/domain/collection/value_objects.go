package collection

import (
	"errors"
	"strings"
)

var ErrInvalidWalletAddress = errors.New("invalid wallet address")

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// WalletAddress is a base58-encoded Solana public key. Only shape is checked
// here; the chain layer rejects addresses that do not decode to 32 bytes.
type WalletAddress struct {
	value string
}

func NewWalletAddress(value string) (WalletAddress, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) < 32 || len(trimmed) > 44 {
		return WalletAddress{}, ErrInvalidWalletAddress
	}
	for _, r := range trimmed {
		if !strings.ContainsRune(base58Alphabet, r) {
			return WalletAddress{}, ErrInvalidWalletAddress
		}
	}
	return WalletAddress{value: trimmed}, nil
}

func (w WalletAddress) String() string {
	return w.value
}

func (w WalletAddress) IsZero() bool {
	return w.value == ""
}
