package common

import (
	"crypto/rand"
	"fmt"

	"github.com/mr-tron/base58"
)

// NewAddress generates a fresh 32-byte wallet address encoded in base58.
// Addresses here are opaque identifiers, not public keys; the ledger does
// not authenticate senders.
func NewAddress() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate address bytes: %w", err)
	}
	return base58.Encode(buf), nil
}

// EncodeBytesToBase58 encodes bytes directly to base58
func EncodeBytesToBase58(bytes []byte) string {
	return base58.Encode(bytes)
}

// DecodeBase58ToBytes decodes base58 string to bytes
func DecodeBase58ToBytes(base58Str string) ([]byte, error) {
	bytes, err := base58.Decode(base58Str)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base58 string: %w", err)
	}
	return bytes, nil
}
