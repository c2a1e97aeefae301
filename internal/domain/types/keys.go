package types

import (
	"encoding/hex"
	"fmt"
)

// PublicKeySize is the length of an x-only secp256k1 public key.
const PublicKeySize = 32

// PublicKey is an x-only (BIP-340) secp256k1 public key.
//
// It encodes as lowercase hex in JSON and text. Curve membership is checked
// by the crypto package, not here.
type PublicKey [PublicKeySize]byte

// Slice returns the key as a []byte.
func (p PublicKey) Slice() []byte { return p[:] }

// IsZero reports whether the key is unset.
func (p PublicKey) IsZero() bool { return p == PublicKey{} }

// String returns the hex form of the key.
func (p PublicKey) String() string { return hex.EncodeToString(p[:]) }

// MarshalText implements encoding.TextMarshaler.
func (p PublicKey) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PublicKey) UnmarshalText(text []byte) error {
	if len(text) != hex.EncodedLen(PublicKeySize) {
		return fmt.Errorf("public key: want %d hex chars, got %d", hex.EncodedLen(PublicKeySize), len(text))
	}
	if _, err := hex.Decode(p[:], text); err != nil {
		return fmt.Errorf("public key: %w", err)
	}
	return nil
}

// KeyInfo is the public half of a stored key pair.
type KeyInfo struct {
	Name        KeyName     `json:"name"`
	PublicKey   PublicKey   `json:"public_key"`
	Fingerprint Fingerprint `json:"fingerprint"`
	CreatedAt   int64       `json:"created_at"`
}
