package crypto

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"stakeplug/internal/domain"
)

// PrivateKeySize is the length of a raw secp256k1 private scalar.
const PrivateKeySize = 32

var (
	// ErrInvalidPublicKey is returned when bytes do not name a point on the curve.
	ErrInvalidPublicKey = errors.New("invalid x-only public key")
	// ErrInvalidPrivateKey is returned for malformed private key material.
	ErrInvalidPrivateKey = errors.New("invalid private key")
	// ErrBadSignature is returned when a signature does not verify.
	ErrBadSignature = errors.New("signature verification failed")
)

// GenerateKey returns a fresh secp256k1 private scalar and its x-only public key.
func GenerateKey() (priv []byte, pub domain.PublicKey, err error) {
	sk, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, pub, err
	}
	defer sk.Zero()
	copy(pub[:], schnorr.SerializePubKey(sk.PubKey()))
	return sk.Serialize(), pub, nil
}

// PublicKeyFromPrivate derives the x-only public key for priv.
func PublicKeyFromPrivate(priv []byte) (domain.PublicKey, error) {
	var pub domain.PublicKey
	if len(priv) != PrivateKeySize {
		return pub, ErrInvalidPrivateKey
	}
	sk, pk := btcec.PrivKeyFromBytes(priv)
	defer sk.Zero()
	copy(pub[:], schnorr.SerializePubKey(pk))
	return pub, nil
}

// ParsePublicKey decodes an x-only key and checks it lies on the curve.
func ParsePublicKey(pub domain.PublicKey) (*btcec.PublicKey, error) {
	if pub.IsZero() {
		return nil, fmt.Errorf("%w: zero key", ErrInvalidPublicKey)
	}
	pk, err := schnorr.ParsePubKey(pub.Slice())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return pk, nil
}

// ValidatePublicKey reports whether pub is a usable x-only key.
func ValidatePublicKey(pub domain.PublicKey) error {
	_, err := ParsePublicKey(pub)
	return err
}
