package crypto

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"stakeplug/internal/domain"
)

// messageTag domain-separates signed operator messages from other hashes.
var messageTag = []byte("stakeplug/message")

// Sign produces a BIP-340 signature over the tagged hash of msg.
func Sign(priv []byte, msg []byte) ([]byte, error) {
	if len(priv) != PrivateKeySize {
		return nil, ErrInvalidPrivateKey
	}
	sk, _ := btcec.PrivKeyFromBytes(priv)
	defer sk.Zero()

	h := TaggedHash(messageTag, msg)
	sig, err := schnorr.Sign(sk, h[:])
	if err != nil {
		return nil, err
	}
	return sig.Serialize(), nil
}

// Verify checks a BIP-340 signature made by Sign.
func Verify(pub domain.PublicKey, msg, sig []byte) error {
	pk, err := ParsePublicKey(pub)
	if err != nil {
		return err
	}
	s, err := schnorr.ParseSignature(sig)
	if err != nil {
		return ErrBadSignature
	}
	h := TaggedHash(messageTag, msg)
	if !s.Verify(h[:], pk) {
		return ErrBadSignature
	}
	return nil
}
