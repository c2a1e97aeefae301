package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stakeplug/internal/crypto"
	"stakeplug/internal/domain"
)

func TestGenerateKey_PublicKeyMatchesPrivate(t *testing.T) {
	priv, pub, err := crypto.GenerateKey()
	require.NoError(t, err)
	require.Len(t, priv, crypto.PrivateKeySize)
	require.NoError(t, crypto.ValidatePublicKey(pub))

	derived, err := crypto.PublicKeyFromPrivate(priv)
	require.NoError(t, err)
	require.Equal(t, pub, derived)
}

func TestSignVerify(t *testing.T) {
	priv, pub, err := crypto.GenerateKey()
	require.NoError(t, err)

	msg := []byte("block 840000 attestation")
	sig, err := crypto.Sign(priv, msg)
	require.NoError(t, err)
	require.Len(t, sig, 64)

	require.NoError(t, crypto.Verify(pub, msg, sig))
	require.ErrorIs(t, crypto.Verify(pub, []byte("other"), sig), crypto.ErrBadSignature)

	_, otherPub, err := crypto.GenerateKey()
	require.NoError(t, err)
	require.ErrorIs(t, crypto.Verify(otherPub, msg, sig), crypto.ErrBadSignature)
}

func TestValidatePublicKey_RejectsOffCurve(t *testing.T) {
	// x = p (field prime) is not a valid x coordinate.
	var pub domain.PublicKey
	for i := range pub {
		pub[i] = 0xff
	}
	require.ErrorIs(t, crypto.ValidatePublicKey(pub), crypto.ErrInvalidPublicKey)
}

func TestSign_RejectsShortKey(t *testing.T) {
	_, err := crypto.Sign([]byte{1, 2, 3}, []byte("x"))
	require.ErrorIs(t, err, crypto.ErrInvalidPrivateKey)
}

func TestFingerprint_Stable(t *testing.T) {
	var pub domain.PublicKey
	pub[0] = 1
	fp := crypto.Fingerprint(pub)
	require.Len(t, fp.String(), 20)
	require.Equal(t, fp, crypto.Fingerprint(pub))
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3}
	crypto.Wipe(b)
	require.Equal(t, []byte{0, 0, 0}, b)
}
