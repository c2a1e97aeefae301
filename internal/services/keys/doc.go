// Package keys manages the local staking and signing keys.
//
// It enforces the passphrase and naming policies, generates secp256k1 key
// pairs and persists them through domain.KeyStore. Operators use the keys to
// fill the signing_key and redeeming_key arguments of staker contracts and
// to sign attestations with BIP-340 signatures.
package keys
