// Package crypto exposes the minimal primitives used by stakeplug.
//
// Contents
//
//   - secp256k1 key generation and x-only public key parsing (GenerateKey,
//     ParsePublicKey, ValidatePublicKey)
//   - BIP-340 Schnorr signing and verification over tagged message hashes
//     (Sign, Verify)
//   - Tagged hashing for template and contract identifiers (TaggedHash)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Public keys are returned as domain.PublicKey (x-only, 32 bytes). Private
// keys are raw 32-byte scalars; callers should Wipe them once persisted.
package crypto
