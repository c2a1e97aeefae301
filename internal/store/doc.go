// Package store provides persistence for keys and compiled contracts.
//
// File-backed stores serialise JSON under the configured home directory and
// replace files atomically (temp file then rename). Private keys are sealed
// with a passphrase before they touch disk. All stores are safe for
// concurrent use via internal locking.
//
// The package includes:
//   - Named secp256k1 key pairs (KeyFileStore)
//   - Contract records on disk (ContractFileStore)
//   - Contract records in memory, for the plugin host (MemoryContractStore)
package store
