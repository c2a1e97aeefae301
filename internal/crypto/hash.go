package crypto

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// TaggedHash returns the BIP-340 tagged hash sha256(sha256(tag)||sha256(tag)||msgs...).
func TaggedHash(tag []byte, msgs ...[]byte) [32]byte {
	return *chainhash.TaggedHash(tag, msgs...)
}
