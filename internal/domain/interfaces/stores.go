package interfaces

import domaintypes "stakeplug/internal/domain/types"

// KeyStore persists named secp256k1 key pairs. Private halves are sealed
// with a passphrase; public halves are readable without one.
type KeyStore interface {
	SaveKey(passphrase string, info domaintypes.KeyInfo, priv []byte) error
	LoadPrivateKey(passphrase string, name domaintypes.KeyName) ([]byte, error)
	LoadKeyInfo(name domaintypes.KeyName) (domaintypes.KeyInfo, bool, error)
	ListKeys() ([]domaintypes.KeyInfo, error)
}

// ContractStore keeps compiled contract records by id.
type ContractStore interface {
	SaveContract(record domaintypes.ContractRecord) error
	LoadContract(id domaintypes.ContractID) (domaintypes.ContractRecord, bool, error)
	ListContracts() ([]domaintypes.ContractRecord, error)
}
