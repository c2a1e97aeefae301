package interfaces

import (
	"encoding/json"

	domaintypes "stakeplug/internal/domain/types"
)

// KeyService creates and uses the local staking and signing keys.
type KeyService interface {
	GenerateKey(passphrase string, name domaintypes.KeyName) (domaintypes.KeyInfo, error)
	PublicKey(name domaintypes.KeyName) (domaintypes.PublicKey, error)
	FingerprintKey(name domaintypes.KeyName) (domaintypes.Fingerprint, error)
	ListKeys() ([]domaintypes.KeyInfo, error)
	Sign(passphrase string, name domaintypes.KeyName, msg []byte) ([]byte, error)
	Verify(pub domaintypes.PublicKey, msg, sig []byte) error
}

// ContractService instantiates registered plugins into compiled contracts.
type ContractService interface {
	Validate(plugin domaintypes.PluginName, args json.RawMessage) error
	CreateContract(
		plugin domaintypes.PluginName,
		args json.RawMessage,
		funds domaintypes.Amount,
	) (domaintypes.ContractRecord, error)
	GetContract(id domaintypes.ContractID) (domaintypes.ContractRecord, error)
	ListContracts() ([]domaintypes.ContractRecord, error)
}
