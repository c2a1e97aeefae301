package types

// KeyName is the local label a key pair is stored under.
type KeyName string

// String returns the string form of the key name.
func (n KeyName) String() string { return string(n) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// PluginName identifies a registered contract plugin.
type PluginName string

// String returns the string form of the plugin name.
func (n PluginName) String() string { return string(n) }

// ContractID identifies a compiled contract instance.
type ContractID string

// String returns the string form of the contract identifier.
func (id ContractID) String() string { return string(id) }
