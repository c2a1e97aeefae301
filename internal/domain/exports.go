package domain

import (
	interfaces "stakeplug/internal/domain/interfaces"
	types "stakeplug/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	KeyName        = types.KeyName
	Fingerprint    = types.Fingerprint
	PluginName     = types.PluginName
	ContractID     = types.ContractID
	PublicKey      = types.PublicKey
	KeyInfo        = types.KeyInfo
	Amount         = types.Amount
	RelTimeLock    = types.RelTimeLock
	Compiled       = types.Compiled
	Branch         = types.Branch
	Transition     = types.Transition
	Finisher       = types.Finisher
	Template       = types.Template
	Output         = types.Output
	ContractRecord = types.ContractRecord
	Manifest       = types.Manifest
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyStore        = interfaces.KeyStore
	ContractStore   = interfaces.ContractStore
	KeyService      = interfaces.KeyService
	ContractService = interfaces.ContractService
	HostClient      = interfaces.HostClient
)

// Constructors and errors re-exported for callers that only import domain.
var (
	RelHeight          = types.RelHeight
	RelTime            = types.RelTime
	ErrTimeLockVariant = types.ErrTimeLockVariant
	ErrTimeLockZero    = types.ErrTimeLockZero
)

// PublicKeySize is the length of an x-only public key.
const PublicKeySize = types.PublicKeySize
