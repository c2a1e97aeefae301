package app

import (
	"os"

	"stakeplug/internal/domain"
	"stakeplug/internal/hostclient"
	"stakeplug/internal/plugin"
	"stakeplug/internal/services/contracts"
	"stakeplug/internal/services/keys"
	"stakeplug/internal/store"
)

// Wire bundles the stores, services and clients the CLI uses.
type Wire struct {
	Config    Config
	Plugins   *plugin.Registry
	Keys      domain.KeyService
	Contracts domain.ContractService
	Host      domain.HostClient
}

// NewWire creates the home directory and constructs the dependency graph
// from cfg over the given plugin registry.
func NewWire(cfg Config, plugins *plugin.Registry) (*Wire, error) {
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	keyStore := store.NewKeyFileStore(cfg.Home)
	contractStore := store.NewContractFileStore(cfg.Home)

	return &Wire{
		Config:    cfg,
		Plugins:   plugins,
		Keys:      keys.New(keyStore),
		Contracts: contracts.New(plugins, contractStore),
		Host:      hostclient.NewHTTP(cfg.HostURL, cfg.HTTPTimeout),
	}, nil
}
