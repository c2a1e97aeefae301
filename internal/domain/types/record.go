package types

import "encoding/json"

// ContractRecord is a compiled contract instance together with the inputs
// that produced it.
type ContractRecord struct {
	ID        ContractID      `json:"id"`
	Plugin    PluginName      `json:"plugin"`
	Args      json.RawMessage `json:"args"`
	Funds     Amount          `json:"funds"`
	Compiled  Compiled        `json:"compiled"`
	CreatedAt int64           `json:"created_at"`
}

// Manifest describes a registered plugin to hosts and users.
type Manifest struct {
	Name        PluginName `json:"name"`
	DisplayName string     `json:"display_name"`
	Description string     `json:"description,omitempty"`
	Logo        string     `json:"logo"`
}
