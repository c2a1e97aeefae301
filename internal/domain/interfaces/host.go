package interfaces

import (
	"context"
	"encoding/json"

	domaintypes "stakeplug/internal/domain/types"
)

// HostClient is how the CLI talks to a remote plugin host, all with context.
type HostClient interface {
	ListPlugins(ctx context.Context) ([]domaintypes.Manifest, error)
	FetchManifest(ctx context.Context, name domaintypes.PluginName) (domaintypes.Manifest, error)
	FetchSchema(ctx context.Context, name domaintypes.PluginName) (json.RawMessage, error)
	FetchLogo(ctx context.Context, name domaintypes.PluginName) ([]byte, string, error)
	CreateContract(
		ctx context.Context,
		name domaintypes.PluginName,
		args json.RawMessage,
		funds domaintypes.Amount,
	) (domaintypes.ContractRecord, error)
	FetchContract(ctx context.Context, id domaintypes.ContractID) (domaintypes.ContractRecord, error)
	ListContracts(ctx context.Context) ([]domaintypes.ContractRecord, error)
}
