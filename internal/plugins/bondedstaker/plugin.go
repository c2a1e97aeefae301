package bondedstaker

import (
	"embed"
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"

	"stakeplug/internal/contract"
	"stakeplug/internal/contract/stakedsigner"
	"stakeplug/internal/plugin"
)

// Name is the registered plugin name.
const Name = "bonded-staker"

// BondedStaker is a staker whose bond is live.
type BondedStaker = stakedsigner.Staker[stakedsigner.Operational]

// Wrapper decodes a BondedStaker for the plugin host. It is transparent:
// its JSON and schema are those of the staker itself.
type Wrapper struct {
	staker BondedStaker
}

//go:embed logo.png
var assets embed.FS

var manifest = plugin.Manifest{
	Name:        Name,
	DisplayName: "Bonded Staker",
	Description: "Signer bond that is burned if the signing key leaks and redeemed after a timeout.",
	Logo:        "logo.png",
}

func init() {
	plugin.MustRegister[BondedStaker, Wrapper](plugin.Default, manifest, assets)
}

// Wrap returns the wrapper around s.
func Wrap(s BondedStaker) Wrapper { return Wrapper{staker: s} }

// Unwrap returns the wrapped staker.
func (w Wrapper) Unwrap() BondedStaker { return w.staker }

// UnmarshalJSON decodes exactly as BondedStaker does.
func (w *Wrapper) UnmarshalJSON(b []byte) error {
	return w.staker.UnmarshalJSON(b)
}

// MarshalJSON encodes exactly as BondedStaker does.
func (w Wrapper) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.staker)
}

// JSONSchema returns the argument schema of BondedStaker.
func (Wrapper) JSONSchema() (*jsonschema.Schema, error) {
	return contract.SchemaFor[BondedStaker]()
}
