package contracts_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"stakeplug/internal/crypto"
	"stakeplug/internal/domain"
	"stakeplug/internal/plugin"
	_ "stakeplug/internal/plugins/bondedstaker"
	"stakeplug/internal/services/contracts"
	"stakeplug/internal/store"
)

func stakerArgs(t *testing.T) json.RawMessage {
	t.Helper()
	_, signing, err := crypto.GenerateKey()
	require.NoError(t, err)
	_, redeeming, err := crypto.GenerateKey()
	require.NoError(t, err)
	return json.RawMessage(fmt.Sprintf(`{
		"timeout": {"RH": 144},
		"signing_key": "%s",
		"redeeming_key": "%s"
	}`, signing, redeeming))
}

func TestCreateContract(t *testing.T) {
	svc := contracts.New(plugin.Default, store.NewContractFileStore(t.TempDir()))
	args := stakerArgs(t)

	rec, err := svc.CreateContract("bonded-staker", args, 250_000)
	require.NoError(t, err)
	require.Len(t, rec.ID, 32)
	require.Equal(t, domain.PluginName("bonded-staker"), rec.Plugin)
	require.Equal(t, domain.Amount(250_000), rec.Compiled.Amount)
	require.Equal(t, "staker[operational]", rec.Compiled.Name)
	require.NotContains(t, string(rec.Args), "\n")

	again, err := svc.CreateContract("bonded-staker", args, 250_000)
	require.NoError(t, err)
	require.Equal(t, rec.ID, again.ID)

	other, err := svc.CreateContract("bonded-staker", args, 250_001)
	require.NoError(t, err)
	require.NotEqual(t, rec.ID, other.ID)

	got, err := svc.GetContract(rec.ID)
	require.NoError(t, err)
	require.Equal(t, rec.Compiled.Policy, got.Compiled.Policy)

	all, err := svc.ListContracts()
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestCreateContract_Errors(t *testing.T) {
	svc := contracts.New(plugin.Default, store.NewMemoryContractStore())

	_, err := svc.CreateContract("bonded-staker", stakerArgs(t), 0)
	require.ErrorIs(t, err, contracts.ErrZeroFunds)

	_, err = svc.CreateContract("nope", stakerArgs(t), 1)
	require.ErrorIs(t, err, plugin.ErrUnknownPlugin)

	_, err = svc.CreateContract("bonded-staker", json.RawMessage(`{"timeout":{"RH":1}}`), 1)
	require.ErrorIs(t, err, plugin.ErrInvalidArguments)

	_, err = svc.GetContract("missing")
	require.ErrorIs(t, err, contracts.ErrContractNotFound)
}

func TestValidate_RunsDecoderChecks(t *testing.T) {
	svc := contracts.New(plugin.Default, store.NewMemoryContractStore())
	require.NoError(t, svc.Validate("bonded-staker", stakerArgs(t)))

	// Matches the schema pattern but is not a curve point.
	offCurve := json.RawMessage(`{"timeout":{"RH":1},` +
		`"signing_key":"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",` +
		`"redeeming_key":"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"}`)
	err := svc.Validate("bonded-staker", offCurve)
	require.ErrorIs(t, err, plugin.ErrInvalidArguments)
	require.ErrorIs(t, err, crypto.ErrInvalidPublicKey)
}
