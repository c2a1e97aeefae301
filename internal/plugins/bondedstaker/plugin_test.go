package bondedstaker_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"stakeplug/internal/contract"
	"stakeplug/internal/crypto"
	"stakeplug/internal/domain"
	"stakeplug/internal/plugin"
	"stakeplug/internal/plugins/bondedstaker"
)

func stakerArgs(t *testing.T, timeout string) []byte {
	t.Helper()
	_, signing, err := crypto.GenerateKey()
	require.NoError(t, err)
	_, redeeming, err := crypto.GenerateKey()
	require.NoError(t, err)
	return []byte(fmt.Sprintf(`{"timeout":%s,"signing_key":"%s","redeeming_key":"%s"}`,
		timeout, signing, redeeming))
}

func TestWrapper_RoundTripMatchesDirectDecode(t *testing.T) {
	for _, timeout := range []string{`{"RH":1}`, `{"RH":65535}`, `{"RT":40}`} {
		raw := stakerArgs(t, timeout)

		var direct bondedstaker.BondedStaker
		require.NoError(t, json.Unmarshal(raw, &direct))

		var w bondedstaker.Wrapper
		require.NoError(t, json.Unmarshal(raw, &w))
		require.Equal(t, direct, w.Unwrap())

		out, err := json.Marshal(w)
		require.NoError(t, err)
		require.JSONEq(t, string(raw), string(out))
		require.Equal(t, direct, bondedstaker.Wrap(direct).Unwrap())
	}
}

func TestWrapper_FailsExactlyLikeDirectDecode(t *testing.T) {
	good := stakerArgs(t, `{"RH":6}`)
	inputs := [][]byte{
		[]byte(`null`),
		[]byte(`[]`),
		[]byte(`{"timeout":{"RH":6}}`),
		stakerArgs(t, `{"RH":0}`),
		stakerArgs(t, `{"RH":1,"RT":1}`),
		append(good[:len(good)-1:len(good)-1], []byte(`,"extra":true}`)...),
		[]byte(`{"timeout":{"RH":6},"signing_key":"xyz","redeeming_key":"xyz"}`),
	}
	for _, in := range inputs {
		var direct bondedstaker.BondedStaker
		derr := json.Unmarshal(in, &direct)

		var w bondedstaker.Wrapper
		werr := json.Unmarshal(in, &w)

		if derr == nil {
			require.NoError(t, werr, string(in))
			require.Equal(t, direct, w.Unwrap())
			continue
		}
		require.Error(t, werr, string(in))
		require.Equal(t, derr.Error(), werr.Error(), string(in))
	}
}

func TestRegistration(t *testing.T) {
	reg, err := plugin.Default.Lookup(bondedstaker.Name)
	require.NoError(t, err)
	require.Equal(t, "logo.png", reg.Manifest().Logo)
	require.Equal(t, "image/png", reg.LogoContentType())

	_, err = png.Decode(bytes.NewReader(reg.Logo()))
	require.NoError(t, err)

	direct, err := contract.SchemaFor[bondedstaker.BondedStaker]()
	require.NoError(t, err)
	want, err := json.Marshal(direct)
	require.NoError(t, err)
	got, err := json.Marshal(reg.Schema())
	require.NoError(t, err)
	require.JSONEq(t, string(want), string(got))

	raw := stakerArgs(t, `{"RH":144}`)
	require.NoError(t, reg.Validate(raw))
	c, err := reg.Create(raw)
	require.NoError(t, err)
	require.IsType(t, bondedstaker.BondedStaker{}, c)

	out, err := contract.Compile(c, contract.NewContext(domain.Amount(1_000_000)))
	require.NoError(t, err)
	require.Equal(t, "staker[operational]", out.Name)
}
