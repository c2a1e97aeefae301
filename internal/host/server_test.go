package host_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"stakeplug/internal/crypto"
	"stakeplug/internal/domain"
	"stakeplug/internal/host"
	"stakeplug/internal/plugin"
	_ "stakeplug/internal/plugins/bondedstaker"
	"stakeplug/internal/services/contracts"
	"stakeplug/internal/store"
)

func newServer(t *testing.T) (http.Handler, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	cs := contracts.New(plugin.Default, store.NewMemoryContractStore())
	return host.New(plugin.Default, cs, log.New(&logs, "", 0)).Handler(), &logs
}

func serve(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, body))
	return rec
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func stakerArgs(t *testing.T) string {
	t.Helper()
	_, signing, err := crypto.GenerateKey()
	require.NoError(t, err)
	_, redeeming, err := crypto.GenerateKey()
	require.NoError(t, err)
	return fmt.Sprintf(`{"timeout":{"RT":10},"signing_key":"%s","redeeming_key":"%s"}`, signing, redeeming)
}

func TestHealthz(t *testing.T) {
	h, logs := newServer(t)
	rec := serve(h, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	require.Contains(t, logs.String(), "GET /healthz")
	require.Contains(t, logs.String(), " 200 ")
}

func TestPlugins(t *testing.T) {
	h, _ := newServer(t)

	rec := serve(h, http.MethodGet, "/plugins", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var ms []domain.Manifest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ms))
	require.NotEmpty(t, ms)

	rec = serve(h, http.MethodGet, "/plugins/bonded-staker", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var m domain.Manifest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	require.Equal(t, "logo.png", m.Logo)

	rec = serve(h, http.MethodGet, "/plugins/bonded-staker/schema", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/schema+json", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), `"signing_key"`)

	rec = serve(h, http.MethodGet, "/plugins/bonded-staker/logo", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	require.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	rec = serve(h, http.MethodGet, "/plugins/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, errorOf(t, rec), "unknown plugin")
}

func TestCreateAndFetchContract(t *testing.T) {
	h, _ := newServer(t)

	rec := serve(h, http.MethodPost, "/plugins/bonded-staker/contracts?funds=100000", strings.NewReader(stakerArgs(t)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created domain.ContractRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, "/contracts/"+created.ID.String(), rec.Header().Get("Location"))
	require.Equal(t, domain.Amount(100000), created.Funds)

	rec = serve(h, http.MethodGet, "/contracts/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.ContractRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, created.Compiled.Script, got.Compiled.Script)

	rec = serve(h, http.MethodGet, "/contracts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []domain.ContractRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 1)
}

func TestErrorStatuses(t *testing.T) {
	h, _ := newServer(t)
	args := stakerArgs(t)

	cases := []struct {
		name   string
		method string
		target string
		body   string
		status int
	}{
		{"empty list", http.MethodGet, "/contracts", "", http.StatusOK},
		{"missing funds", http.MethodPost, "/plugins/bonded-staker/contracts", args, http.StatusBadRequest},
		{"zero funds", http.MethodPost, "/plugins/bonded-staker/contracts?funds=0", args, http.StatusBadRequest},
		{"bad args", http.MethodPost, "/plugins/bonded-staker/contracts?funds=5", `{"timeout":{"RH":0}}`, http.StatusBadRequest},
		{"not json", http.MethodPost, "/plugins/bonded-staker/contracts?funds=5", `nope`, http.StatusBadRequest},
		{"unknown plugin", http.MethodPost, "/plugins/nope/contracts?funds=5", args, http.StatusNotFound},
		{"unknown contract", http.MethodGet, "/contracts/abc", "", http.StatusNotFound},
		{"unknown route", http.MethodGet, "/nothing", "", http.StatusNotFound},
		{"wrong method", http.MethodDelete, "/plugins", "", http.StatusMethodNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(h, tc.method, tc.target, strings.NewReader(tc.body))
			require.Equal(t, tc.status, rec.Code, rec.Body.String())
			if tc.status != http.StatusOK {
				require.NotEmpty(t, errorOf(t, rec))
			}
		})
	}
}
