package hostclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"stakeplug/internal/domain"
)

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 4 << 10

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method  string
	Path    string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("host %s %s: %d %s", e.Method, e.Path, e.Code, http.StatusText(e.Code))
	}
	return fmt.Sprintf("host %s %s: %d: %s", e.Method, e.Path, e.Code, e.Message)
}

// IsNotFound reports whether err is a 404 from the host.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// HTTP talks to a plugin host at Base.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the host at base with the given request timeout.
func NewHTTP(base string, timeout time.Duration) *HTTP {
	return &HTTP{
		Base: strings.TrimRight(base, "/"),
		HTTP: &http.Client{Timeout: timeout},
	}
}

func (c *HTTP) ListPlugins(ctx context.Context) ([]domain.Manifest, error) {
	var out []domain.Manifest
	return out, c.getJSON(ctx, "/plugins", &out)
}

func (c *HTTP) FetchManifest(ctx context.Context, name domain.PluginName) (domain.Manifest, error) {
	var out domain.Manifest
	if err := c.getJSON(ctx, pluginPath(name, ""), &out); err != nil {
		return domain.Manifest{}, err
	}
	return out, nil
}

func (c *HTTP) FetchSchema(ctx context.Context, name domain.PluginName) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.getJSON(ctx, pluginPath(name, "/schema"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchLogo returns the logo bytes and their content type.
func (c *HTTP) FetchLogo(ctx context.Context, name domain.PluginName) ([]byte, string, error) {
	resp, err := c.do(ctx, http.MethodGet, pluginPath(name, "/logo"), nil)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return b, resp.Header.Get("Content-Type"), nil
}

func (c *HTTP) CreateContract(
	ctx context.Context,
	name domain.PluginName,
	args json.RawMessage,
	funds domain.Amount,
) (domain.ContractRecord, error) {
	path := pluginPath(name, "/contracts") + "?funds=" + strconv.FormatUint(uint64(funds), 10)
	resp, err := c.do(ctx, http.MethodPost, path, bytes.NewReader(args))
	if err != nil {
		return domain.ContractRecord{}, err
	}
	defer resp.Body.Close()
	var rec domain.ContractRecord
	return rec, json.NewDecoder(resp.Body).Decode(&rec)
}

func (c *HTTP) FetchContract(ctx context.Context, id domain.ContractID) (domain.ContractRecord, error) {
	var rec domain.ContractRecord
	if err := c.getJSON(ctx, "/contracts/"+url.PathEscape(id.String()), &rec); err != nil {
		return domain.ContractRecord{}, err
	}
	return rec, nil
}

func (c *HTTP) ListContracts(ctx context.Context) ([]domain.ContractRecord, error) {
	var out []domain.ContractRecord
	return out, c.getJSON(ctx, "/contracts", &out)
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}

// do sends a request and turns non-2xx responses into a *StatusError.
func (c *HTTP) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		defer resp.Body.Close()
		se := &StatusError{Method: method, Path: path, Code: resp.StatusCode}
		var msg struct {
			Error string `json:"error"`
		}
		if b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)); err == nil {
			if json.Unmarshal(b, &msg) == nil {
				se.Message = msg.Error
			}
		}
		return nil, se
	}
	return resp, nil
}

func pluginPath(name domain.PluginName, suffix string) string {
	return "/plugins/" + url.PathEscape(name.String()) + suffix
}

var _ domain.HostClient = (*HTTP)(nil)
