package app

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the name of the config file inside the home directory.
const ConfigFile = "config.toml"

// Defaults for values nobody set.
const (
	DefaultHostURL     = "http://127.0.0.1:8080"
	DefaultListenAddr  = ":8080"
	DefaultHTTPTimeout = 10 * time.Second
)

// ErrInvalidConfig is returned for config that parses but cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds runtime wiring options.
type Config struct {
	Home        string        `env:"STAKEPLUG_HOME"`         // config directory, e.g. $HOME/.stakeplug
	HostURL     string        `env:"STAKEPLUG_HOST_URL"`     // plugin host base URL
	ListenAddr  string        `env:"STAKEPLUG_LISTEN_ADDR"`  // plugin host listen address
	HTTPTimeout time.Duration `env:"STAKEPLUG_HTTP_TIMEOUT"` // per-request timeout for the host client
}

// fileConfig is the config.toml layout. Home is not settable from the file
// that lives in it.
type fileConfig struct {
	HostURL     string `toml:"host_url"`
	ListenAddr  string `toml:"listen_addr"`
	HTTPTimeout string `toml:"http_timeout"`
}

// Load resolves configuration from every layer. Non-zero fields of flags
// take precedence over everything else.
func Load(flags Config) (Config, error) {
	return load(flags, nil)
}

// load is Load with an explicit environment; nil means the process environment.
func load(flags Config, environ map[string]string) (Config, error) {
	var fromEnv Config
	if err := env.ParseWithOptions(&fromEnv, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg := Config{
		HostURL:     DefaultHostURL,
		ListenAddr:  DefaultListenAddr,
		HTTPTimeout: DefaultHTTPTimeout,
	}
	cfg.merge(Config{Home: fromEnv.Home})
	cfg.merge(Config{Home: flags.Home})
	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.Home = filepath.Join(dir, ".stakeplug")
	}

	path := filepath.Join(cfg.Home, ConfigFile)
	fromFile, err := readConfigFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg.merge(fromFile)
	cfg.merge(fromEnv)
	cfg.merge(flags)

	if cfg.HTTPTimeout <= 0 {
		return Config{}, fmt.Errorf("%w: http timeout must be positive, got %s", ErrInvalidConfig, cfg.HTTPTimeout)
	}
	return cfg, nil
}

// readConfigFile strictly decodes path. A missing file yields a zero Config.
func readConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}

	var fc fileConfig
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	out := Config{HostURL: fc.HostURL, ListenAddr: fc.ListenAddr}
	if fc.HTTPTimeout != "" {
		d, err := time.ParseDuration(fc.HTTPTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s: http_timeout: %v", ErrInvalidConfig, path, err)
		}
		out.HTTPTimeout = d
	}
	return out, nil
}

// merge overwrites c with the non-zero fields of o.
func (c *Config) merge(o Config) {
	if o.Home != "" {
		c.Home = o.Home
	}
	if o.HostURL != "" {
		c.HostURL = o.HostURL
	}
	if o.ListenAddr != "" {
		c.ListenAddr = o.ListenAddr
	}
	if o.HTTPTimeout != 0 {
		c.HTTPTimeout = o.HTTPTimeout
	}
}
