package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stakeplug/internal/plugin"
)

func writeConfig(t *testing.T, home, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(home, ConfigFile), []byte(body), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	cfg, err := load(Config{Home: home}, map[string]string{})
	require.NoError(t, err)
	require.Equal(t, Config{
		Home:        home,
		HostURL:     DefaultHostURL,
		ListenAddr:  DefaultListenAddr,
		HTTPTimeout: DefaultHTTPTimeout,
	}, cfg)
}

func TestLoad_Layering(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `
host_url = "http://file:1"
listen_addr = ":9000"
http_timeout = "3s"
`)

	cfg, err := load(Config{}, map[string]string{"STAKEPLUG_HOME": home})
	require.NoError(t, err)
	require.Equal(t, "http://file:1", cfg.HostURL)
	require.Equal(t, ":9000", cfg.ListenAddr)
	require.Equal(t, 3*time.Second, cfg.HTTPTimeout)

	environ := map[string]string{
		"STAKEPLUG_HOME":         home,
		"STAKEPLUG_HOST_URL":     "http://env:2",
		"STAKEPLUG_HTTP_TIMEOUT": "7s",
	}
	cfg, err = load(Config{}, environ)
	require.NoError(t, err)
	require.Equal(t, "http://env:2", cfg.HostURL)
	require.Equal(t, ":9000", cfg.ListenAddr)
	require.Equal(t, 7*time.Second, cfg.HTTPTimeout)

	cfg, err = load(Config{HostURL: "http://flag:3"}, environ)
	require.NoError(t, err)
	require.Equal(t, "http://flag:3", cfg.HostURL)
}

func TestLoad_FlagHomeWinsOverEnv(t *testing.T) {
	flagHome, envHome := t.TempDir(), t.TempDir()
	writeConfig(t, envHome, `host_url = "http://wrong"`)

	cfg, err := load(Config{Home: flagHome}, map[string]string{"STAKEPLUG_HOME": envHome})
	require.NoError(t, err)
	require.Equal(t, flagHome, cfg.Home)
	require.Equal(t, DefaultHostURL, cfg.HostURL)
}

func TestLoad_Rejects(t *testing.T) {
	home := t.TempDir()

	writeConfig(t, home, `hosturl = "typo"`)
	_, err := load(Config{Home: home}, map[string]string{})
	require.ErrorIs(t, err, ErrInvalidConfig)

	writeConfig(t, home, `http_timeout = "soon"`)
	_, err = load(Config{Home: home}, map[string]string{})
	require.ErrorIs(t, err, ErrInvalidConfig)

	writeConfig(t, home, `http_timeout = "-1s"`)
	_, err = load(Config{Home: home}, map[string]string{})
	require.ErrorIs(t, err, ErrInvalidConfig)

	require.NoError(t, os.Remove(filepath.Join(home, ConfigFile)))
	_, err = load(Config{Home: home}, map[string]string{"STAKEPLUG_HTTP_TIMEOUT": "later"})
	require.Error(t, err)
}

func TestNewWire(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested", "home")
	w, err := NewWire(Config{Home: home, HostURL: DefaultHostURL, HTTPTimeout: time.Second}, plugin.NewRegistry())
	require.NoError(t, err)
	require.DirExists(t, home)
	require.NotNil(t, w.Keys)
	require.NotNil(t, w.Contracts)
	require.NotNil(t, w.Host)
}
