package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"stakeplug/internal/crypto"
	"stakeplug/internal/domain"
)

const (
	keysDir   = "keys"
	keysIndex = "keys.json"
)

var (
	// ErrKeyNotFound is returned when no key is stored under a name.
	ErrKeyNotFound = errors.New("key not found")
	// ErrInvalidKeyName is returned for names that cannot be used as file names.
	ErrInvalidKeyName = errors.New("invalid key name")
)

// KeyFileStore persists named key pairs under dir. Private keys live in
// keys/<name>.enc, sealed with a passphrase; public info lives in keys.json.
type KeyFileStore struct {
	dir string
	kdf scryptParams
	mu  sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore rooted at dir.
func NewKeyFileStore(dir string) *KeyFileStore {
	return &KeyFileStore{dir: dir, kdf: defaultScryptParams()}
}

// SaveKey seals priv and records info. An existing key of the same name is
// replaced.
func (s *KeyFileStore) SaveKey(passphrase string, info domain.KeyInfo, priv []byte) error {
	path, err := s.keyPath(info.Name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := seal(passphrase, priv, info.PublicKey.Slice(), s.kdf)
	if err != nil {
		return fmt.Errorf("seal %s: %w", info.Name, err)
	}
	if err := writeFile(path, blob, 0o600); err != nil {
		return err
	}

	index, err := s.readIndex()
	if err != nil {
		return err
	}
	index[info.Name] = info
	return writeJSON(filepath.Join(s.dir, keysIndex), index, 0o600)
}

// LoadPrivateKey opens the sealed key stored under name. The caller should
// crypto.Wipe the result when done.
func (s *KeyFileStore) LoadPrivateKey(passphrase string, name domain.KeyName) ([]byte, error) {
	path, err := s.keyPath(name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.readIndex()
	if err != nil {
		return nil, err
	}
	info, ok := index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, name)
	}
	blob, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, name)
	}

	priv, err := open(passphrase, blob, info.PublicKey.Slice())
	if err != nil {
		return nil, err
	}
	if pub, err := crypto.PublicKeyFromPrivate(priv); err != nil || pub != info.PublicKey {
		crypto.Wipe(priv)
		return nil, fmt.Errorf("%s: stored key does not match its public key", name)
	}
	return priv, nil
}

// LoadKeyInfo returns the public info for name, if stored.
func (s *KeyFileStore) LoadKeyInfo(name domain.KeyName) (domain.KeyInfo, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.readIndex()
	if err != nil {
		return domain.KeyInfo{}, false, err
	}
	info, ok := index[name]
	return info, ok, nil
}

// ListKeys returns every stored key, sorted by name.
func (s *KeyFileStore) ListKeys() ([]domain.KeyInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.readIndex()
	if err != nil {
		return nil, err
	}
	out := make([]domain.KeyInfo, 0, len(index))
	for _, info := range index {
		out = append(out, info)
	}
	slices.SortFunc(out, func(a, b domain.KeyInfo) int { return strings.Compare(a.Name.String(), b.Name.String()) })
	return out, nil
}

func (s *KeyFileStore) readIndex() (map[domain.KeyName]domain.KeyInfo, error) {
	index := make(map[domain.KeyName]domain.KeyInfo)
	if _, err := readJSON(filepath.Join(s.dir, keysIndex), &index); err != nil {
		return nil, fmt.Errorf("read key index: %w", err)
	}
	return index, nil
}

func (s *KeyFileStore) keyPath(name domain.KeyName) (string, error) {
	n := name.String()
	if n == "" || strings.HasPrefix(n, ".") || strings.ContainsAny(n, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKeyName, n)
	}
	return filepath.Join(s.dir, keysDir, n+".enc"), nil
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)
