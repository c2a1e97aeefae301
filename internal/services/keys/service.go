package keys

import (
	"errors"
	"fmt"
	"regexp"
	"time"
	"unicode"

	"stakeplug/internal/crypto"
	"stakeplug/internal/domain"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
	// ErrInvalidName is returned for key names outside [a-z0-9][a-z0-9_-]*.
	ErrInvalidName = errors.New("key name must start with a letter or digit and use only a-z, 0-9, _ and -")
	// ErrKeyExists is returned when generating a key under a name already in use.
	ErrKeyExists = errors.New("key already exists")
	// ErrKeyNotFound is returned when no key is stored under a name.
	ErrKeyNotFound = errors.New("key not found")
)

var nameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Service manages key creation and use on top of a backing store.
type Service struct {
	store domain.KeyStore
	now   func() time.Time
}

// New returns a key service backed by the given store.
func New(s domain.KeyStore) *Service { return &Service{store: s, now: time.Now} }

// GenerateKey creates a key pair, seals it with the passphrase under name,
// and returns its public info.
func (s *Service) GenerateKey(passphrase string, name domain.KeyName) (domain.KeyInfo, error) {
	if !nameRe.MatchString(name.String()) {
		return domain.KeyInfo{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if !isSecurePassphrase(passphrase) {
		return domain.KeyInfo{}, ErrWeakPassphrase
	}
	if _, ok, err := s.store.LoadKeyInfo(name); err != nil {
		return domain.KeyInfo{}, err
	} else if ok {
		return domain.KeyInfo{}, fmt.Errorf("%w: %s", ErrKeyExists, name)
	}

	priv, pub, err := crypto.GenerateKey()
	if err != nil {
		return domain.KeyInfo{}, err
	}
	defer crypto.Wipe(priv)

	info := domain.KeyInfo{
		Name:        name,
		PublicKey:   pub,
		Fingerprint: crypto.Fingerprint(pub),
		CreatedAt:   s.now().Unix(),
	}
	if err := s.store.SaveKey(passphrase, info, priv); err != nil {
		return domain.KeyInfo{}, err
	}
	return info, nil
}

// PublicKey returns the public key stored under name.
func (s *Service) PublicKey(name domain.KeyName) (domain.PublicKey, error) {
	info, err := s.info(name)
	if err != nil {
		return domain.PublicKey{}, err
	}
	return info.PublicKey, nil
}

// FingerprintKey returns the short fingerprint of the key stored under name.
func (s *Service) FingerprintKey(name domain.KeyName) (domain.Fingerprint, error) {
	info, err := s.info(name)
	if err != nil {
		return "", err
	}
	return info.Fingerprint, nil
}

// ListKeys returns every stored key.
func (s *Service) ListKeys() ([]domain.KeyInfo, error) {
	return s.store.ListKeys()
}

// Sign signs msg with the key stored under name.
func (s *Service) Sign(passphrase string, name domain.KeyName, msg []byte) ([]byte, error) {
	if _, err := s.info(name); err != nil {
		return nil, err
	}
	priv, err := s.store.LoadPrivateKey(passphrase, name)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(priv)
	return crypto.Sign(priv, msg)
}

// Verify checks a signature made by Sign.
func (s *Service) Verify(pub domain.PublicKey, msg, sig []byte) error {
	return crypto.Verify(pub, msg, sig)
}

func (s *Service) info(name domain.KeyName) (domain.KeyInfo, error) {
	info, ok, err := s.store.LoadKeyInfo(name)
	if err != nil {
		return domain.KeyInfo{}, err
	}
	if !ok {
		return domain.KeyInfo{}, fmt.Errorf("%w: %s", ErrKeyNotFound, name)
	}
	return info, nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
