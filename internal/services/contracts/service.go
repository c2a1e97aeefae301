package contracts

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"stakeplug/internal/contract"
	"stakeplug/internal/crypto"
	"stakeplug/internal/domain"
	"stakeplug/internal/plugin"
)

var (
	// ErrZeroFunds is returned when creating a contract with no funds.
	ErrZeroFunds = errors.New("contract funds must be greater than zero")
	// ErrContractNotFound is returned when no record has the requested id.
	ErrContractNotFound = errors.New("contract not found")
)

var contractTag = []byte("stakeplug/contract")

// Service compiles plugin arguments into contract records.
type Service struct {
	plugins *plugin.Registry
	store   domain.ContractStore
	now     func() time.Time
}

// New returns a contract service over the given registry and store.
func New(plugins *plugin.Registry, s domain.ContractStore) *Service {
	return &Service{plugins: plugins, store: s, now: time.Now}
}

// Validate checks args against the plugin's schema and then decodes them,
// so semantic checks such as key validity also run.
func (s *Service) Validate(name domain.PluginName, args json.RawMessage) error {
	_, err := s.instantiate(name, args)
	return err
}

// CreateContract compiles args with funds and stores the record. Creating
// the same contract twice yields the same id.
func (s *Service) CreateContract(
	name domain.PluginName,
	args json.RawMessage,
	funds domain.Amount,
) (domain.ContractRecord, error) {
	if funds == 0 {
		return domain.ContractRecord{}, ErrZeroFunds
	}
	c, err := s.instantiate(name, args)
	if err != nil {
		return domain.ContractRecord{}, err
	}
	compiled, err := contract.Compile(c, contract.NewContext(funds))
	if err != nil {
		return domain.ContractRecord{}, fmt.Errorf("compile %s: %w", name, err)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, args); err != nil {
		return domain.ContractRecord{}, err
	}
	rec := domain.ContractRecord{
		ID:        contractID(name, compact.Bytes(), funds),
		Plugin:    name,
		Args:      json.RawMessage(compact.Bytes()),
		Funds:     funds,
		Compiled:  *compiled,
		CreatedAt: s.now().Unix(),
	}
	if err := s.store.SaveContract(rec); err != nil {
		return domain.ContractRecord{}, err
	}
	return rec, nil
}

// GetContract returns the record with id.
func (s *Service) GetContract(id domain.ContractID) (domain.ContractRecord, error) {
	rec, ok, err := s.store.LoadContract(id)
	if err != nil {
		return domain.ContractRecord{}, err
	}
	if !ok {
		return domain.ContractRecord{}, fmt.Errorf("%w: %s", ErrContractNotFound, id)
	}
	return rec, nil
}

// ListContracts returns every stored record.
func (s *Service) ListContracts() ([]domain.ContractRecord, error) {
	return s.store.ListContracts()
}

func (s *Service) instantiate(name domain.PluginName, args json.RawMessage) (contract.Contract, error) {
	reg, err := s.plugins.Lookup(name)
	if err != nil {
		return nil, err
	}
	if err := reg.Validate(args); err != nil {
		return nil, err
	}
	c, err := reg.Create(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", plugin.ErrInvalidArguments, err)
	}
	return c, nil
}

// contractID commits to the plugin, its canonical arguments and the funds.
func contractID(name domain.PluginName, args []byte, funds domain.Amount) domain.ContractID {
	var amt [8]byte
	binary.BigEndian.PutUint64(amt[:], uint64(funds))
	h := crypto.TaggedHash(contractTag, []byte(name), []byte{0}, args, amt[:])
	return domain.ContractID(hex.EncodeToString(h[:16]))
}

// Compile-time assertion that Service implements domain.ContractService.
var _ domain.ContractService = (*Service)(nil)
