package store

import (
	"cmp"
	"path/filepath"
	"slices"
	"sync"

	"stakeplug/internal/domain"
)

const contractsFile = "contracts.json"

// ContractFileStore persists compiled contract records to disk.
type ContractFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewContractFileStore returns a ContractFileStore rooted at dir.
func NewContractFileStore(dir string) *ContractFileStore {
	return &ContractFileStore{dir: dir}
}

// SaveContract stores or replaces the record with rec.ID.
func (s *ContractFileStore) SaveContract(rec domain.ContractRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, contractsFile)
	m := map[domain.ContractID]domain.ContractRecord{}
	if _, err := readJSON(path, &m); err != nil {
		return err
	}
	m[rec.ID] = rec
	return writeJSON(path, m, 0o600)
}

// LoadContract retrieves the record for id.
func (s *ContractFileStore) LoadContract(id domain.ContractID) (domain.ContractRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := map[domain.ContractID]domain.ContractRecord{}
	if _, err := readJSON(filepath.Join(s.dir, contractsFile), &m); err != nil {
		return domain.ContractRecord{}, false, err
	}
	rec, ok := m[id]
	return rec, ok, nil
}

// ListContracts returns every record, oldest first.
func (s *ContractFileStore) ListContracts() ([]domain.ContractRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := map[domain.ContractID]domain.ContractRecord{}
	if _, err := readJSON(filepath.Join(s.dir, contractsFile), &m); err != nil {
		return nil, err
	}
	return sortedRecords(m), nil
}

func sortedRecords(m map[domain.ContractID]domain.ContractRecord) []domain.ContractRecord {
	out := make([]domain.ContractRecord, 0, len(m))
	for _, rec := range m {
		out = append(out, rec)
	}
	slices.SortFunc(out, func(a, b domain.ContractRecord) int {
		return cmp.Or(cmp.Compare(a.CreatedAt, b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return out
}

// Compile-time assertion that ContractFileStore implements domain.ContractStore.
var _ domain.ContractStore = (*ContractFileStore)(nil)
