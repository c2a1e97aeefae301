package store

import (
	"sync"

	"stakeplug/internal/domain"
)

// MemoryContractStore keeps contract records in memory. The plugin host uses
// it when it has no home directory.
type MemoryContractStore struct {
	mu      sync.RWMutex
	records map[domain.ContractID]domain.ContractRecord
}

// NewMemoryContractStore returns an empty store.
func NewMemoryContractStore() *MemoryContractStore {
	return &MemoryContractStore{records: make(map[domain.ContractID]domain.ContractRecord)}
}

func (s *MemoryContractStore) SaveContract(rec domain.ContractRecord) error {
	s.mu.Lock()
	s.records[rec.ID] = rec
	s.mu.Unlock()
	return nil
}

func (s *MemoryContractStore) LoadContract(id domain.ContractID) (domain.ContractRecord, bool, error) {
	s.mu.RLock()
	rec, ok := s.records[id]
	s.mu.RUnlock()
	return rec, ok, nil
}

func (s *MemoryContractStore) ListContracts() ([]domain.ContractRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedRecords(s.records), nil
}

var _ domain.ContractStore = (*MemoryContractStore)(nil)
