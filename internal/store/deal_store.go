package store

import (
	"sync"

	"bridge-deals-service/internal/domain"
)

// DealStore keeps a thread-safe collection of parsed deals keyed by
// record path. Batch workers write into it concurrently; readers get
// copies of the key set rather than live map state.
type DealStore struct {
	mu    sync.RWMutex
	deals map[string]*domain.Deal
}

// NewDealStore constructs an empty DealStore.
func NewDealStore() *DealStore {
	return &DealStore{
		deals: make(map[string]*domain.Deal),
	}
}

// Put stores the deal parsed from the record at path.
func (s *DealStore) Put(path string, deal *domain.Deal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deals[path] = deal
}

// Get retrieves a deal by record path.
func (s *DealStore) Get(path string) (*domain.Deal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	deal, ok := s.deals[path]
	return deal, ok
}

// Len returns the number of stored deals.
func (s *DealStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.deals)
}

// Paths returns a copy of the stored record paths.
func (s *DealStore) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	paths := make([]string, 0, len(s.deals))
	for path := range s.deals {
		paths = append(paths, path)
	}
	return paths
}
