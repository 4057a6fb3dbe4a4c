package memory

import (
	"sync"

	"github.com/vsinha/bundletrack/pkg/domain/entities"
	"github.com/vsinha/bundletrack/pkg/domain/repositories"
)

// LedgerStore provides an in-memory append-only event store, used by tests
// and as a scratch ledger when no backing file is configured
type LedgerStore struct {
	mu     sync.Mutex
	events []*entities.SaleEvent
}

// Verify interface compliance
var _ repositories.LedgerStore = (*LedgerStore)(nil)

// NewLedgerStore creates an empty in-memory ledger store
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{}
}

// Append adds one event to the ledger
func (s *LedgerStore) Append(event *entities.SaleEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, event)
	return nil
}

// ReadAll returns a copy of all appended events in append order
func (s *LedgerStore) ReadAll() ([]*entities.SaleEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entities.SaleEvent, len(s.events))
	copy(out, s.events)
	return out, nil
}
