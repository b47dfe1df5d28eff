package holdings

import (
	"context"
	"sync"

	"auction-hall/internal/domain/item"
	"auction-hall/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrFull = errs.New("holding area is full")

// MemoryStore is a capacity-bounded per-account holding area. Items that do
// not fit stay in the warehouse as uncollected history entries.
type MemoryStore struct {
	mu       sync.Mutex
	slots    map[uuid.UUID][]item.Payload
	capacity int
}

func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = 27
	}
	return &MemoryStore{
		slots:    make(map[uuid.UUID][]item.Payload),
		capacity: capacity,
	}
}

func (s *MemoryStore) Return(_ context.Context, account uuid.UUID, payload item.Payload) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.slots[account]) >= s.capacity {
		return ErrFull
	}
	s.slots[account] = append(s.slots[account], payload.Clone())
	return nil
}

// Items returns a copy of the account's held items.
func (s *MemoryStore) Items(account uuid.UUID) []item.Payload {
	s.mu.Lock()
	defer s.mu.Unlock()

	held := s.slots[account]
	out := make([]item.Payload, len(held))
	for i, p := range held {
		out[i] = p.Clone()
	}
	return out
}
