package repository

import (
	"context"
	"sync"
)

// InMemoryCartsRepository is a map-backed CartsRepositoryInterface used when
// MongoDB is disabled. Slots live only for the lifetime of the process.
type InMemoryCartsRepository struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewInMemoryCartsRepository creates an empty in-memory carts repository.
func NewInMemoryCartsRepository() *InMemoryCartsRepository {
	return &InMemoryCartsRepository{
		slots: make(map[string][]byte),
	}
}

// Load returns the raw state payload stored for a session, or (nil, nil)
// when the session has no slot.
func (r *InMemoryCartsRepository) Load(_ context.Context, sessionID string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.slots[sessionID]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(state))
	copy(out, state)
	return out, nil
}

// Save replaces the slot contents for a session.
func (r *InMemoryCartsRepository) Save(_ context.Context, sessionID string, state []byte) error {
	stored := make([]byte, len(state))
	copy(stored, state)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[sessionID] = stored
	return nil
}

// Delete removes the slot for a session.
func (r *InMemoryCartsRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, sessionID)
	return nil
}
