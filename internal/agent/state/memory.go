package state

import (
	"context"
	"sync"

	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/model"
)

// MemoryRepository keeps conversation state in a process-local map. Used in
// tests and for running the demo without Redis.
type MemoryRepository struct {
	mu     sync.RWMutex
	states map[string]*model.ConversationState
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{states: make(map[string]*model.ConversationState)}
}

func (r *MemoryRepository) Load(_ context.Context, threadID string) (*model.ConversationState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.states[threadID]
	if !ok {
		return nil, nil
	}
	return s.Clone(), nil
}

func (r *MemoryRepository) Save(_ context.Context, s *model.ConversationState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[s.ThreadID] = s.Clone()
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, threadID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.states, threadID)
	return nil
}

var _ model.StateRepository = (*MemoryRepository)(nil)
