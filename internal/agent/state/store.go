package state

import (
	"context"
	"sync"

	"github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/model"
	logx "github.com/IbalArrasyid/E-Commerce-Agent/pkg/logger"
)

// Store is the conversation state store. Updates for one thread are
// serialized through a per-thread mutex so command sequences from concurrent
// requests never interleave; different threads proceed independently.
type Store struct {
	repo model.StateRepository

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore wraps a repository with per-thread update serialization.
func NewStore(repo model.StateRepository) *Store {
	return &Store{repo: repo, locks: make(map[string]*sync.Mutex)}
}

func (st *Store) threadLock(threadID string) *sync.Mutex {
	st.mu.Lock()
	defer st.mu.Unlock()
	l, ok := st.locks[threadID]
	if !ok {
		l = &sync.Mutex{}
		st.locks[threadID] = l
	}
	return l
}

// GetOrCreate returns the state for the thread, creating and persisting a
// default record on first access. A missing thread is never an error.
func (st *Store) GetOrCreate(ctx context.Context, threadID string) (*model.ConversationState, error) {
	l := st.threadLock(threadID)
	l.Lock()
	defer l.Unlock()

	s, err := st.repo.Load(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if s != nil {
		return s, nil
	}

	s = model.NewConversationState(threadID)
	if err := st.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	logx.Debug().Str("thread_id", threadID).Msg("created conversation state")
	return s, nil
}

// Get returns the stored state, or (nil, nil) when the thread is unknown.
func (st *Store) Get(ctx context.Context, threadID string) (*model.ConversationState, error) {
	return st.repo.Load(ctx, threadID)
}

// Update atomically applies the commands to the thread's state (creating a
// default record first if needed) and returns the new state.
func (st *Store) Update(ctx context.Context, threadID string, cmds ...Command) (*model.ConversationState, error) {
	l := st.threadLock(threadID)
	l.Lock()
	defer l.Unlock()

	s, err := st.repo.Load(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = model.NewConversationState(threadID)
	}

	Apply(s, cmds...)

	if err := st.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Delete removes the thread's state entirely. Used by the explicit reset
// operation; state is never destroyed implicitly.
func (st *Store) Delete(ctx context.Context, threadID string) error {
	l := st.threadLock(threadID)
	l.Lock()
	defer l.Unlock()

	// The per-thread mutex is kept around on purpose: dropping it while
	// another goroutine is blocked on it would let two writers hold
	// distinct locks for the same thread.
	return st.repo.Delete(ctx, threadID)
}
