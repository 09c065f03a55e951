package shop

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nhle/shopping-list/internal/model"
)

// Persister loads and saves the full state snapshot.
type Persister interface {
	Load() (model.Snapshot, error)
	Save(snap model.Snapshot) error
}

// State is the shopping state container.
type State struct {
	mu        sync.Mutex
	stores    []model.Store
	activeID  string
	persister Persister
	logger    *zap.Logger
	newID     func() string
}

// New creates a State and loads its initial snapshot from p. A snapshot
// that cannot be loaded is logged and replaced by empty state.
func New(p Persister, logger *zap.Logger) *State {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &State{
		stores:    []model.Store{},
		persister: p,
		logger:    logger,
		newID:     func() string { return uuid.New().String() },
	}

	snap, err := p.Load()
	if err != nil {
		logger.Warn("failed to load shopping data, starting empty", zap.Error(err))
		return s
	}
	s.apply(snap)

	logger.Debug("shopping data loaded",
		zap.Int("stores", len(s.stores)),
		zap.String("active_store_id", s.activeID),
	)
	return s
}

// apply replaces the in-memory state with a copy of snap.
func (s *State) apply(snap model.Snapshot) {
	snap = snap.Clone()
	s.stores = snap.Stores
	s.activeID = snap.ActiveID()
}

// snapshotLocked builds a deep copy of the current state. Callers hold mu.
func (s *State) snapshotLocked() model.Snapshot {
	snap := model.Snapshot{Stores: s.stores}
	if s.activeID != "" {
		id := s.activeID
		snap.ActiveStoreID = &id
	}
	return snap.Clone()
}

// saveLocked persists the full snapshot. Callers hold mu.
func (s *State) saveLocked() {
	if err := s.persister.Save(s.snapshotLocked()); err != nil {
		s.logger.Error("failed to save shopping data", zap.Error(err))
	}
}

// Snapshot returns a deep copy of the current state.
func (s *State) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Replace swaps the whole state for snap and saves it.
func (s *State) Replace(snap model.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.apply(snap)
	s.saveLocked()
}

// Stores returns copies of all stores in order.
func (s *State) Stores() []model.Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Store, len(s.stores))
	for i, st := range s.stores {
		out[i] = st.Clone()
	}
	return out
}

// ActiveStoreID returns the selected store id, or "" when none is set.
// The id may not resolve to a store; see ActiveStore.
func (s *State) ActiveStoreID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// ActiveStore returns a copy of the selected store. It reports false when
// nothing is selected or the selection names a store that does not exist.
func (s *State) ActiveStore() (model.Store, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.activeIndexLocked()
	if idx < 0 {
		return model.Store{}, false
	}
	return s.stores[idx].Clone(), true
}

// activeIndexLocked returns the index of the active store or -1.
func (s *State) activeIndexLocked() int {
	if s.activeID == "" {
		return -1
	}
	return s.storeIndexLocked(s.activeID)
}

func (s *State) storeIndexLocked(id string) int {
	for i := range s.stores {
		if s.stores[i].ID == id {
			return i
		}
	}
	return -1
}
