package shop

import (
	"go.uber.org/zap"

	"github.com/nhle/shopping-list/internal/model"
)

// AddStore appends a new empty store, makes it active and returns its id.
// Callers trim and reject empty names before calling.
func (s *State) AddStore(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := model.Store{
		ID:    s.newID(),
		Name:  name,
		Items: []model.Item{},
		Cards: []model.Card{},
	}
	s.stores = append(s.stores, st)
	s.activeID = st.ID
	s.saveLocked()

	s.logger.Debug("store added", zap.String("store_id", st.ID))
	return st.ID
}

// SelectStore sets the active store. The id is not validated; an unknown
// id behaves as no active store.
func (s *State) SelectStore(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeID = id
	s.saveLocked()
}

// DeleteStore removes the store with the given id, clearing the selection
// if it was active. It reports whether a store was removed.
func (s *State) DeleteStore(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.storeIndexLocked(id)
	if idx < 0 {
		return false
	}

	s.stores = append(s.stores[:idx], s.stores[idx+1:]...)
	if s.activeID == id {
		s.activeID = ""
	}
	s.saveLocked()

	s.logger.Debug("store deleted", zap.String("store_id", id))
	return true
}
