package shop

import "github.com/nhle/shopping-list/internal/model"

// AddCard attaches a loyalty card to the active store.
func (s *State) AddCard(title, barcodeValue string) bool {
	id := s.newID()
	return s.withActiveStore(func(st *model.Store) bool {
		st.Cards = append(st.Cards, model.Card{
			ID:           id,
			Title:        title,
			BarcodeValue: barcodeValue,
		})
		return true
	})
}

// DeleteCard removes the card from the active store.
func (s *State) DeleteCard(id string) bool {
	return s.withActiveStore(func(st *model.Store) bool {
		for i := range st.Cards {
			if st.Cards[i].ID == id {
				st.Cards = append(st.Cards[:i], st.Cards[i+1:]...)
				return true
			}
		}
		return false
	})
}
