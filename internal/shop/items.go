package shop

import (
	"github.com/nhle/shopping-list/internal/model"
)

// withActiveStore runs fn against the active store and saves when fn
// reports a change. It reports false when there is no active store.
func (s *State) withActiveStore(fn func(st *model.Store) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.activeIndexLocked()
	if idx < 0 {
		return false
	}
	if !fn(&s.stores[idx]) {
		return false
	}
	s.saveLocked()
	return true
}

// updateItem applies fn to the item with the given id in the active store.
func (s *State) updateItem(id string, fn func(item *model.Item)) bool {
	return s.withActiveStore(func(st *model.Store) bool {
		i := itemIndex(st.Items, id)
		if i < 0 {
			return false
		}
		fn(&st.Items[i])
		return true
	})
}

// AddItem appends an unchecked, unarchived item with quantity 1 to the
// active store.
func (s *State) AddItem(text string) bool {
	id := s.newID()
	return s.withActiveStore(func(st *model.Store) bool {
		st.Items = append(st.Items, model.Item{
			ID:       id,
			Text:     text,
			Quantity: 1,
		})
		return true
	})
}

// ToggleItem flips the item's checked flag, moving it between the list
// and the basket.
func (s *State) ToggleItem(id string) bool {
	return s.updateItem(id, func(item *model.Item) {
		item.Checked = !item.Checked
	})
}

// DeleteItem removes the item permanently.
func (s *State) DeleteItem(id string) bool {
	return s.withActiveStore(func(st *model.Store) bool {
		i := itemIndex(st.Items, id)
		if i < 0 {
			return false
		}
		st.Items = append(st.Items[:i], st.Items[i+1:]...)
		return true
	})
}

// ReorderItems moves activeID to the index overID occupies. Indexes are
// taken over the store's whole item sequence, hidden partitions included.
func (s *State) ReorderItems(activeID, overID string) bool {
	return s.withActiveStore(func(st *model.Store) bool {
		from := itemIndex(st.Items, activeID)
		to := itemIndex(st.Items, overID)
		if from < 0 || to < 0 {
			return false
		}
		st.Items = moveItem(st.Items, from, to)
		return true
	})
}

// ArchiveItem moves the item into the archive. Its checked flag is kept.
func (s *State) ArchiveItem(id string) bool {
	return s.updateItem(id, func(item *model.Item) {
		item.IsArchived = true
	})
}

// UnarchiveItem returns an archived item to the list, clearing both the
// archived and checked flags.
func (s *State) UnarchiveItem(id string) bool {
	return s.updateItem(id, func(item *model.Item) {
		item.IsArchived = false
		item.Checked = false
	})
}

// MoveAllBasketToArchive archives every checked item in the active store
// and returns how many items were newly archived.
func (s *State) MoveAllBasketToArchive() int {
	moved := 0
	s.withActiveStore(func(st *model.Store) bool {
		for i := range st.Items {
			if st.Items[i].Checked && !st.Items[i].IsArchived {
				st.Items[i].IsArchived = true
				moved++
			}
		}
		return moved > 0
	})
	return moved
}

// UpdateItemQuantity adds delta to the item's quantity, never going
// below 1.
func (s *State) UpdateItemQuantity(id string, delta int) bool {
	return s.updateItem(id, func(item *model.Item) {
		q := item.Quantity
		if q < 1 {
			q = 1
		}
		item.Quantity = max(1, q+delta)
	})
}

// itemIndex returns the index of the item with the given id, or -1.
func itemIndex(items []model.Item, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

// moveItem removes the element at from and reinserts it at to. The
// target index is the one observed before removal, so moving forward
// places the element after the item that was at to.
func moveItem(items []model.Item, from, to int) []model.Item {
	if from == to {
		return items
	}
	moved := items[from]
	out := make([]model.Item, 0, len(items))
	out = append(out, items[:from]...)
	out = append(out, items[from+1:]...)

	out = append(out, model.Item{})
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out
}
