package shop

import (
	"testing"

	"github.com/nhle/shopping-list/internal/model"
)

func TestReorderItems(t *testing.T) {
	tests := []struct {
		name   string
		moves  [][2]string
		want   []string
		result bool
	}{
		{
			name:   "move first onto last lands after it",
			moves:  [][2]string{{"A", "C"}},
			want:   []string{"B", "C", "A"},
			result: true,
		},
		{
			name:   "move last onto first lands before it",
			moves:  [][2]string{{"C", "A"}},
			want:   []string{"C", "A", "B"},
			result: true,
		},
		{
			name:   "adjacent moves undo each other",
			moves:  [][2]string{{"A", "B"}, {"B", "A"}},
			want:   []string{"A", "B", "C"},
			result: true,
		},
		{
			name:   "non-adjacent moves are not a swap",
			moves:  [][2]string{{"A", "C"}, {"C", "A"}},
			want:   []string{"B", "A", "C"},
			result: true,
		},
		{
			name:   "onto itself keeps order",
			moves:  [][2]string{{"B", "B"}},
			want:   []string{"A", "B", "C"},
			result: true,
		},
		{
			name:   "unknown dragged id",
			moves:  [][2]string{{"missing", "A"}},
			want:   []string{"A", "B", "C"},
			result: false,
		},
		{
			name:   "unknown target id",
			moves:  [][2]string{{"A", "missing"}},
			want:   []string{"A", "B", "C"},
			result: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			s, _ := newTestState(t)
			s.AddStore("Market")
			for _, text := range []string{"A", "B", "C"} {
				s.AddItem(text)
			}
			id := func(text string) string {
				if text == "missing" {
					return "missing"
				}
				return itemID(t, s, text)
			}

			// Act
			var got bool
			for _, m := range tt.moves {
				got = s.ReorderItems(id(m[0]), id(m[1]))
			}

			// Assert
			if got != tt.result {
				t.Errorf("ReorderItems() = %v, want %v", got, tt.result)
			}
			if order := itemTexts(t, s); !equalStrings(order, tt.want) {
				t.Errorf("order = %v, want %v", order, tt.want)
			}
		})
	}
}

// Reordering uses indexes over the whole item sequence. Items hidden from
// the list view (checked or archived) keep their slots and can end up on
// either side of the moved item.
func TestReorderItems_HiddenItemsInterleaved(t *testing.T) {
	// Arrange: A, [B in basket], C, [D archived], E
	s, _ := newTestState(t)
	s.AddStore("Market")
	for _, text := range []string{"A", "B", "C", "D", "E"} {
		s.AddItem(text)
	}
	s.ToggleItem(itemID(t, s, "B"))
	s.ArchiveItem(itemID(t, s, "D"))

	// Act: in the list view the user drags A onto E.
	s.ReorderItems(itemID(t, s, "A"), itemID(t, s, "E"))

	// Assert: A moves to E's full-sequence index, past the hidden items.
	if got := itemTexts(t, s); !equalStrings(got, []string{"B", "C", "D", "E", "A"}) {
		t.Errorf("order = %v, want [B C D E A]", got)
	}

	st, _ := s.ActiveStore()
	var visible []string
	for _, item := range st.ItemsIn(model.PartitionList) {
		visible = append(visible, item.Text)
	}
	if !equalStrings(visible, []string{"C", "E", "A"}) {
		t.Errorf("list view = %v, want [C E A]", visible)
	}
}

// Dragging upward past a hidden item places the moved item before the
// target, and the hidden item ends up after both.
func TestReorderItems_UpwardPastHiddenItem(t *testing.T) {
	s, _ := newTestState(t)
	s.AddStore("Market")
	for _, text := range []string{"A", "B", "C"} {
		s.AddItem(text)
	}
	s.ToggleItem(itemID(t, s, "B"))

	s.ReorderItems(itemID(t, s, "C"), itemID(t, s, "A"))

	if got := itemTexts(t, s); !equalStrings(got, []string{"C", "A", "B"}) {
		t.Errorf("order = %v, want [C A B]", got)
	}
}

func TestMoveItem(t *testing.T) {
	items := func(ids ...string) []model.Item {
		out := make([]model.Item, len(ids))
		for i, id := range ids {
			out[i] = model.Item{ID: id}
		}
		return out
	}
	ids := func(items []model.Item) []string {
		out := make([]string, len(items))
		for i, item := range items {
			out[i] = item.ID
		}
		return out
	}

	tests := []struct {
		from, to int
		want     []string
	}{
		{0, 3, []string{"b", "c", "d", "a"}},
		{3, 0, []string{"d", "a", "b", "c"}},
		{1, 2, []string{"a", "c", "b", "d"}},
		{2, 1, []string{"a", "c", "b", "d"}},
		{2, 2, []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		in := items("a", "b", "c", "d")
		got := ids(moveItem(in, tt.from, tt.to))
		if !equalStrings(got, tt.want) {
			t.Errorf("moveItem(%d, %d) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
		if !equalStrings(ids(in), []string{"a", "b", "c", "d"}) && tt.from != tt.to {
			t.Errorf("moveItem(%d, %d) modified its input: %v", tt.from, tt.to, ids(in))
		}
	}
}

// Moving over the whole sequence and moving within the list view alone
// agree on the order the list view shows. They only differ in where the
// hidden items end up.
func TestReorderItems_ListViewMatchesFilteredMove(t *testing.T) {
	texts := []string{"A", "B", "C", "D", "E", "F"}
	hidden := map[string]bool{"B": true, "E": true}

	for _, active := range texts {
		for _, over := range texts {
			if hidden[active] || hidden[over] {
				continue
			}
			t.Run(active+"->"+over, func(t *testing.T) {
				s, _ := newTestState(t)
				s.AddStore("Market")
				for _, text := range texts {
					s.AddItem(text)
				}
				s.ToggleItem(itemID(t, s, "B"))
				s.ArchiveItem(itemID(t, s, "E"))

				st, _ := s.ActiveStore()
				before := st.ItemsIn(model.PartitionList)
				from := itemIndex(before, itemID(t, s, active))
				to := itemIndex(before, itemID(t, s, over))
				var want []string
				for _, item := range moveItem(before, from, to) {
					want = append(want, item.Text)
				}

				s.ReorderItems(itemID(t, s, active), itemID(t, s, over))

				st, _ = s.ActiveStore()
				var got []string
				for _, item := range st.ItemsIn(model.PartitionList) {
					got = append(got, item.Text)
				}
				if !equalStrings(got, want) {
					t.Errorf("list view = %v, filtered move gives %v", got, want)
				}
			})
		}
	}
}
