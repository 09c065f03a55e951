package help

import (
	"strings"
	"testing"

	"github.com/nhle/shopping-list/internal/keys"
	"github.com/nhle/shopping-list/internal/model"
)

func TestView_ShowsKeysOfCurrentScreen(t *testing.T) {
	tests := []struct {
		name    string
		context Context
		tab     model.Partition
		heading string
		want    []string
		notWant []string
	}{
		{
			name:    "list tab",
			context: ContextList,
			tab:     model.PartitionList,
			heading: "List tab",
			want:    []string{"add item", "put in basket", "move item up"},
			notWant: []string{"return to list", "quantity up", "archive whole basket"},
		},
		{
			name:    "basket tab",
			context: ContextList,
			tab:     model.PartitionBasket,
			heading: "Basket tab",
			want:    []string{"return to list", "archive whole basket"},
			notWant: []string{"put in basket", "move item up", "quantity up"},
		},
		{
			name:    "archive tab",
			context: ContextList,
			tab:     model.PartitionArchive,
			heading: "Archive tab",
			want:    []string{"restore to list", "quantity up", "quantity down"},
			notWant: []string{"add item", "move item up", "archive whole basket"},
		},
		{
			name:    "stores",
			context: ContextStores,
			heading: "Stores",
			want:    []string{"new store", "search stores"},
			notWant: []string{"add item", "new card"},
		},
		{
			name:    "cards",
			context: ContextCards,
			heading: "Loyalty cards",
			want:    []string{"show barcode", "new card"},
			notWant: []string{"new store", "add item"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			m := New(keys.DefaultKeyMap(), 200, 40)

			// Act
			m.SetContext(tt.context, tt.tab)
			view := m.View()

			// Assert
			if got := m.Heading(); got != tt.heading {
				t.Errorf("Heading() = %q, want %q", got, tt.heading)
			}
			for _, s := range tt.want {
				if !strings.Contains(view, s) {
					t.Errorf("view missing %q", s)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(view, s) {
					t.Errorf("view should not contain %q", s)
				}
			}
			if !strings.Contains(view, "command palette") {
				t.Error("view missing global keys")
			}
		})
	}
}

func TestColumns(t *testing.T) {
	bindings := keys.DefaultKeyMap().TabBindings(model.PartitionList)

	got := columns(bindings, 4)

	if len(got) != 3 {
		t.Fatalf("len(columns) = %d, want 3", len(got))
	}
	if len(got[2]) != len(bindings)-8 {
		t.Errorf("last column has %d bindings, want %d", len(got[2]), len(bindings)-8)
	}
}
