package storeselect

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"go.uber.org/zap"

	"github.com/nhle/shopping-list/internal/keys"
	"github.com/nhle/shopping-list/internal/model"
	"github.com/nhle/shopping-list/internal/shop"
	"github.com/nhle/shopping-list/internal/store"
)

func newTestModel(t *testing.T, names ...string) (Model, *shop.State) {
	t.Helper()
	s := shop.New(store.NewSnapshotPersister(store.NewMemoryStore(), ""), zap.NewNop())
	for _, name := range names {
		s.AddStore(name)
	}
	return New(s, keys.DefaultKeyMap(), 80, 24), s
}

func TestFilterStores(t *testing.T) {
	stores := []model.Store{
		{ID: "1", Name: "Mercator"},
		{ID: "2", Name: "Spar"},
		{ID: "3", Name: "Market Hall"},
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"1", "2", "3"}},
		{"  ", []string{"1", "2", "3"}},
		{"spr", []string{"2"}},
		{"zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := FilterStores(stores, tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("FilterStores(%q) = %v, want ids %v", tt.query, got, tt.want)
			}
			for i := range got {
				if got[i].ID != tt.want[i] {
					t.Errorf("FilterStores(%q)[%d] = %s, want %s", tt.query, i, got[i].ID, tt.want[i])
				}
			}
		})
	}
}

func TestFilterStores_SubsequenceMatches(t *testing.T) {
	stores := []model.Store{
		{ID: "1", Name: "Mercator"},
		{ID: "2", Name: "Spar"},
		{ID: "3", Name: "Market Hall"},
	}

	got := FilterStores(stores, "mar")

	ids := make(map[string]bool)
	for _, st := range got {
		ids[st.ID] = true
	}
	if len(got) != 2 || !ids["1"] || !ids["3"] {
		t.Errorf("FilterStores(mar) = %v, want Mercator and Market Hall", got)
	}
}

func TestModel_EnterOpensSelectedStore(t *testing.T) {
	// Arrange
	m, s := newTestModel(t, "Market", "Spar")
	stores := s.Stores()

	// Act: move to the second row and open it.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// Assert
	if cmd == nil {
		t.Fatal("enter should emit a command")
	}
	msg, ok := cmd().(StoreOpenedMsg)
	if !ok {
		t.Fatalf("command returned %T, want StoreOpenedMsg", cmd())
	}
	if msg.StoreID != stores[1].ID {
		t.Errorf("opened %s, want %s", msg.StoreID, stores[1].ID)
	}
	if s.ActiveStoreID() != stores[1].ID {
		t.Errorf("ActiveStoreID() = %s, want %s", s.ActiveStoreID(), stores[1].ID)
	}
	if m.Capturing() {
		t.Error("list mode should not capture keys")
	}
}

func TestModel_NavigationWraps(t *testing.T) {
	m, _ := newTestModel(t, "A", "B", "C")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	if m.selectedIdx != 2 {
		t.Errorf("selectedIdx = %d, want 2", m.selectedIdx)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if m.selectedIdx != 0 {
		t.Errorf("selectedIdx = %d, want 0", m.selectedIdx)
	}
}

func TestModel_DeleteStartsConfirmation(t *testing.T) {
	m, s := newTestModel(t, "Market")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})

	if m.mode != modeConfirmDelete {
		t.Errorf("mode = %v, want confirm delete", m.mode)
	}
	if !m.Capturing() {
		t.Error("confirmation should capture keys")
	}
	if len(s.Stores()) != 1 {
		t.Error("store must not be deleted before confirmation")
	}
}

func TestModel_DeleteResultReloads(t *testing.T) {
	m, s := newTestModel(t, "Market", "Spar")
	s.DeleteStore(s.Stores()[0].ID)

	m, cmd := m.Update(storeDeletedMsg{deleted: true})

	if len(m.stores) != 1 || m.stores[0].Name != "Spar" {
		t.Errorf("stores = %v, want [Spar]", m.stores)
	}
	if _, ok := cmd().(StoresChangedMsg); !ok {
		t.Error("delete result should announce StoresChangedMsg")
	}
}

func TestModel_AddStoreCommand(t *testing.T) {
	m, s := newTestModel(t)
	m.fb.name = "  Corner shop  "

	msg := m.addStore()()

	saved, ok := msg.(storeSavedMsg)
	if !ok || saved.id == "" {
		t.Fatalf("addStore() returned %#v, want storeSavedMsg with id", msg)
	}
	st, ok := s.ActiveStore()
	if !ok || st.Name != "Corner shop" {
		t.Errorf("ActiveStore() = %#v, want trimmed Corner shop", st)
	}

	m, _ = m.Update(saved)
	if len(m.visible) != 1 || m.visible[m.selectedIdx].ID != saved.id {
		t.Error("new store should be listed and selected")
	}
}

type laterMsg struct{}

func TestModel_CompletedFormAddsOnce(t *testing.T) {
	// Arrange: open the form and complete it with a name.
	m, s := newTestModel(t)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if m.mode != modeForm {
		t.Fatalf("mode = %v, want form", m.mode)
	}
	m.fb.name = "Spar"
	m.form.State = huh.StateCompleted

	// Act: the completing message, then more traffic before the add
	// result comes back.
	var cmds []tea.Cmd
	for _, msg := range []tea.Msg{laterMsg{}, laterMsg{}, tea.WindowSizeMsg{Width: 80, Height: 24}} {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		cmds = append(cmds, cmd)
	}
	for _, cmd := range cmds {
		if cmd == nil {
			continue
		}
		if saved, ok := cmd().(storeSavedMsg); ok {
			m, _ = m.Update(saved)
		}
	}

	// Assert
	if got := len(s.Stores()); got != 1 {
		t.Errorf("stores after one submit = %d, want 1", got)
	}
	if m.mode != modeList || m.Capturing() {
		t.Errorf("mode = %v, want list after submit", m.mode)
	}
}
