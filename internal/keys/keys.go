package keys

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/nhle/shopping-list/internal/model"
)

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down key.Binding
	Up   key.Binding

	// Selection
	Select key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Search
	Search key.Binding

	// Command palette
	Command key.Binding

	// Help toggle
	Help key.Binding

	// Store and card management
	New    key.Binding
	Delete key.Binding
	Cards  key.Binding

	// Item actions
	Toggle       key.Binding
	Archive      key.Binding
	Unarchive    key.Binding
	ArchiveAll   key.Binding
	MoveUp       key.Binding
	MoveDown     key.Binding
	QuantityUp   key.Binding
	QuantityDown key.Binding

	// Tabs
	NextTab key.Binding
	PrevTab key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search stores"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Cards: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "loyalty cards"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space/x", "toggle basket"),
		),
		Archive: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "archive"),
		),
		Unarchive: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "restore to list"),
		),
		ArchiveAll: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "archive whole basket"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move item up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move item down"),
		),
		QuantityUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "quantity up"),
		),
		QuantityDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "quantity down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("shift+tab", "previous tab"),
		),
	}
}

// GlobalBindings returns the keys that work on every screen.
func (k *KeyMap) GlobalBindings() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Help, k.Command, k.Quit}
}

// StoreBindings returns the keys of the store selector.
func (k *KeyMap) StoreBindings() []key.Binding {
	return []key.Binding{
		k.Select,
		relabel(k.New, "new store"),
		relabel(k.Delete, "delete store"),
		k.Search,
	}
}

// CardBindings returns the keys of the loyalty card screen.
func (k *KeyMap) CardBindings() []key.Binding {
	return []key.Binding{
		relabel(k.Select, "show barcode"),
		relabel(k.New, "new card"),
		relabel(k.Delete, "delete card"),
	}
}

// TabBindings returns the item keys that act on the given tab, with help
// text saying what each one does there.
func (k *KeyMap) TabBindings(p model.Partition) []key.Binding {
	var out []key.Binding
	switch p {
	case model.PartitionList:
		out = []key.Binding{
			relabel(k.New, "add item"),
			relabel(k.Toggle, "put in basket"),
			k.MoveUp,
			k.MoveDown,
			k.Archive,
		}
	case model.PartitionBasket:
		out = []key.Binding{
			relabel(k.Toggle, "return to list"),
			k.Archive,
			k.ArchiveAll,
		}
	case model.PartitionArchive:
		out = []key.Binding{
			k.Unarchive,
			k.QuantityUp,
			k.QuantityDown,
		}
	}
	return append(out,
		relabel(k.Delete, "delete item"),
		k.Cards,
		k.NextTab,
		k.PrevTab,
	)
}

// relabel returns a copy of b with a different help description.
func relabel(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}
