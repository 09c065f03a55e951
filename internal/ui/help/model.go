package help

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/shopping-list/internal/keys"
	"github.com/nhle/shopping-list/internal/model"
	"github.com/nhle/shopping-list/internal/theme"
)

// Context is the screen the overlay was opened from.
type Context int

const (
	ContextStores Context = iota
	ContextList
	ContextCards
)

// columnSize caps the rows per column in the rendered key table.
const columnSize = 4

// Model is the help overlay view. It lists the keys of the screen it was
// opened from, then the keys that work everywhere.
type Model struct {
	keys    *keys.KeyMap
	help    help.Model
	context Context
	tab     model.Partition
	width   int
	height  int
}

// New creates a new help view model.
func New(keys *keys.KeyMap, width, height int) Model {
	h := help.New()
	h.Width = width
	return Model{
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// SetContext selects which screen's keys are shown. tab only matters for
// ContextList.
func (m *Model) SetContext(c Context, tab model.Partition) {
	m.context = c
	m.tab = tab
}

// Heading names the screen whose keys are listed.
func (m Model) Heading() string {
	switch m.context {
	case ContextList:
		return m.tab.Label() + " tab"
	case ContextCards:
		return "Loyalty cards"
	default:
		return "Stores"
	}
}

func (m Model) contextBindings() []key.Binding {
	switch m.context {
	case ContextList:
		return m.keys.TabBindings(m.tab)
	case ContextCards:
		return m.keys.CardBindings()
	default:
		return m.keys.StoreBindings()
	}
}

// View renders the help overlay.
func (m Model) View() string {
	title := theme.TitleStyle.Render("Keyboard Shortcuts · " + m.Heading())

	m.help.Width = m.width - 4
	here := m.help.FullHelpView(columns(m.contextBindings(), columnSize))
	everywhere := m.help.FullHelpView(columns(m.keys.GlobalBindings(), columnSize))

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		here,
		"",
		theme.HelpStyle.Render("Everywhere"),
		everywhere,
	)

	return theme.PanelStyle.
		Width(max(m.width-4, 0)).
		Height(max(m.height-4, 0)).
		Render(content)
}

// SetSize updates the help view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width - 4
}

// columns splits bindings into groups of at most n, one per rendered column.
func columns(bindings []key.Binding, n int) [][]key.Binding {
	var out [][]key.Binding
	for len(bindings) > n {
		out = append(out, bindings[:n])
		bindings = bindings[n:]
	}
	if len(bindings) > 0 {
		out = append(out, bindings)
	}
	return out
}
