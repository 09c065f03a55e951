package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nhle/shopping-list/internal/keys"
	"github.com/nhle/shopping-list/internal/model"
	"github.com/nhle/shopping-list/internal/shop"
	"github.com/nhle/shopping-list/internal/ui"
	"github.com/nhle/shopping-list/internal/ui/cards"
	"github.com/nhle/shopping-list/internal/ui/command"
	helpview "github.com/nhle/shopping-list/internal/ui/help"
	"github.com/nhle/shopping-list/internal/ui/shoplist"
	"github.com/nhle/shopping-list/internal/ui/storeselect"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewStores ViewState = iota
	ViewList
	ViewCards
	ViewHelp
	ViewCommand
)

// Model is the root Bubble Tea model that manages view routing and
// layout on top of the shopping state.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	state        *shop.State
	logger       *zap.Logger
	keys         *keys.KeyMap
	storeView    storeselect.Model
	listView     shoplist.Model
	cardsView    cards.Model
	helpView     helpview.Model
	commandView  command.Model
	ready        bool
}

// New creates a new root application model. It opens the list of the
// active store when one is selected, otherwise the store selector.
func New(s *shop.State, logger *zap.Logger) Model {
	k := keys.DefaultKeyMap()

	start := ViewStores
	if _, ok := s.ActiveStore(); ok {
		start = ViewList
	}

	return Model{
		currentView:  start,
		previousView: start,
		state:        s,
		logger:       logger,
		keys:         k,
		storeView:    storeselect.New(s, k, 80, 24),
		listView:     shoplist.New(s, k, 80, 24),
		cardsView:    cards.New(s, k, 80, 24),
		helpView:     helpview.New(k, 80, 24),
		commandView:  command.New(80, 24),
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.storeView.SetSize(contentWidth, contentHeight)
		m.listView.SetSize(contentWidth, contentHeight)
		m.cardsView.SetSize(contentWidth, contentHeight)
		m.helpView.SetSize(contentWidth, contentHeight)
		m.commandView.SetSize(contentWidth, contentHeight)
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case storeselect.StoreOpenedMsg:
		m.logger.Debug("store opened", zap.String("store_id", msg.StoreID))
		m.listView.SetTab(model.PartitionList)
		m.cardsView.Reload()
		m.currentView = ViewList
		return m, nil

	case storeselect.StoresChangedMsg:
		m.listView.Reload("")
		m.cardsView.Reload()
		return m, nil

	case shoplist.ItemsChangedMsg:
		// Item commands can finish after the user has switched views.
		var cmd tea.Cmd
		m.listView, cmd = m.listView.Update(msg)
		m.storeView.Reload()
		return m, cmd

	case shoplist.BackMsg:
		m.storeView.Reload()
		m.currentView = ViewStores
		return m, nil

	case shoplist.OpenCardsMsg:
		m.cardsView.Reload()
		m.currentView = ViewCards
		return m, nil

	case cards.CloseMsg:
		m.currentView = ViewList
		return m, nil

	case cards.CardsChangedMsg:
		m.storeView.Reload()
		return m, nil

	case command.CommandMsg:
		m.currentView = m.previousView
		return m, m.executeCommand(string(msg))

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if cmd, handled := m.handleGlobalKey(msg); handled {
			return m, cmd
		}
	}

	// Delegate to active sub-view
	return m.updateActiveView(msg)
}

// handleGlobalKey processes keys that work across views. It reports
// whether the key was consumed.
func (m *Model) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch m.currentView {
	case ViewCommand:
		if key.Matches(msg, m.keys.Back) {
			m.currentView = m.previousView
			return nil, true
		}
		return nil, false

	case ViewHelp:
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Help) {
			m.currentView = m.previousView
			return nil, true
		}
		if key.Matches(msg, m.keys.Quit) {
			return tea.Quit, true
		}
		return nil, false
	}

	if m.capturing() {
		return nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true

	case key.Matches(msg, m.keys.Help):
		m.previousView = m.currentView
		m.helpView.SetContext(helpContext(m.currentView), m.listView.Tab())
		m.currentView = ViewHelp
		return nil, true

	case key.Matches(msg, m.keys.Command):
		m.previousView = m.currentView
		m.currentView = ViewCommand
		return m.commandView.Focus(), true
	}
	return nil, false
}

// capturing reports whether the active view is consuming raw key input.
func (m Model) capturing() bool {
	switch m.currentView {
	case ViewStores:
		return m.storeView.Capturing()
	case ViewList:
		return m.listView.Capturing()
	case ViewCards:
		return m.cardsView.Capturing()
	}
	return false
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewStores:
		m.storeView, cmd = m.storeView.Update(msg)
	case ViewList:
		m.listView, cmd = m.listView.Update(msg)
	case ViewCards:
		m.cardsView, cmd = m.cardsView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader(m.header())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewStores:
		return m.storeView.View()
	case ViewList:
		return m.listView.View()
	case ViewCards:
		return m.cardsView.View()
	case ViewHelp:
		return m.helpView.View()
	case ViewCommand:
		return m.commandView.View()
	default:
		return ""
	}
}

// header describes the active store and the screen in view.
func (m Model) header() ui.Header {
	h := ui.Header{Title: "Shopping List", View: m.viewLabel()}
	st, ok := m.state.ActiveStore()
	if !ok {
		return h
	}
	h.Store = st.Name
	h.List = st.Count(model.PartitionList)
	h.Basket = st.Count(model.PartitionBasket)
	h.Archive = st.Count(model.PartitionArchive)
	return h
}

// viewLabel names the screen for the header. Overlays report the screen
// underneath them.
func (m Model) viewLabel() string {
	v := m.currentView
	if v == ViewHelp || v == ViewCommand {
		v = m.previousView
	}
	switch v {
	case ViewList:
		return m.listView.Tab().Label()
	case ViewCards:
		return "Cards"
	default:
		return "Stores"
	}
}

// helpContext maps a screen to the help overlay context describing it.
func helpContext(v ViewState) helpview.Context {
	switch v {
	case ViewList:
		return helpview.ContextList
	case ViewCards:
		return helpview.ContextCards
	default:
		return helpview.ContextStores
	}
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewCommand:
		return "enter execute | esc back"
	case ViewCards:
		return "enter show | n new | d delete | esc back"
	case ViewList:
		return m.listView.KeyHints()
	default:
		return "q quit | ? help | : command | enter open | n new | / search"
	}
}

// executeCommand runs a command resolved by the command palette.
func (m *Model) executeCommand(cmd string) tea.Cmd {
	m.logger.Debug("command", zap.String("name", cmd))

	switch cmd {
	case "quit":
		return tea.Quit
	case "stores":
		m.storeView.Reload()
		m.currentView = ViewStores
		return nil
	case "list", "basket", "archive":
		return m.openTab(cmd)
	case "cards":
		if _, ok := m.state.ActiveStore(); !ok {
			m.currentView = ViewStores
			return nil
		}
		m.cardsView.Reload()
		m.currentView = ViewCards
		return nil
	case "archive basket":
		return m.listView.ArchiveBasket()
	default:
		m.logger.Info("unknown command", zap.String("name", cmd))
		return nil
	}
}

// openTab shows the named partition of the active store's list.
func (m *Model) openTab(name string) tea.Cmd {
	if _, ok := m.state.ActiveStore(); !ok {
		m.currentView = ViewStores
		return nil
	}
	tab := model.PartitionList
	switch name {
	case "basket":
		tab = model.PartitionBasket
	case "archive":
		tab = model.PartitionArchive
	}
	m.listView.SetTab(tab)
	m.currentView = ViewList
	return nil
}
