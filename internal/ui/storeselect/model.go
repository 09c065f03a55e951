package storeselect

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/nhle/shopping-list/internal/keys"
	"github.com/nhle/shopping-list/internal/model"
	"github.com/nhle/shopping-list/internal/shop"
	"github.com/nhle/shopping-list/internal/theme"
)

// StoreOpenedMsg asks the parent to show the list for the selected store.
type StoreOpenedMsg struct {
	StoreID string
}

// StoresChangedMsg signals that a store was created or deleted.
type StoresChangedMsg struct{}

type selectorMode int

const (
	modeList selectorMode = iota
	modeForm
	modeConfirmDelete
	modeSearch
)

type formBindings struct {
	name    string
	confirm bool
}

type storeSavedMsg struct{ id string }
type storeDeletedMsg struct{ deleted bool }

// Model is the store selector view.
type Model struct {
	mode        selectorMode
	state       *shop.State
	keys        *keys.KeyMap
	stores      []model.Store
	visible     []model.Store
	activeID    string
	selectedIdx int
	query       string
	searchInput textinput.Model
	form        *huh.Form
	confirmForm *huh.Form
	fb          *formBindings
	statusMsg   string
	width       int
	height      int
}

// New creates a new store selector.
func New(s *shop.State, k *keys.KeyMap, width, height int) Model {
	si := textinput.New()
	si.Placeholder = "search stores..."
	si.Prompt = "/ "
	si.Width = width - 4

	m := Model{
		mode:        modeList,
		state:       s,
		keys:        k,
		searchInput: si,
		fb:          &formBindings{},
		width:       width,
		height:      height,
	}
	m.Reload()
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Reload refreshes the store list from the shopping state.
func (m *Model) Reload() {
	m.stores = m.state.Stores()
	m.activeID = m.state.ActiveStoreID()
	m.visible = FilterStores(m.stores, m.query)
	if m.selectedIdx >= len(m.visible) {
		m.selectedIdx = max(len(m.visible)-1, 0)
	}
}

// Capturing reports whether the view is consuming raw key input, so the
// parent should not treat keys as global shortcuts.
func (m Model) Capturing() bool {
	return m.mode != modeList
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case storeSavedMsg:
		m.mode = modeList
		m.statusMsg = "Store created"
		m.query = ""
		m.Reload()
		m.selectByID(msg.id)
		return m, func() tea.Msg { return StoresChangedMsg{} }

	case storeDeletedMsg:
		m.mode = modeList
		if msg.deleted {
			m.statusMsg = "Store deleted"
		}
		m.Reload()
		return m, func() tea.Msg { return StoresChangedMsg{} }

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActiveForm(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.mode {
	case modeList:
		return m.handleListKey(msg)
	case modeForm:
		return m.updateForm(msg)
	case modeConfirmDelete:
		return m.updateConfirm(msg)
	case modeSearch:
		return m.handleSearchKey(msg)
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		if len(m.visible) > 0 {
			m.selectedIdx = (m.selectedIdx + 1) % len(m.visible)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if len(m.visible) > 0 {
			m.selectedIdx--
			if m.selectedIdx < 0 {
				m.selectedIdx = len(m.visible) - 1
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		st, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.state.SelectStore(st.ID)
		m.activeID = st.ID
		return m, func() tea.Msg { return StoreOpenedMsg{StoreID: st.ID} }

	case key.Matches(msg, m.keys.Back):
		if m.query != "" {
			m.query = ""
			m.Reload()
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.searchInput.SetValue(m.query)
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.New):
		m.fb.name = ""
		m.statusMsg = ""
		m.form = m.buildForm()
		m.mode = modeForm
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Delete):
		if _, ok := m.selected(); !ok {
			return m, nil
		}
		m.fb.confirm = false
		m.confirmForm = m.buildConfirmForm()
		m.mode = modeConfirmDelete
		return m, m.confirmForm.Init()
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = modeList
		m.searchInput.Blur()
		return m, nil

	case "esc":
		m.mode = modeList
		m.searchInput.Blur()
		m.searchInput.Reset()
		m.query = ""
		m.Reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.query = m.searchInput.Value()
	m.selectedIdx = 0
	m.Reload()
	return m, cmd
}

func (m *Model) selectByID(id string) {
	for i, st := range m.visible {
		if st.ID == id {
			m.selectedIdx = i
			return
		}
	}
}

func (m Model) selected() (model.Store, bool) {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.visible) {
		return model.Store{}, false
	}
	return m.visible[m.selectedIdx], true
}

func (m Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New store").
				Placeholder("Store name...").
				Value(&m.fb.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) buildConfirmForm() *huh.Form {
	name := ""
	if st, ok := m.selected(); ok {
		name = st.Name
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete store %q?", name)).
				Description("Its list, basket, archive and cards are removed too.").
				Affirmative("Yes, delete").
				Negative("Cancel").
				Value(&m.fb.confirm),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) updateForm(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}
	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		// Leave the form before the add runs so later messages cannot
		// submit it again.
		cmd := m.addStore()
		m.form = nil
		m.mode = modeList
		return m, cmd
	}
	if m.form.State == huh.StateAborted {
		m.mode = modeList
		return m, nil
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (Model, tea.Cmd) {
	if m.confirmForm == nil {
		return m, nil
	}
	mdl, cmd := m.confirmForm.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.confirmForm = f
	}
	if m.confirmForm.State == huh.StateCompleted {
		st, ok := m.selected()
		m.confirmForm = nil
		m.mode = modeList
		if m.fb.confirm && ok {
			return m, m.deleteStore(st.ID)
		}
		return m, nil
	}
	if m.confirmForm.State == huh.StateAborted {
		m.mode = modeList
		return m, nil
	}
	return m, cmd
}

func (m Model) updateActiveForm(msg tea.Msg) (Model, tea.Cmd) {
	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeConfirmDelete:
		return m.updateConfirm(msg)
	}
	return m, nil
}

// View renders the store selector.
func (m Model) View() string {
	switch m.mode {
	case modeForm:
		return m.viewForm(m.form)
	case modeConfirmDelete:
		return m.viewForm(m.confirmForm)
	default:
		return m.viewList()
	}
}

func (m Model) viewList() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render("Your stores"))
	b.WriteString("\n")

	if m.mode == modeSearch || m.query != "" {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case len(m.stores) == 0:
		b.WriteString(theme.EmptyStyle.Render("No stores yet. Press 'n' to create one."))
	case len(m.visible) == 0:
		b.WriteString(theme.EmptyStyle.Render("No matching stores."))
	default:
		for i, st := range m.visible {
			marker := "  "
			if st.ID == m.activeID {
				marker = "● "
			}
			label := fmt.Sprintf("%s%s  %s", marker, st.Name, theme.HintStyle.Render(storeSummary(st)))
			if i == m.selectedIdx {
				b.WriteString(theme.SelectedItemStyle.Render(label))
			} else {
				b.WriteString(theme.ListItemStyle.Render(label))
			}
			b.WriteString("\n")
		}
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.StatusMsgStyle.Render(m.statusMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.HintStyle.Render("enter open | n new | d delete | / search | q quit"))

	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Height(m.height).Render(b.String())
}

func (m Model) viewForm(f *huh.Form) string {
	if f == nil {
		return ""
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(f.View())
}

// storeSummary renders per-partition item counts for a store row.
func storeSummary(st model.Store) string {
	return fmt.Sprintf("%d to buy · %d in basket · %d cards",
		st.Count(model.PartitionList), st.Count(model.PartitionBasket), len(st.Cards))
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.searchInput.Width = width - 4
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func (m Model) addStore() tea.Cmd {
	s := m.state
	name := strings.TrimSpace(m.fb.name)
	return func() tea.Msg {
		if name == "" {
			return storeSavedMsg{}
		}
		return storeSavedMsg{id: s.AddStore(name)}
	}
}

func (m Model) deleteStore(id string) tea.Cmd {
	s := m.state
	return func() tea.Msg {
		return storeDeletedMsg{deleted: s.DeleteStore(id)}
	}
}

// FilterStores returns the stores whose names fuzzy-match query, best
// match first. An empty query returns all stores in order.
func FilterStores(stores []model.Store, query string) []model.Store {
	query = strings.TrimSpace(query)
	if query == "" {
		return stores
	}

	names := make([]string, len(stores))
	for i, st := range stores {
		names[i] = st.Name
	}

	matches := fuzzy.Find(query, names)
	out := make([]model.Store, 0, len(matches))
	for _, match := range matches {
		out = append(out, stores[match.Index])
	}
	return out
}
