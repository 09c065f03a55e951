package shoplist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/shopping-list/internal/keys"
	"github.com/nhle/shopping-list/internal/model"
	"github.com/nhle/shopping-list/internal/shop"
	"github.com/nhle/shopping-list/internal/theme"
)

// BackMsg asks the parent to return to the store selector.
type BackMsg struct{}

// OpenCardsMsg asks the parent to show the active store's loyalty cards.
type OpenCardsMsg struct{}

// ItemsChangedMsg is sent after an item mutation. FocusID is the item
// the cursor should follow, if any.
type ItemsChangedMsg struct {
	FocusID string
	Status  string
}

// tabs is the display order of the partitions.
var tabs = []model.Partition{
	model.PartitionList,
	model.PartitionBasket,
	model.PartitionArchive,
}

// Model is the tabbed list / basket / archive view for the active store.
type Model struct {
	state     *shop.State
	keys      *keys.KeyMap
	list      list.Model
	input     textinput.Model
	adding    bool
	tab       model.Partition
	store     model.Store
	hasStore  bool
	statusMsg string
	width     int
	height    int
}

// New creates a new shopping list view.
func New(s *shop.State, k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, ItemDelegate{}, width, max(height-6, 1))
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.NextPage.SetEnabled(false)
	l.KeyMap.PrevPage.SetEnabled(false)

	ti := textinput.New()
	ti.Placeholder = "Add item..."
	ti.Prompt = "+ "
	ti.Width = width - 6

	m := Model{
		state:  s,
		keys:   k,
		list:   l,
		input:  ti,
		tab:    model.PartitionList,
		width:  width,
		height: height,
	}
	m.Reload("")
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Capturing reports whether the add-item input has focus.
func (m Model) Capturing() bool {
	return m.adding
}

// Tab returns the partition currently shown.
func (m Model) Tab() model.Partition {
	return m.tab
}

// SetTab switches to the given partition.
func (m *Model) SetTab(p model.Partition) {
	m.tab = p
	m.statusMsg = ""
	m.Reload("")
}

// Reload refreshes the view from the shopping state, keeping the cursor
// on focusID when it is still visible.
func (m *Model) Reload(focusID string) {
	if focusID == "" {
		if sel, ok := m.selectedItem(); ok {
			focusID = sel.ID
		}
	}

	m.store, m.hasStore = m.state.ActiveStore()

	var visible []model.Item
	if m.hasStore {
		visible = m.store.ItemsIn(m.tab)
	}

	items := make([]list.Item, len(visible))
	cursor := min(m.list.Index(), max(len(visible)-1, 0))
	for i, item := range visible {
		items[i] = ItemWrapper{Item: item}
		if item.ID == focusID {
			cursor = i
		}
	}

	m.list.SetDelegate(ItemDelegate{ShowQuantity: m.tab == model.PartitionArchive})
	m.list.SetItems(items)
	m.list.Select(cursor)
}

// Update handles messages for the shopping list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ItemsChangedMsg:
		m.statusMsg = msg.Status
		m.Reload(msg.FocusID)
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.handleInputKeys(msg)
		}
		return m.handleNormalKeys(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleInputKeys processes keys while the add-item input is focused.
func (m Model) handleInputKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		if text == "" {
			return m, nil
		}
		return m, m.addItem(text)

	case "esc":
		m.adding = false
		m.input.Blur()
		m.input.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleNormalKeys processes key input when the input is not focused.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.hasStore {
		if key.Matches(msg, m.keys.Back) {
			return m, func() tea.Msg { return BackMsg{} }
		}
		return m, nil
	}

	sel, hasSel := m.selectedItem()

	switch {
	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return BackMsg{} }

	case key.Matches(msg, m.keys.NextTab):
		m.SetTab(tabs[(tabIndex(m.tab)+1)%len(tabs)])
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.SetTab(tabs[(tabIndex(m.tab)+len(tabs)-1)%len(tabs)])
		return m, nil

	case key.Matches(msg, m.keys.Cards):
		return m, func() tea.Msg { return OpenCardsMsg{} }

	case key.Matches(msg, m.keys.New):
		m.SetTab(model.PartitionList)
		m.adding = true
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Toggle):
		if hasSel && m.tab != model.PartitionArchive {
			return m, m.toggleItem(sel)
		}

	case key.Matches(msg, m.keys.Delete):
		if hasSel {
			return m, m.deleteItem(sel)
		}

	case key.Matches(msg, m.keys.ArchiveAll):
		if m.tab == model.PartitionBasket {
			return m, m.archiveBasket()
		}

	case key.Matches(msg, m.keys.Archive):
		if hasSel && m.tab != model.PartitionArchive {
			return m, m.archiveItem(sel)
		}

	case key.Matches(msg, m.keys.Unarchive):
		if hasSel && m.tab == model.PartitionArchive {
			return m, m.unarchiveItem(sel)
		}

	case key.Matches(msg, m.keys.QuantityUp):
		if hasSel && m.tab == model.PartitionArchive {
			return m, m.updateQuantity(sel, 1)
		}

	case key.Matches(msg, m.keys.QuantityDown):
		if hasSel && m.tab == model.PartitionArchive && sel.Quantity > 1 {
			return m, m.updateQuantity(sel, -1)
		}

	case key.Matches(msg, m.keys.MoveUp):
		if hasSel && m.tab == model.PartitionList {
			m.moveSelected(-1)
		}

	case key.Matches(msg, m.keys.MoveDown):
		if hasSel && m.tab == model.PartitionList {
			m.moveSelected(1)
		}

	default:
		// Navigation keys (up/down/pgup/pgdn) go to the list.
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	return m, nil
}

// moveSelected drops the selected item onto its visible neighbour in the
// given direction. It runs inline so the next move key sees the new order.
func (m *Model) moveSelected(dir int) {
	idx := m.list.Index() + dir
	items := m.list.Items()
	if idx < 0 || idx >= len(items) {
		return
	}
	sel, _ := m.selectedItem()
	over, ok := items[idx].(ItemWrapper)
	if !ok {
		return
	}
	if m.state.ReorderItems(sel.ID, over.Item.ID) {
		m.statusMsg = ""
		m.Reload(sel.ID)
	}
}

func (m Model) selectedItem() (model.Item, bool) {
	w, ok := m.list.SelectedItem().(ItemWrapper)
	if !ok {
		return model.Item{}, false
	}
	return w.Item, true
}

func tabIndex(p model.Partition) int {
	for i, t := range tabs {
		if t == p {
			return i
		}
	}
	return 0
}

// View renders the tabs, the optional add-item input and the items.
func (m Model) View() string {
	if !m.hasStore {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray).
			Render("Select or create a store to start your list.")
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.tab == model.PartitionList {
		if m.adding {
			b.WriteString(m.input.View())
		} else {
			b.WriteString(theme.HintStyle.Render("press n to add an item"))
		}
		b.WriteString("\n\n")
	}

	if len(m.list.Items()) == 0 {
		b.WriteString(theme.EmptyStyle.Render(emptyMessage(m.tab)))
	} else {
		b.WriteString(m.list.View())
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.StatusMsgStyle.Render(m.statusMsg))
	}

	return lipgloss.NewStyle().Padding(0, 1).Width(m.width).Height(m.height).Render(b.String())
}

func (m Model) renderTabs() string {
	rendered := make([]string, 0, len(tabs))
	for _, p := range tabs {
		label := fmt.Sprintf("%s (%d)", p.Label(), m.store.Count(p))
		rendered = append(rendered, theme.TabStyle(p == m.tab).Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func emptyMessage(p model.Partition) string {
	switch p {
	case model.PartitionBasket:
		return "Your basket is empty."
	case model.PartitionArchive:
		return "Nothing archived yet."
	default:
		return "Your list is empty. Add some items!"
	}
}

// StoreName returns the active store's name, or "" when none is active.
func (m Model) StoreName() string {
	return m.store.Name
}

// KeyHints returns the status bar hints for the current tab.
func (m Model) KeyHints() string {
	if m.adding {
		return "enter add | esc done"
	}
	switch m.tab {
	case model.PartitionBasket:
		return "space return to list | a archive | A archive all | d delete | tab next | c cards | esc stores"
	case model.PartitionArchive:
		return "u restore | +/- quantity | d delete | tab next | c cards | esc stores"
	default:
		return "n add | space to basket | K/J move | a archive | d delete | tab next | c cards | esc stores"
	}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width-2, max(height-6, 1))
	m.input.Width = width - 6
}

func (m Model) addItem(text string) tea.Cmd {
	s := m.state
	return func() tea.Msg {
		s.AddItem(text)
		return ItemsChangedMsg{}
	}
}

func (m Model) toggleItem(item model.Item) tea.Cmd {
	s := m.state
	return func() tea.Msg {
		s.ToggleItem(item.ID)
		if item.Checked {
			return ItemsChangedMsg{Status: fmt.Sprintf("%s returned to list", item.Text)}
		}
		return ItemsChangedMsg{Status: fmt.Sprintf("%s in basket", item.Text)}
	}
}

func (m Model) deleteItem(item model.Item) tea.Cmd {
	s := m.state
	return func() tea.Msg {
		s.DeleteItem(item.ID)
		return ItemsChangedMsg{Status: fmt.Sprintf("%s deleted", item.Text)}
	}
}

func (m Model) archiveItem(item model.Item) tea.Cmd {
	s := m.state
	return func() tea.Msg {
		s.ArchiveItem(item.ID)
		return ItemsChangedMsg{Status: fmt.Sprintf("%s archived", item.Text)}
	}
}

func (m Model) unarchiveItem(item model.Item) tea.Cmd {
	s := m.state
	return func() tea.Msg {
		s.UnarchiveItem(item.ID)
		return ItemsChangedMsg{Status: fmt.Sprintf("%s restored to list", item.Text)}
	}
}

func (m Model) archiveBasket() tea.Cmd {
	s := m.state
	return func() tea.Msg {
		n := s.MoveAllBasketToArchive()
		return ItemsChangedMsg{Status: fmt.Sprintf("%d items archived", n)}
	}
}

func (m Model) updateQuantity(item model.Item, delta int) tea.Cmd {
	s := m.state
	return func() tea.Msg {
		s.UpdateItemQuantity(item.ID, delta)
		return ItemsChangedMsg{FocusID: item.ID}
	}
}


// ArchiveBasket archives every basket item. The command palette uses it.
func (m Model) ArchiveBasket() tea.Cmd {
	return m.archiveBasket()
}
