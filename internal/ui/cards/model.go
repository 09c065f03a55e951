package cards

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/shopping-list/internal/keys"
	"github.com/nhle/shopping-list/internal/model"
	"github.com/nhle/shopping-list/internal/shop"
	"github.com/nhle/shopping-list/internal/theme"
)

// CloseMsg signals the parent to close the cards view.
type CloseMsg struct{}

// CardsChangedMsg signals that cards were added or removed.
type CardsChangedMsg struct{}

type cardMode int

const (
	modeList cardMode = iota
	modeForm
	modeConfirmDelete
	modeDetail
)

type formBindings struct {
	title   string
	barcode string
	confirm bool
}

type cardSavedMsg struct{ added bool }
type cardDeletedMsg struct{ deleted bool }

// Model is the loyalty card manager for the active store.
type Model struct {
	mode        cardMode
	state       *shop.State
	keys        *keys.KeyMap
	storeName   string
	cards       []model.Card
	selectedIdx int
	form        *huh.Form
	confirmForm *huh.Form
	fb          *formBindings
	statusMsg   string
	width       int
	height      int
}

// New creates a new card manager model.
func New(s *shop.State, k *keys.KeyMap, width, height int) Model {
	m := Model{
		mode:   modeList,
		state:  s,
		keys:   k,
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
	m.Reload()
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Reload refreshes the cards of the active store.
func (m *Model) Reload() {
	st, ok := m.state.ActiveStore()
	if !ok {
		m.storeName = ""
		m.cards = nil
	} else {
		m.storeName = st.Name
		m.cards = st.Cards
	}
	if m.selectedIdx >= len(m.cards) {
		m.selectedIdx = max(len(m.cards)-1, 0)
	}
}

// Capturing reports whether a form has focus.
func (m Model) Capturing() bool {
	return m.mode == modeForm || m.mode == modeConfirmDelete
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case cardSavedMsg:
		m.mode = modeList
		if msg.added {
			m.statusMsg = "Card added"
			m.Reload()
			m.selectedIdx = max(len(m.cards)-1, 0)
		}
		return m, func() tea.Msg { return CardsChangedMsg{} }

	case cardDeletedMsg:
		m.mode = modeList
		if msg.deleted {
			m.statusMsg = "Card deleted"
		}
		m.Reload()
		return m, func() tea.Msg { return CardsChangedMsg{} }

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
	case modeDetail:
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Select) {
			m.mode = modeList
		}
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return CloseMsg{} }

	case key.Matches(msg, m.keys.Down):
		if len(m.cards) > 0 {
			m.selectedIdx = (m.selectedIdx + 1) % len(m.cards)
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if len(m.cards) > 0 {
			m.selectedIdx--
			if m.selectedIdx < 0 {
				m.selectedIdx = len(m.cards) - 1
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if _, ok := m.selected(); ok {
			m.mode = modeDetail
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		if m.storeName == "" {
			return m, nil
		}
		m.fb.title = ""
		m.fb.barcode = ""
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

func (m Model) selected() (model.Card, bool) {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.cards) {
		return model.Card{}, false
	}
	return m.cards[m.selectedIdx], true
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func (m Model) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Card title").
				Placeholder("e.g. Mercator Pika").
				Value(&m.fb.title).
				Validate(required("title")),
			huh.NewInput().
				Title("Barcode value").
				Placeholder("Number printed under the barcode").
				Value(&m.fb.barcode).
				Validate(required("barcode value")),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) buildConfirmForm() *huh.Form {
	title := ""
	if c, ok := m.selected(); ok {
		title = c.Title
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete card %q?", title)).
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
		cmd := m.addCard(m.fb.title, m.fb.barcode)
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
		c, ok := m.selected()
		m.confirmForm = nil
		m.mode = modeList
		if m.fb.confirm && ok {
			return m, m.deleteCard(c.ID)
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

// View renders the card manager.
func (m Model) View() string {
	switch m.mode {
	case modeForm:
		return m.viewForm(m.form)
	case modeConfirmDelete:
		return m.viewForm(m.confirmForm)
	case modeDetail:
		return m.viewDetail()
	default:
		return m.viewList()
	}
}

func (m Model) viewList() string {
	var b strings.Builder

	if m.storeName == "" {
		b.WriteString(theme.EmptyStyle.Render("Select or create a store to start your list."))
		return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Height(m.height).Render(b.String())
	}

	b.WriteString(theme.TitleStyle.Render(fmt.Sprintf("Loyalty cards · %s", m.storeName)))
	b.WriteString("\n\n")

	if len(m.cards) == 0 {
		b.WriteString(theme.EmptyStyle.Render("No cards yet. Press 'n' to add one."))
	} else {
		for i, c := range m.cards {
			label := fmt.Sprintf("%s  %s", c.Title, theme.HintStyle.Render(c.BarcodeValue))
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
	b.WriteString(theme.HintStyle.Render("enter show | n new | d delete | esc back"))

	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Height(m.height).Render(b.String())
}

func (m Model) viewDetail() string {
	c, ok := m.selected()
	if !ok {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.TitleStyle.Render(c.Title),
		"",
		theme.BarcodeStyle.Render(c.BarcodeValue),
		"",
		theme.HintStyle.Render("esc back"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) viewForm(f *huh.Form) string {
	if f == nil {
		return ""
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(f.View())
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) formWidth() int {
	return min(max(m.width-4, 40), 100)
}

func (m Model) formHeight() int {
	return max(m.height-4, 10)
}

func (m Model) addCard(title, barcode string) tea.Cmd {
	s := m.state
	return func() tea.Msg {
		return cardSavedMsg{added: s.AddCard(strings.TrimSpace(title), strings.TrimSpace(barcode))}
	}
}

func (m Model) deleteCard(id string) tea.Cmd {
	s := m.state
	return func() tea.Msg {
		return cardDeletedMsg{deleted: s.DeleteCard(id)}
	}
}
