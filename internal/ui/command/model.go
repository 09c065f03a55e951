package command

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/shopping-list/internal/theme"
)

// CommandMsg is emitted when the user executes a command. It always
// carries one of Names.
type CommandMsg string

// Names lists the commands the palette understands.
var Names = []string{"stores", "list", "basket", "archive", "cards", "archive basket", "quit"}

// Parse resolves typed input to one of Names. Case and repeated spaces
// are ignored. An exact name wins over longer names it prefixes, and
// any prefix that matches a single name selects it.
func Parse(input string) (string, error) {
	in := normalize(input)
	if in == "" {
		return "", fmt.Errorf("empty command")
	}
	matches := Matches(in)
	for _, name := range matches {
		if name == in {
			return name, nil
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("unknown command %q", in)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%q could be %s", in, strings.Join(matches, ", "))
	}
}

// Matches returns the names that start with input, in Names order.
func Matches(input string) []string {
	in := strings.ToLower(strings.TrimLeft(input, " "))
	var out []string
	for _, name := range Names {
		if strings.HasPrefix(name, in) {
			out = append(out, name)
		}
	}
	return out
}

// Complete extends input to the longest prefix shared by every name it
// matches. Input that matches nothing is returned unchanged.
func Complete(input string) string {
	matches := Matches(input)
	if len(matches) == 0 {
		return input
	}
	prefix := matches[0]
	for _, name := range matches[1:] {
		for !strings.HasPrefix(name, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Model is the command palette view.
type Model struct {
	input  textinput.Model
	err    string
	width  int
	height int
}

// New creates a new command palette model.
func New(width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "type a command..."
	ti.Prompt = ": "
	ti.Focus()
	ti.Width = width - 6

	return Model{
		input:  ti,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the command palette. Enter runs the typed
// command if it resolves; otherwise the input stays for correction.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			name, err := Parse(m.input.Value())
			if err != nil {
				m.err = err.Error()
				return m, nil
			}
			m.input.Reset()
			m.err = ""
			return m, func() tea.Msg {
				return CommandMsg(name)
			}
		case "tab":
			m.input.SetValue(Complete(m.input.Value()))
			m.input.CursorEnd()
			m.err = ""
			return m, nil
		}
		m.err = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the command palette. The hint line narrows to the names
// that match what has been typed.
func (m Model) View() string {
	title := theme.TitleStyle.Render("Command Palette")
	input := m.input.View()

	var hint string
	switch {
	case m.err != "":
		hint = theme.ErrorStyle.Render(m.err)
	default:
		names := Matches(m.input.Value())
		if len(names) == 0 {
			names = Names
		}
		hint = theme.HintStyle.Render(strings.Join(names, " · ") + "  (tab completes)")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, input, "", hint)

	return theme.PanelStyle.
		Width(max(m.width-4, 0)).
		Render(content)
}

// SetSize updates the command palette dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 6
}

// Focus gives keyboard focus to the text input and clears any previous
// input.
func (m *Model) Focus() tea.Cmd {
	m.input.Reset()
	m.err = ""
	return m.input.Focus()
}
