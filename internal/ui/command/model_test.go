package command

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"basket", "basket", false},
		{"  Archive   Basket ", "archive basket", false},
		{"ARCHIVE", "archive", false},
		{"q", "quit", false},
		{"st", "stores", false},
		{"c", "cards", false},
		{"arch", "", true},
		{"checkout", "", true},
		{"   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_AmbiguousNamesCandidates(t *testing.T) {
	_, err := Parse("arch")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "archive, archive basket") {
		t.Errorf("error = %q, want both candidates", err)
	}
}

func TestComplete(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"b", "basket"},
		{"Sto", "stores"},
		{"arch", "archive"},
		{"archive ", "archive basket"},
		{"xyz", "xyz"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Complete(tt.input); got != tt.want {
			t.Errorf("Complete(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestUpdate_TabThenEnterRunsCommand(t *testing.T) {
	// Arrange
	m := New(80, 24)
	m.input.SetValue("archive b")

	// Act
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	completed := m.input.Value()
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// Assert
	if completed != "archive basket" {
		t.Errorf("after tab input = %q, want %q", completed, "archive basket")
	}
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if got := cmd(); got != CommandMsg("archive basket") {
		t.Errorf("msg = %#v, want CommandMsg(archive basket)", got)
	}
	if m.input.Value() != "" {
		t.Errorf("input not reset: %q", m.input.Value())
	}
}

func TestUpdate_UnknownCommandKeepsInput(t *testing.T) {
	// Arrange
	m := New(80, 24)
	m.input.SetValue("checkout")

	// Act
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	// Assert
	if cmd != nil {
		t.Errorf("unknown command should not emit a message, got %#v", cmd())
	}
	if m.input.Value() != "checkout" {
		t.Errorf("input = %q, want it kept for correction", m.input.Value())
	}
	if !strings.Contains(m.View(), `unknown command "checkout"`) {
		t.Error("view does not show the error")
	}
}

func TestView_HintNarrowsToMatches(t *testing.T) {
	m := New(120, 24)
	m.input.SetValue("ba")

	view := m.View()

	if !strings.Contains(view, "basket") {
		t.Error("hint missing basket")
	}
	if strings.Contains(view, "stores") {
		t.Error("hint should not list stores for input \"ba\"")
	}
}
