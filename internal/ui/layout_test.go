package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestLayout_ContentHeight(t *testing.T) {
	tests := []struct {
		height int
		want   int
	}{
		{24, 22},
		{2, 0},
		{1, 0},
	}

	for _, tt := range tests {
		if got := NewLayout(80, tt.height).ContentHeight(); got != tt.want {
			t.Errorf("ContentHeight() with height %d = %d, want %d", tt.height, got, tt.want)
		}
	}
}

func TestHeader_Summary(t *testing.T) {
	tests := []struct {
		name   string
		header Header
		want   string
	}{
		{
			name:   "no store",
			header: Header{Title: "Shopping List"},
			want:   "no store selected",
		},
		{
			name:   "stores view without store",
			header: Header{View: "Stores"},
			want:   "Stores · no store selected",
		},
		{
			name:   "basket tab",
			header: Header{Store: "Mercator", View: "Basket", List: 3, Basket: 1, Archive: 2},
			want:   "Mercator › Basket · 3 to buy · 1 in basket · 2 archived",
		},
		{
			name:   "store without view",
			header: Header{Store: "Spar"},
			want:   "Spar · 0 to buy · 0 in basket · 0 archived",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.header.Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLayout_RenderHeaderFillsWidth(t *testing.T) {
	l := NewLayout(100, 20)

	header := l.RenderHeader(Header{Title: "Shopping List", Store: "Market", View: "List", List: 2})

	if !strings.Contains(header, "Shopping List") || !strings.Contains(header, "Market › List · 2 to buy") {
		t.Errorf("header %q missing title or summary", header)
	}
	if w := lipgloss.Width(header); w != 100 {
		t.Errorf("header width = %d, want 100", w)
	}
}

func TestLayout_RenderHeaderDropsSummaryWhenNarrow(t *testing.T) {
	l := NewLayout(30, 20)

	header := l.RenderHeader(Header{Title: "Shopping List", Store: "Market", View: "List"})

	if !strings.Contains(header, "Shopping List") {
		t.Errorf("header %q missing title", header)
	}
	if strings.Contains(header, "Market") {
		t.Errorf("header %q should drop the summary at width 30", header)
	}
}

func TestLayout_RenderStatusBarClipsToWidth(t *testing.T) {
	l := NewLayout(20, 10)

	bar := l.RenderStatusBar("q quit | ? help | : command | enter open")

	if w := lipgloss.Width(bar); w != 20 {
		t.Errorf("status bar width = %d, want 20", w)
	}
}
