package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/shopping-list/internal/theme"
)

// Layout manages the terminal layout dimensions.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
}

// NewLayout creates a Layout with the given terminal dimensions.
// HeaderHeight and StatusBarHeight default to 1.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height available for the main content area,
// accounting for the header and status bar.
func (l Layout) ContentHeight() int {
	h := l.Height - l.HeaderHeight - l.StatusBarHeight
	if h < 0 {
		return 0
	}
	return h
}

// Header describes the top bar. Store is empty when no store is active,
// in which case the counts are ignored.
type Header struct {
	Title   string
	Store   string
	View    string
	List    int
	Basket  int
	Archive int
}

// Summary is the right-hand side of the header, for example
// "Mercator › Basket · 3 to buy · 1 in basket · 2 archived".
func (h Header) Summary() string {
	if h.Store == "" {
		if h.View == "" {
			return "no store selected"
		}
		return h.View + " · no store selected"
	}
	where := h.Store
	if h.View != "" {
		where += " › " + h.View
	}
	return fmt.Sprintf("%s · %d to buy · %d in basket · %d archived",
		where, h.List, h.Basket, h.Archive)
}

// RenderHeader renders the top header bar with the title on the left and
// the store summary on the right.
func (l Layout) RenderHeader(h Header) string {
	return l.fillRow(theme.HeaderStyle, theme.HeaderStyle.Render(h.Title), h.Summary())
}

// RenderStatusBar renders the bottom status bar with keyboard hints.
// Hints wider than the terminal are cut off.
func (l Layout) RenderStatusBar(hints string) string {
	style := theme.StatusBarStyle
	if l.Width > 0 {
		style = style.MaxWidth(l.Width)
	}
	return l.fillRow(theme.StatusBarStyle, style.Render(hints), "")
}

// fillRow lays out left and right across the full width, filling the gap
// with the style's background. right is dropped when both do not fit.
func (l Layout) fillRow(style lipgloss.Style, left, right string) string {
	var rightRendered string
	if right != "" {
		rightRendered = style.Render(right)
		if lipgloss.Width(left)+lipgloss.Width(rightRendered) > l.Width {
			rightRendered = ""
		}
	}

	gap := l.Width - lipgloss.Width(left) - lipgloss.Width(rightRendered)
	if gap < 0 {
		gap = 0
	}

	filler := lipgloss.NewStyle().
		Width(gap).
		Background(style.GetBackground()).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, left, filler, rightRendered)
}

// RenderWithFrame composes a full terminal view by vertically joining
// the header, content area, and status bar.
func (l Layout) RenderWithFrame(
	header string,
	content string,
	statusBar string,
) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		statusBar,
	)
}
