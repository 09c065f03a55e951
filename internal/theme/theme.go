package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/shopping-list/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorIndigo = lipgloss.AdaptiveColor{Dark: "#818CF8", Light: "#4F46E5"}
	ColorPurple = lipgloss.AdaptiveColor{Dark: "#C084FC", Light: "#7E22CE"}
	ColorGreen  = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed    = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorGray   = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite  = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorIndigo).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// PanelStyle wraps overlay content such as help and the command palette.
var PanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// TitleStyle is the bold heading inside a view.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	MarginBottom(1)

// ListItemStyle is the base style for items in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused list item.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorIndigo).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorIndigo)

// EmptyStyle renders empty-state guidance.
var EmptyStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// StatusMsgStyle renders transient feedback under a view.
var StatusMsgStyle = lipgloss.NewStyle().
	Foreground(ColorYellow).
	Italic(true)

// ErrorStyle renders input that could not be acted on.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorRed)

// HintStyle is used for per-view keyboard hints.
var HintStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// BarcodeStyle frames a card's barcode value.
var BarcodeStyle = lipgloss.NewStyle().
	Bold(true).
	Padding(1, 4).
	Foreground(ColorWhite).
	Border(lipgloss.ThickBorder()).
	BorderForeground(ColorPurple)

// TabStyle returns the style for a tab label.
func TabStyle(active bool) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 2)
	if active {
		return base.Bold(true).Foreground(ColorWhite).Background(ColorIndigo)
	}
	return base.Foreground(ColorGray)
}

// PartitionStyle returns the text style for items in the given partition.
func PartitionStyle(p model.Partition) lipgloss.Style {
	base := lipgloss.NewStyle()

	switch p {
	case model.PartitionBasket:
		return base.Foreground(ColorGray).Strikethrough(true)
	case model.PartitionArchive:
		return base.Foreground(ColorGray)
	default:
		return base.Foreground(ColorWhite)
	}
}
