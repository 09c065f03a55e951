package shoplist

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/shopping-list/internal/model"
	"github.com/nhle/shopping-list/internal/theme"
)

// ItemWrapper wraps a model.Item so it can be used in a bubbles/list.
type ItemWrapper struct {
	Item model.Item
}

// FilterValue returns the string used for filtering.
func (w ItemWrapper) FilterValue() string { return w.Item.Text }

// Title returns the item text.
func (w ItemWrapper) Title() string { return w.Item.Text }

// Description returns the item's partition name.
func (w ItemWrapper) Description() string { return w.Item.Partition().String() }

// ItemDelegate implements list.ItemDelegate for rendering shopping items.
type ItemDelegate struct {
	// ShowQuantity renders the quantity next to the text.
	ShowQuantity bool
}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single item line.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	wrapper, ok := item.(ItemWrapper)
	if !ok {
		return
	}
	fmt.Fprint(w, d.renderLine(wrapper.Item, index == m.Index()))
}

func (d ItemDelegate) renderLine(item model.Item, isSelected bool) string {
	p := item.Partition()

	var prefix string
	switch p {
	case model.PartitionBasket:
		prefix = "✓"
	case model.PartitionArchive:
		prefix = "▣"
	default:
		prefix = "○"
	}

	line := prefix + " " + theme.PartitionStyle(p).Render(item.Text)
	if d.ShowQuantity {
		line += theme.HintStyle.Render(fmt.Sprintf("  ×%d", item.Quantity))
	}

	if isSelected {
		return theme.SelectedItemStyle.Render(line)
	}
	return theme.ListItemStyle.Render(line)
}
