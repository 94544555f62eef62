package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-aria/aria/pkg/composite"
	"github.com/go-aria/aria/pkg/listbox"
	"github.com/go-aria/aria/pkg/tab"
	"github.com/go-aria/aria/pkg/toolbar"
)

// Styles groups the lipgloss styles used by the view helpers.
type Styles struct {
	Item     lipgloss.Style
	Active   lipgloss.Style
	Selected lipgloss.Style
	Disabled lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Panel    lipgloss.Style
	Tooltip  lipgloss.Style
}

// DefaultStyles returns a plain adaptive style set.
func DefaultStyles() Styles {
	return Styles{
		Item:     lipgloss.NewStyle().Padding(0, 1),
		Active:   lipgloss.NewStyle().Padding(0, 1).Reverse(true),
		Selected: lipgloss.NewStyle().Padding(0, 1).Bold(true),
		Disabled: lipgloss.NewStyle().Padding(0, 1).Faint(true),
		Tab:      lipgloss.NewStyle().Padding(0, 2),
		TabOn:    lipgloss.NewStyle().Padding(0, 2).Bold(true).Underline(true),
		Panel:    lipgloss.NewStyle().Padding(1, 2),
		Tooltip:  lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder()),
	}
}

// itemStyle picks the style for one item given its state.
func (st Styles) itemStyle(disabled, active, selected bool) lipgloss.Style {
	switch {
	case disabled:
		return st.Disabled
	case active:
		return st.Active
	case selected:
		return st.Selected
	default:
		return st.Item
	}
}

// ListboxView renders a listbox's items vertically, marking the active
// and selected entries. A closed listbox renders its selection summary
// only.
func ListboxView(s *listbox.Store, st Styles) string {
	if !s.Open() {
		return st.Item.Render(strings.Join(s.Value(), ", "))
	}
	active := s.Active()
	lines := make([]string, 0, len(s.RenderedItems()))
	for _, item := range s.RenderedItems() {
		style := st.itemStyle(item.Disabled, active == composite.ID(item.ID), s.Selected(item.ID))
		lines = append(lines, style.Render(item.ID))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// ToolbarView renders a toolbar's items horizontally.
func ToolbarView(s *toolbar.Store, st Styles) string {
	active := s.Active()
	cells := make([]string, 0, len(s.RenderedItems()))
	for _, item := range s.RenderedItems() {
		style := st.itemStyle(item.Disabled, active == composite.ID(item.ID), false)
		cells = append(cells, style.Render(item.ID))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// TabsView renders a tab bar and the selected tab's panel content below
// it.
func TabsView(s *tab.Store, st Styles) string {
	selected := s.SelectedID()
	cells := make([]string, 0, len(s.RenderedItems()))
	for _, item := range s.RenderedItems() {
		style := st.Tab
		if item.ID == selected {
			style = st.TabOn
		}
		if item.Disabled {
			style = st.Disabled
		}
		cells = append(cells, style.Render(item.ID))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Bottom, cells...)
	panel, ok := s.SelectedPanel()
	if !ok {
		return bar
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, st.Panel.Render(panel.ID))
}

// TooltipView renders tooltip content in a bordered box.
func TooltipView(text string, st Styles) string {
	return st.Tooltip.Render(text)
}
