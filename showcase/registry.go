package main

import tea "github.com/charmbracelet/bubbletea"

// Demo represents a showcase demo page.
type Demo struct {
	Name     string
	Title    string
	Subtitle string
	New      func(cfg Config) tea.Model
}

// demos is the registry of all showcase demos.
// Add new demos here to automatically update listing and dispatch.
var demos = []Demo{
	{"listbox", "Listbox", "Single and multi select with a popup", newListboxDemo},
	{"combobox", "Combobox", "Filtering input with suggestions", newComboboxDemo},
	{"tabs", "Tabs", "Tablist with automatic activation and panels", newTabsDemo},
	{"toolbar", "Toolbar", "Horizontal looping item bar", newToolbarDemo},
	{"grid", "Grid", "Two-dimensional navigation with focus shift", newGridDemo},
	{"tooltip", "Tooltip", "Timed tooltips sharing one activation session", newTooltipDemo},
	{"form", "Form", "Field values, validation, and submit", newFormDemo},
}

func findDemo(name string) (Demo, bool) {
	for _, d := range demos {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}
