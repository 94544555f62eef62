package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-aria/aria/pkg/collection"
	"github.com/go-aria/aria/pkg/combobox"
	"github.com/go-aria/aria/pkg/composite"
	"github.com/go-aria/aria/pkg/tui"
)

var comboboxSuggestions = []string{
	"amsterdam", "athens", "berlin", "bratislava", "brussels",
	"copenhagen", "dublin", "helsinki", "lisbon", "ljubljana",
}

type comboboxDemo struct {
	cfg   Config
	store *combobox.Store
	input textinput.Model

	unrender map[string]func()
}

func newComboboxDemo(cfg Config) tea.Model {
	input := textinput.New()
	input.Placeholder = "city"
	input.Focus()

	m := &comboboxDemo{
		cfg:      cfg,
		store:    combobox.New(combobox.Options{ResetValueOnHide: true}),
		input:    input,
		unrender: make(map[string]func()),
	}
	m.store.Show()
	m.applyFilter()
	return m
}

func (m *comboboxDemo) setDispatcher(fn func(func())) {
	m.store.Collection().Scheduler().SetDispatcher(fn)
}

// applyFilter re-renders the suggestion items matching the input text,
// exercising the register/unregister round-trip.
func (m *comboboxDemo) applyFilter() {
	filter := strings.ToLower(m.store.Value())
	row := 0
	for _, id := range comboboxSuggestions {
		matches := strings.HasPrefix(id, filter)
		cancel, rendered := m.unrender[id]
		switch {
		case matches && !rendered:
			m.unrender[id] = m.store.RenderItem(composite.Item{
				Base: collection.Base{ID: id, Element: tui.CellElement{Row: row}},
			})
		case !matches && rendered:
			cancel()
			delete(m.unrender, id)
		}
		if matches {
			row++
		}
	}
}

func (m *comboboxDemo) Init() tea.Cmd { return textinput.Blink }

func (m *comboboxDemo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tui.Dispatch(msg) {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	km := m.cfg.Keymap
	switch {
	case keyMsg.Type == tea.KeyCtrlC, keyMsg.Type == tea.KeyEsc:
		m.store.Dispose()
		return m, tea.Quit
	case key.Matches(keyMsg, km.Down), key.Matches(keyMsg, km.Up):
		km.Handle(keyMsg, m.store.Store)
		return m, nil
	case key.Matches(keyMsg, km.Select):
		if id, ok := m.store.Active().Item(); ok {
			m.store.SelectValue(id)
			m.store.Show()
			m.input.SetValue(m.store.Value())
			m.applyFilter()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.store.Value() {
		m.store.SetValue(m.input.Value())
		m.applyFilter()
	}
	return m, cmd
}

func (m *comboboxDemo) View() string {
	st := m.cfg.Styles
	active := m.store.Active()
	lines := []string{"Combobox", m.input.View()}
	for _, item := range m.store.RenderedItems() {
		style := st.Item
		if active == composite.ID(item.ID) {
			style = st.Active
		}
		if m.store.Selected(item.ID) {
			style = st.Selected
		}
		lines = append(lines, style.Render(item.ID))
	}
	lines = append(lines, "", "type to filter · ↑/↓ move · enter select · esc quit")
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
