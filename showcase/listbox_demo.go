package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-aria/aria/pkg/collection"
	"github.com/go-aria/aria/pkg/composite"
	"github.com/go-aria/aria/pkg/listbox"
	"github.com/go-aria/aria/pkg/tui"
)

type listboxDemo struct {
	cfg   Config
	store *listbox.Store
}

func newListboxDemo(cfg Config) tea.Model {
	s := listbox.New(listbox.Options{
		Composite: composite.Options{Orientation: composite.OrientationVertical},
		Multiple:  true,
	})
	for i, id := range []string{"Apple", "Banana", "Cherry", "Durian", "Elderberry"} {
		s.RenderItem(composite.Item{
			Base: collection.Base{ID: id, Element: tui.CellElement{Row: i}},
		})
	}
	return &listboxDemo{cfg: cfg, store: s}
}

func (m *listboxDemo) setDispatcher(fn func(func())) {
	m.store.Collection().Scheduler().SetDispatcher(fn)
}

func (m *listboxDemo) Init() tea.Cmd { return nil }

func (m *listboxDemo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tui.Dispatch(msg) {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case keyMsg.Type == tea.KeyCtrlC, keyMsg.String() == "q":
		m.store.Dispose()
		return m, tea.Quit
	case key.Matches(keyMsg, m.cfg.Keymap.Toggle):
		m.store.Toggle()
	case key.Matches(keyMsg, m.cfg.Keymap.Select):
		if id, ok := m.store.Active().Item(); ok {
			m.store.ToggleValue(id)
		}
	default:
		m.cfg.Keymap.Handle(keyMsg, m.store.Store)
	}
	return m, nil
}

func (m *listboxDemo) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		"Listbox — multi select",
		tui.ListboxView(m.store, m.cfg.Styles),
		"",
		"space open/close · ↑/↓ move · enter toggle value · q quit",
	)
}
