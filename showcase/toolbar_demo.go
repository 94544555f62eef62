package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-aria/aria/pkg/collection"
	"github.com/go-aria/aria/pkg/composite"
	"github.com/go-aria/aria/pkg/toolbar"
	"github.com/go-aria/aria/pkg/tui"
)

type toolbarDemo struct {
	cfg   Config
	store *toolbar.Store
	last  string
}

func newToolbarDemo(cfg Config) tea.Model {
	s := toolbar.New(toolbar.Options{})
	for i, id := range []string{"bold", "italic", "underline", "undo", "redo"} {
		s.RenderItem(composite.Item{
			Base: collection.Base{ID: id, Element: tui.CellElement{Col: i}},
		})
	}
	return &toolbarDemo{cfg: cfg, store: s}
}

func (m *toolbarDemo) setDispatcher(fn func(func())) {
	m.store.Collection().Scheduler().SetDispatcher(fn)
}

func (m *toolbarDemo) Init() tea.Cmd { return nil }

func (m *toolbarDemo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
	case key.Matches(keyMsg, m.cfg.Keymap.Select):
		if id, ok := m.store.Active().Item(); ok {
			m.last = id
		}
	default:
		m.cfg.Keymap.Handle(keyMsg, m.store.Store)
	}
	return m, nil
}

func (m *toolbarDemo) View() string {
	status := "nothing activated yet"
	if m.last != "" {
		status = "activated: " + m.last
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		"Toolbar — loops at the ends",
		tui.ToolbarView(m.store, m.cfg.Styles),
		status,
		"",
		"←/→ move · enter activate · q quit",
	)
}
