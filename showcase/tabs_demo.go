package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-aria/aria/pkg/collection"
	"github.com/go-aria/aria/pkg/composite"
	"github.com/go-aria/aria/pkg/tab"
	"github.com/go-aria/aria/pkg/tui"
)

type tabsDemo struct {
	cfg     Config
	store   *tab.Store
	content map[string]string
}

func newTabsDemo(cfg Config) tea.Model {
	s := tab.New(tab.Options{})
	content := map[string]string{
		"p-overview": "Stores hold widget state; views subscribe to slices of it.",
		"p-usage":    "Register items as they mount, move focus with the keymap.",
		"p-credits":  "Built on composable reactive stores.",
	}
	for i, id := range []string{"overview", "usage", "credits"} {
		s.RenderItem(composite.Item{
			Base: collection.Base{ID: id, Element: tui.CellElement{Col: i}},
		})
		s.RegisterPanel(tab.Panel{Base: collection.Base{ID: "p-" + id}, TabID: id})
	}
	return &tabsDemo{cfg: cfg, store: s, content: content}
}

func (m *tabsDemo) setDispatcher(fn func(func())) {
	m.store.Collection().Scheduler().SetDispatcher(fn)
}

func (m *tabsDemo) Init() tea.Cmd { return nil }

func (m *tabsDemo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
	default:
		m.cfg.Keymap.Handle(keyMsg, m.store.Store)
	}
	return m, nil
}

func (m *tabsDemo) View() string {
	view := tui.TabsView(m.store, m.cfg.Styles)
	body := ""
	if panel, ok := m.store.SelectedPanel(); ok {
		body = m.content[panel.ID]
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		"Tabs — automatic activation",
		view,
		body,
		"",
		"←/→ move and select · q quit",
	)
}
