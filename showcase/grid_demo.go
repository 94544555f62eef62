package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-aria/aria/pkg/collection"
	"github.com/go-aria/aria/pkg/composite"
	"github.com/go-aria/aria/pkg/tui"
)

// gridRows is intentionally ragged: the last row is shorter, so focus
// shift has something to do.
var gridRows = [][]string{
	{"a1", "a2", "a3", "a4"},
	{"b1", "b2", "b3", "b4"},
	{"c1", "c2"},
}

type gridDemo struct {
	cfg   Config
	store *composite.Store
}

func newGridDemo(cfg Config) tea.Model {
	s := composite.New(composite.Options{
		FocusShift: true,
		FocusWrap:  composite.WrapHorizontal,
	})
	for r, row := range gridRows {
		for c, id := range row {
			s.RenderItem(composite.Item{
				Base:  collection.Base{ID: id, Element: tui.CellElement{Row: r, Col: c}},
				RowID: fmt.Sprintf("row-%d", r),
			})
		}
	}
	return &gridDemo{cfg: cfg, store: s}
}

func (m *gridDemo) setDispatcher(fn func(func())) {
	m.store.Collection().Scheduler().SetDispatcher(fn)
}

func (m *gridDemo) Init() tea.Cmd { return nil }

func (m *gridDemo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		m.cfg.Keymap.Handle(keyMsg, m.store)
	}
	return m, nil
}

func (m *gridDemo) View() string {
	st := m.cfg.Styles
	active := m.store.Active()
	lines := []string{"Grid — ragged rows, focus shift, horizontal wrap"}
	for _, row := range gridRows {
		cells := make([]string, 0, len(row))
		for _, id := range row {
			style := st.Item
			if active == composite.ID(id) {
				style = st.Active
			}
			cells = append(cells, style.Render(id))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	lines = append(lines, "", "arrows move · wrap past row ends · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
