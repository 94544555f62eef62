package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-aria/aria/pkg/tooltip"
	"github.com/go-aria/aria/pkg/tui"
)

type tooltipDemo struct {
	cfg      Config
	registry *tooltip.Registry
	tips     []*tooltip.Store
	labels   []string
	hints    []string
	hover    int
}

func newTooltipDemo(cfg Config) tea.Model {
	registry := tooltip.NewRegistry()
	labels := []string{"Save", "Publish", "Delete"}
	hints := []string{
		"Write changes to disk",
		"Make the document public",
		"Remove the document forever",
	}
	tips := make([]*tooltip.Store, len(labels))
	for i := range labels {
		tips[i] = tooltip.New(tooltip.Options{Registry: registry})
	}
	m := &tooltipDemo{
		cfg: cfg, registry: registry,
		tips: tips, labels: labels, hints: hints, hover: -1,
	}
	return m
}

func (m *tooltipDemo) setDispatcher(fn func(func())) {
	for _, tip := range m.tips {
		tip.SetDispatcher(fn)
	}
}

func (m *tooltipDemo) Init() tea.Cmd { return nil }

// hoverTo simulates the pointer leaving one trigger and entering another.
func (m *tooltipDemo) hoverTo(next int) {
	if m.hover == next {
		return
	}
	if m.hover >= 0 {
		m.tips[m.hover].ScheduleHide()
	}
	m.hover = next
	if next >= 0 {
		m.tips[next].ScheduleShow()
	}
}

func (m *tooltipDemo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tui.Dispatch(msg) {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.Type {
	case tea.KeyCtrlC:
		for _, tip := range m.tips {
			tip.Dispose()
		}
		return m, tea.Quit
	case tea.KeyRight:
		m.hoverTo((m.hover + 1 + len(m.tips)) % len(m.tips))
	case tea.KeyLeft:
		if m.hover < 0 {
			m.hoverTo(len(m.tips) - 1)
		} else {
			m.hoverTo((m.hover - 1 + len(m.tips)) % len(m.tips))
		}
	case tea.KeyEsc:
		m.hoverTo(-1)
	default:
		if keyMsg.String() == "q" {
			for _, tip := range m.tips {
				tip.Dispose()
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *tooltipDemo) View() string {
	st := m.cfg.Styles
	buttons := make([]string, len(m.labels))
	tipLine := ""
	for i, label := range m.labels {
		style := st.Item
		if i == m.hover {
			style = st.Active
		}
		buttons[i] = style.Render(label)
		if m.tips[i].Open() {
			tipLine = tui.TooltipView(m.hints[i], st)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		"Tooltip — first shows after a delay, the next ones instantly",
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
		tipLine,
		"",
		"←/→ hover · esc leave · q quit",
	)
}
