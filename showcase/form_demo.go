package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-aria/aria/pkg/form"
	"github.com/go-aria/aria/pkg/tui"
)

type formDemo struct {
	cfg    Config
	store  *form.Store
	fields []string
	inputs map[string]*textinput.Model
	focus  int
	status string
}

func newFormDemo(cfg Config) tea.Model {
	s := form.New(form.Options{})
	fields := []string{"name", "email"}
	inputs := make(map[string]*textinput.Model, len(fields))
	for i, name := range fields {
		s.RegisterField(name)
		input := textinput.New()
		input.Placeholder = name
		if i == 0 {
			input.Focus()
		}
		inputs[name] = &input
	}

	s.OnValidate(func(s *form.Store) error {
		for _, name := range fields {
			if v, _ := s.Value(name).(string); strings.TrimSpace(v) == "" {
				s.SetError(name, "required")
			}
		}
		if v, _ := s.Value("email").(string); v != "" && !strings.Contains(v, "@") {
			s.SetError("email", "not an email address")
		}
		return nil
	})

	m := &formDemo{cfg: cfg, store: s, fields: fields, inputs: inputs}
	s.OnSubmit(func(s *form.Store) error {
		name, _ := s.Value("name").(string)
		m.status = "submitted: " + name
		return nil
	})
	return m
}

func (m *formDemo) Init() tea.Cmd { return textinput.Blink }

func (m *formDemo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tui.Dispatch(msg) {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.store.Dispose()
		return m, tea.Quit
	case tea.KeyTab:
		m.store.SetTouched(m.fields[m.focus])
		m.inputs[m.fields[m.focus]].Blur()
		m.focus = (m.focus + 1) % len(m.fields)
		m.inputs[m.fields[m.focus]].Focus()
		return m, nil
	case tea.KeyEnter:
		if err := m.store.Submit(); err != nil {
			m.status = "fix the errors above"
		}
		return m, nil
	}
	name := m.fields[m.focus]
	input := m.inputs[name]
	next, cmd := input.Update(msg)
	*input = next
	m.store.SetValue(name, next.Value())
	return m, cmd
}

func (m *formDemo) View() string {
	st := m.cfg.Styles
	lines := []string{"Form — tab between fields, enter submits"}
	for _, name := range m.fields {
		lines = append(lines, m.inputs[name].View())
		if msg := m.store.Error(name); msg != "" && m.store.Touched(name) {
			lines = append(lines, st.Disabled.Render("  "+msg))
		}
	}
	if m.status != "" {
		lines = append(lines, "", m.status)
	}
	lines = append(lines, "", "tab next field · enter submit · esc quit")
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
