package tui

import tea "github.com/charmbracelet/bubbletea"

// TaskMsg carries a deferred store callback into a bubbletea update
// loop. Stores are not thread-safe, so timer callbacks must run inside
// Update rather than on the timer goroutine.
type TaskMsg struct {
	Run func()
}

// ProgramDispatcher returns a dispatcher for schedule.Scheduler that
// marshals callbacks onto the program's update loop as TaskMsg values.
func ProgramDispatcher(p *tea.Program) func(func()) {
	return func(fn func()) {
		go p.Send(TaskMsg{Run: fn})
	}
}

// Dispatch executes a TaskMsg inside Update. It reports whether the
// message was a task; models call it first and return early when it
// handles the message.
func Dispatch(msg tea.Msg) bool {
	task, ok := msg.(TaskMsg)
	if !ok {
		return false
	}
	if task.Run != nil {
		task.Run()
	}
	return true
}
