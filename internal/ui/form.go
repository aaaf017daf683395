package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTask = iota
	fieldDue
	fieldCount
)

// form holds the task and due-date inputs used by the add form and by a row
// in edit state.
type form struct {
	task  textinput.Model
	due   textinput.Model
	field int
}

func newForm(title, due string) *form {
	ti := textinput.New()
	ti.Placeholder = "Task"
	ti.CharLimit = 256
	ti.Width = 32
	ti.SetValue(title)
	ti.CursorEnd()

	di := textinput.New()
	di.Placeholder = "YYYY-MM-DD"
	di.CharLimit = 32
	di.Width = 12
	di.SetValue(due)
	di.CursorEnd()

	f := &form{task: ti, due: di}
	f.focus(fieldTask)
	return f
}

func (f *form) focus(field int) tea.Cmd {
	f.field = wrapIndex(field, fieldCount)
	if f.field == fieldTask {
		f.due.Blur()
		return f.task.Focus()
	}
	f.task.Blur()
	return f.due.Focus()
}

func (f *form) next() tea.Cmd {
	return f.focus(f.field + 1)
}

func (f *form) prev() tea.Cmd {
	return f.focus(f.field - 1)
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.field == fieldTask {
		f.task, cmd = f.task.Update(msg)
	} else {
		f.due, cmd = f.due.Update(msg)
	}
	return cmd
}

func (f *form) values() (string, string) {
	return f.task.Value(), f.due.Value()
}

func (f *form) reset() {
	f.task.SetValue("")
	f.due.SetValue("")
	f.focus(fieldTask)
}

func (f *form) blur() {
	f.task.Blur()
	f.due.Blur()
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
