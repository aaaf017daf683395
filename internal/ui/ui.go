package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"duelist/internal/config"
	"duelist/internal/todo"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeConfirmClear
)

type Model struct {
	board  *todo.Board
	cfg    config.Config
	keys   keyMap
	help   help.Model
	logger *log.Logger
	cursor int
	mode   mode
	add    *form
	edits  map[int64]*form
	status string
}

func NewModel(board *todo.Board, cfg config.Config, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	add := newForm("", "")
	add.blur()
	return Model{
		board:  board,
		cfg:    cfg,
		keys:   newKeyMap(cfg.Keys),
		help:   help.New(),
		logger: logger,
		mode:   modeList,
		add:    add,
		edits:  map[int64]*form{},
		status: fmt.Sprintf("Press '%s' to add a task.", cfg.Keys.Add),
	}
}

func Run(board *todo.Board, cfg config.Config, logger *log.Logger) error {
	program := tea.NewProgram(NewModel(board, cfg, logger))
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch m.mode {
		case modeAdd:
			return m.updateAddMode(msg)
		case modeConfirmClear:
			return m.updateClearConfirm(msg.String())
		}
		if row, f, ok := m.editingRow(); ok {
			return m.updateEditRow(msg, row, f)
		}
		return m.updateListMode(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.add.task.Width = max(msg.Width/2, 10)
	}
	return m, nil
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeList
		m.add.reset()
		m.add.blur()
		m.status = "Cancelled"
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		return m, m.add.next()
	case key.Matches(msg, m.keys.PrevField):
		return m, m.add.prev()
	case key.Matches(msg, m.keys.Confirm):
		title, due := m.add.values()
		if err := m.board.Add(title, due); err != nil {
			return m.fail("add", err), nil
		}
		m.logger.Debug("task added", "title", title, "due", due)
		m.rendered("Added task")
		m.cursor = clampCursor(newestRow(m.board.Rows()), len(m.board.Rows()))
		m.add.reset()
		m.add.blur()
		m.mode = modeList
		return m, nil
	default:
		return m, m.add.update(msg)
	}
}

func (m Model) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.board.Rows()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(rows))
	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, len(rows))
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.status = "Add task: enter to save, tab to switch field, esc to cancel"
		return m, m.add.focus(fieldTask)
	case key.Matches(msg, m.keys.Edit):
		if len(rows) == 0 {
			m.status = "No tasks to edit"
			return m, nil
		}
		row := rows[m.cursor]
		f := newForm(row.Title, row.DueDate)
		m.edits[row.ID] = f
		m.status = fmt.Sprintf("Editing row %d: %s to save", m.cursor+1, m.cfg.Keys.Confirm)
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Delete):
		if len(rows) == 0 {
			return m, nil
		}
		row := rows[m.cursor]
		if err := m.board.Delete(row.ID); err != nil {
			return m.fail("delete", err), nil
		}
		m.logger.Debug("task deleted", "id", row.ID, "index", row.Index)
		m.rendered("Deleted task")
	case key.Matches(msg, m.keys.DeleteAll):
		if m.cfg.ConfirmClear {
			m.mode = modeConfirmClear
			m.status = "Delete all tasks? y/n"
			return m, nil
		}
		return m.deleteAll(), nil
	case key.Matches(msg, m.keys.Filter):
		if err := m.board.ToggleFilter(); err != nil {
			return m.fail("filter", err), nil
		}
		m.logger.Debug("filter toggled", "expired_last", m.board.FilterExpired())
		m.rendered("Filter toggled")
	}
	return m, nil
}

func (m Model) updateEditRow(msg tea.KeyMsg, row todo.Row, f *form) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		title, due := f.values()
		if err := m.board.Save(row.ID, title, due); err != nil {
			return m.fail("save", err), nil
		}
		m.logger.Debug("task saved", "id", row.ID, "title", title, "due", due)
		m.rendered("Saved task")
		m.cursor = clampCursor(rowByID(m.board.Rows(), row.ID, m.cursor), len(m.board.Rows()))
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		return m, f.next()
	case key.Matches(msg, m.keys.PrevField):
		return m, f.prev()
	}
	// Only the arrow keys move off an edited row; letters go to the input.
	switch msg.String() {
	case "up":
		m.cursor = clampCursor(m.cursor-1, len(m.board.Rows()))
		return m, nil
	case "down":
		m.cursor = clampCursor(m.cursor+1, len(m.board.Rows()))
		return m, nil
	}
	return m, f.update(msg)
}

func (m Model) updateClearConfirm(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "n", "N", m.cfg.Keys.Cancel:
		m.mode = modeList
		m.status = "Delete all cancelled"
		return m, nil
	case "y", "Y":
		m.mode = modeList
		return m.deleteAll(), nil
	default:
		return m, nil
	}
}

func (m Model) deleteAll() Model {
	if err := m.board.DeleteAll(); err != nil {
		return m.fail("delete all", err)
	}
	m.logger.Debug("all tasks deleted")
	m.rendered("Deleted all tasks")
	return m
}

// rendered resets per-row state after the board rebuilt its rows. In-progress
// edits belong to the old rows and are dropped.
func (m *Model) rendered(status string) {
	clear(m.edits)
	m.cursor = clampCursor(m.cursor, len(m.board.Rows()))
	m.status = status
}

func (m Model) fail(op string, err error) Model {
	m.logger.Error(op+" failed", "err", err)
	m.status = fmt.Sprintf("%s failed: %v", op, err)
	return m
}

func (m Model) editingRow() (todo.Row, *form, bool) {
	rows := m.board.Rows()
	if len(rows) == 0 || len(m.edits) == 0 {
		return todo.Row{}, nil, false
	}
	row := rows[clampCursor(m.cursor, len(rows))]
	f, ok := m.edits[row.ID]
	return row, f, ok
}

func newestRow(rows []todo.Row) int {
	best := -1
	var id int64
	for i, r := range rows {
		if best < 0 || r.ID > id {
			best, id = i, r.ID
		}
	}
	return best
}

func rowByID(rows []todo.Row, id int64, fallback int) int {
	for i, r := range rows {
		if r.ID == id {
			return i
		}
	}
	return fallback
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
