package ui

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duelist/internal/config"
	"duelist/internal/todo"
)

var testNow = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

func dueIn(days int) string {
	return testNow.AddDate(0, 0, days).Format(todo.DateLayout)
}

func newTestModel(t *testing.T, cfg config.Config, tasks ...[2]string) Model {
	t.Helper()
	return newModelWithStore(t, cfg, todo.NewMemoryStore(func() time.Time { return testNow }), tasks...)
}

func newModelWithStore(t *testing.T, cfg config.Config, store todo.Store, tasks ...[2]string) Model {
	t.Helper()
	board, err := todo.NewBoard(store, cfg.FilterExpired)
	require.NoError(t, err)
	for _, tk := range tasks {
		require.NoError(t, board.Add(tk[0], tk[1]))
	}
	return NewModel(board, cfg, log.New(io.Discard))
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func rowTitles(m Model) []string {
	var out []string
	for _, r := range m.board.Rows() {
		out = append(out, r.Title)
	}
	return out
}

func TestModel_PlaceholderUntilFirstRender(t *testing.T) {
	m := newTestModel(t, config.Default())
	assert.Contains(t, m.View(), "No tasks yet")

	m = press(t, m, "a", "A", "tab", dueIn(1), "enter")
	m = press(t, m, "D")
	require.Empty(t, m.board.Rows())

	view := m.View()
	assert.NotContains(t, view, "No tasks yet")
	assert.Contains(t, view, "Days remaining")
}

func TestModel_AddTask(t *testing.T) {
	m := newTestModel(t, config.Default())

	m = press(t, m, "a")
	assert.Equal(t, modeAdd, m.mode)
	assert.Contains(t, m.View(), "Add task")

	m = press(t, m, "Buy milk", "tab", dueIn(3), "enter")
	assert.Equal(t, modeList, m.mode)
	require.Len(t, m.board.Rows(), 1)

	row := m.board.Rows()[0]
	assert.Equal(t, "Buy milk", row.Title)
	assert.Equal(t, dueIn(3), row.DueDate)
	assert.Equal(t, "3", row.Days)

	title, due := m.add.values()
	assert.Empty(t, title)
	assert.Empty(t, due)
	assert.Contains(t, m.View(), "Buy milk")
}

func TestModel_AddWithoutDueDateShowsNaN(t *testing.T) {
	m := newTestModel(t, config.Default())
	m = press(t, m, "a", "enter")

	require.Len(t, m.board.Rows(), 1)
	assert.Equal(t, "NaN", m.board.Rows()[0].Days)
	assert.Contains(t, m.View(), "NaN")
}

func TestModel_AddCancel(t *testing.T) {
	m := newTestModel(t, config.Default())
	m = press(t, m, "a", "draft", "esc")

	assert.Equal(t, modeList, m.mode)
	assert.Empty(t, m.board.Rows())
	title, _ := m.add.values()
	assert.Empty(t, title)
}

func TestModel_AddFormTypesKeysThatAreBindings(t *testing.T) {
	m := newTestModel(t, config.Default())
	m = press(t, m, "a", "q", "d", "f", "enter")

	require.Len(t, m.board.Rows(), 1)
	assert.Equal(t, "qdf", m.board.Rows()[0].Title)
}

func TestModel_FilterToggle(t *testing.T) {
	m := newTestModel(t, config.Default(),
		[2]string{"A", dueIn(5)},
		[2]string{"B", dueIn(-2)},
		[2]string{"C", dueIn(1)},
	)

	m = press(t, m, "f")
	assert.Equal(t, []string{"C", "A", "B"}, rowTitles(m))

	view := m.View()
	assert.Less(t, strings.Index(view, "C"), strings.Index(view, "B"))

	m = press(t, m, "f")
	assert.Equal(t, []string{"A", "B", "C"}, rowTitles(m))
}

func TestModel_EditAndSave(t *testing.T) {
	m := newTestModel(t, config.Default(),
		[2]string{"A", dueIn(5)},
		[2]string{"B", dueIn(2)},
	)

	m = press(t, m, "e")
	require.Len(t, m.edits, 1)
	view := m.View()
	assert.Contains(t, view, "[enter] save")
	assert.Contains(t, view, "[e] edit")

	m = press(t, m, "!", "tab", "ctrl+u", dueIn(9), "enter")
	assert.Empty(t, m.edits)

	rows := m.board.Rows()
	assert.Equal(t, todo.Row{ID: rows[0].ID, Index: 0, Title: "A!", DueDate: dueIn(9), Days: "9"}, rows[0])
	assert.Equal(t, todo.Row{ID: rows[1].ID, Index: 1, Title: "B", DueDate: dueIn(2), Days: "2"}, rows[1])
}

func TestModel_EditTypesKeysThatAreBindings(t *testing.T) {
	m := newTestModel(t, config.Default(), [2]string{"A", dueIn(5)})
	m = press(t, m, "e", "q", "d", "enter")

	require.Len(t, m.board.Rows(), 1)
	assert.Equal(t, "Aqd", m.board.Rows()[0].Title)
}

func TestModel_EditSeveralRowsLastSaveDiscardsOthers(t *testing.T) {
	m := newTestModel(t, config.Default(),
		[2]string{"A", dueIn(5)},
		[2]string{"B", dueIn(2)},
	)

	m = press(t, m, "e", "1", "down", "e", "2")
	require.Len(t, m.edits, 2)

	m = press(t, m, "enter")
	assert.Empty(t, m.edits)
	assert.Equal(t, []string{"A", "B2"}, rowTitles(m))
}

func TestModel_SaveUnderFilterKeepsCursorOnRow(t *testing.T) {
	cfg := config.Default()
	cfg.FilterExpired = true
	m := newTestModel(t, cfg,
		[2]string{"A", dueIn(5)},
		[2]string{"B", dueIn(1)},
	)
	require.NoError(t, m.board.Render())
	require.Equal(t, []string{"B", "A"}, rowTitles(m))

	m = press(t, m, "e", "tab", "ctrl+u", dueIn(8), "enter")
	assert.Equal(t, []string{"A", "B"}, rowTitles(m))
	assert.Equal(t, 1, m.cursor)
}

func TestModel_Delete(t *testing.T) {
	m := newTestModel(t, config.Default(),
		[2]string{"A", dueIn(5)},
		[2]string{"B", dueIn(2)},
		[2]string{"C", dueIn(1)},
	)

	m = press(t, m, "j", "d")
	assert.Equal(t, []string{"A", "C"}, rowTitles(m))
	assert.Equal(t, 1, m.board.Rows()[1].Index)

	m = press(t, m, "d", "d", "d")
	assert.Empty(t, m.board.Rows())
	assert.Equal(t, 0, m.cursor)
}

func TestModel_DeleteAllWithoutConfirm(t *testing.T) {
	m := newTestModel(t, config.Default(),
		[2]string{"A", dueIn(5)},
		[2]string{"B", dueIn(2)},
	)

	m = press(t, m, "D")
	assert.Empty(t, m.board.Rows())
	assert.Equal(t, modeList, m.mode)
}

func TestModel_DeleteAllWithConfirm(t *testing.T) {
	cfg := config.Default()
	cfg.ConfirmClear = true
	m := newTestModel(t, cfg, [2]string{"A", dueIn(5)})

	m = press(t, m, "D")
	assert.Equal(t, modeConfirmClear, m.mode)
	m = press(t, m, "n")
	assert.Len(t, m.board.Rows(), 1)

	m = press(t, m, "D", "y")
	assert.Empty(t, m.board.Rows())
	assert.Equal(t, modeList, m.mode)
}

func TestModel_CursorMovement(t *testing.T) {
	m := newTestModel(t, config.Default(),
		[2]string{"A", dueIn(5)},
		[2]string{"B", dueIn(2)},
	)

	m = press(t, m, "k")
	assert.Equal(t, 0, m.cursor)
	m = press(t, m, "j", "down", "j")
	assert.Equal(t, 1, m.cursor)
	m = press(t, m, "up")
	assert.Equal(t, 0, m.cursor)
}

func TestModel_EditWithNoRows(t *testing.T) {
	m := newTestModel(t, config.Default())
	m = press(t, m, "e", "d")
	assert.Equal(t, "No tasks to edit", m.status)
	assert.Empty(t, m.edits)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, config.Default())
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m = press(t, m, "a")
	_, cmd = m.Update(keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

type brokenStore struct {
	*todo.MemoryStore
}

var errBroken = errors.New("disk on fire")

func (brokenStore) Remove(int64) (bool, error) { return false, errBroken }

func TestModel_StoreErrorGoesToStatus(t *testing.T) {
	store := brokenStore{todo.NewMemoryStore(func() time.Time { return testNow })}
	m := newModelWithStore(t, config.Default(), store, [2]string{"A", dueIn(1)})

	m = press(t, m, "d")
	assert.Equal(t, "delete failed: disk on fire", m.status)
	assert.Len(t, m.board.Rows(), 1)
}
