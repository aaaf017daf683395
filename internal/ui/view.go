package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"duelist/internal/todo"
)

// colDays is the days-remaining column.
const colDays = 2

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	headerStyle   = cellStyle.Bold(true)
	selectedStyle = cellStyle.Foreground(lipgloss.Color("212")).Bold(true)
	expiredStyle  = cellStyle.Foreground(lipgloss.Color("9"))
	statusStyle   = lipgloss.NewStyle().Faint(true)
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Todo"))
	b.WriteString("\n\n")

	rows := m.board.Rows()
	if !m.board.Rendered() && len(rows) == 0 {
		b.WriteString(fmt.Sprintf("No tasks yet. Press '%s' to add one.", m.cfg.Keys.Add))
	} else {
		b.WriteString(m.renderTable(rows))
	}
	b.WriteString("\n")

	if m.mode == modeAdd {
		b.WriteString("\n")
		b.WriteString(m.renderAddForm())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderTable(rows []todo.Row) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Task", "Due date", "Days remaining", "Actions")

	for _, r := range rows {
		t.Row(m.cells(r)...)
	}

	cursor := clampCursor(m.cursor, len(rows))
	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case row == cursor && m.mode == modeList:
			return selectedStyle
		case col == colDays && row < len(rows) && rows[row].Expired:
			return expiredStyle
		default:
			return cellStyle
		}
	})
	return t.String()
}

// cells renders one row. A row in edit state shows its inputs in place of the
// task and due-date text, and save in place of edit and delete.
func (m Model) cells(r todo.Row) []string {
	k := m.cfg.Keys
	if f, ok := m.edits[r.ID]; ok {
		return []string{
			f.task.View(),
			f.due.View(),
			r.Days,
			fmt.Sprintf("[%s] save", k.Confirm),
		}
	}
	return []string{
		r.Title,
		r.DueDate,
		r.Days,
		fmt.Sprintf("[%s] edit  [%s] delete", k.Edit, k.Delete),
	}
}

func (m Model) renderAddForm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Add task"))
	b.WriteString("\n")
	b.WriteString("Task     : " + m.add.task.View())
	b.WriteString("\n")
	b.WriteString("Due date : " + m.add.due.View())
	return b.String()
}

func (m Model) renderHelp() string {
	if m.mode == modeAdd {
		return m.help.View(formKeys{keyMap: m.keys, cancel: true})
	}
	if _, _, ok := m.editingRow(); ok {
		return m.help.View(formKeys{keyMap: m.keys})
	}
	return m.help.View(m.keys)
}
