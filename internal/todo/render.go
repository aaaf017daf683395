package todo

// Row is one rendered table row. Index is the task's position in the store at
// render time and is only meaningful until the next mutation; ID is stable.
type Row struct {
	ID      int64
	Index   int
	Title   string
	DueDate string
	Days    string
	Expired bool
}

// Render builds the rows for the display sequence derived from tasks.
func Render(tasks []Task, filterExpired bool) []Row {
	index := make(map[int64]int, len(tasks))
	for i, t := range tasks {
		index[t.ID] = i
	}

	shown := Display(tasks, filterExpired)
	rows := make([]Row, 0, len(shown))
	for _, t := range shown {
		rows = append(rows, Row{
			ID:      t.ID,
			Index:   index[t.ID],
			Title:   t.Title,
			DueDate: t.DueDate,
			Days:    t.DaysRemaining.String(),
			Expired: t.DaysRemaining.Expired(),
		})
	}
	return rows
}
