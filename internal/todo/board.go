package todo

import "fmt"

// Board owns a store and the expired filter flag. Each operation mutates the
// store and then re-renders every row.
type Board struct {
	store         Store
	filterExpired bool
	rows          []Row
	rendered      bool
}

func NewBoard(store Store, filterExpired bool) (*Board, error) {
	b := &Board{store: store, filterExpired: filterExpired}
	tasks, err := store.All()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	b.rows = Render(tasks, filterExpired)
	return b, nil
}

// Rows returns the rows from the latest render.
func (b *Board) Rows() []Row {
	return b.rows
}

func (b *Board) FilterExpired() bool {
	return b.filterExpired
}

// Rendered reports whether any operation has rendered the board yet.
func (b *Board) Rendered() bool {
	return b.rendered
}

func (b *Board) Add(title, due string) error {
	if _, err := b.store.Add(title, due); err != nil {
		return err
	}
	return b.Render()
}

// Save writes title and due into the task with the given ID and recomputes
// its days remaining.
func (b *Board) Save(id int64, title, due string) error {
	if _, err := b.store.Update(id, title, due); err != nil {
		return err
	}
	return b.Render()
}

func (b *Board) Delete(id int64) error {
	if _, err := b.store.Remove(id); err != nil {
		return err
	}
	return b.Render()
}

func (b *Board) DeleteAll() error {
	if err := b.store.Clear(); err != nil {
		return err
	}
	return b.Render()
}

func (b *Board) ToggleFilter() error {
	b.filterExpired = !b.filterExpired
	return b.Render()
}

func (b *Board) Render() error {
	tasks, err := b.store.All()
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	b.rows = Render(tasks, b.filterExpired)
	b.rendered = true
	return nil
}
