package todo

import "time"

// Store is an ordered sequence of tasks. Index arguments refer to insertion
// order; an index or ID that matches nothing is a no-op reporting false.
type Store interface {
	Add(title, due string) (Task, error)
	All() ([]Task, error)
	UpdateAt(index int, title, due string) (bool, error)
	RemoveAt(index int) (bool, error)
	Update(id int64, title, due string) (bool, error)
	Remove(id int64) (bool, error)
	Clear() error
	Close() error
}

type MemoryStore struct {
	tasks  []Task
	nextID int64
	now    func() time.Time
}

// NewMemoryStore returns an empty store. A nil clock means time.Now.
func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{now: now}
}

func (s *MemoryStore) Add(title, due string) (Task, error) {
	s.nextID++
	t := Task{
		ID:            s.nextID,
		Title:         title,
		DueDate:       due,
		DaysRemaining: DaysUntil(due, s.now()),
	}
	s.tasks = append(s.tasks, t)
	return t, nil
}

func (s *MemoryStore) All() ([]Task, error) {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

func (s *MemoryStore) UpdateAt(index int, title, due string) (bool, error) {
	if index < 0 || index >= len(s.tasks) {
		return false, nil
	}
	t := &s.tasks[index]
	t.Title = title
	t.DueDate = due
	t.DaysRemaining = DaysUntil(due, s.now())
	return true, nil
}

func (s *MemoryStore) RemoveAt(index int) (bool, error) {
	if index < 0 || index >= len(s.tasks) {
		return false, nil
	}
	s.tasks = append(s.tasks[:index], s.tasks[index+1:]...)
	return true, nil
}

func (s *MemoryStore) Update(id int64, title, due string) (bool, error) {
	return s.UpdateAt(s.indexOf(id), title, due)
}

func (s *MemoryStore) Remove(id int64) (bool, error) {
	return s.RemoveAt(s.indexOf(id))
}

func (s *MemoryStore) Clear() error {
	s.tasks = nil
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) indexOf(id int64) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
