package memory

import (
	"fmt"
	"todo-list/internal/domain"
	"todo-list/internal/store"
)

// TaskList keeps tasks in insertion order. It does no locking; callers that
// share one across goroutines must serialize access themselves.
type TaskList struct {
	tasks []*domain.Task
}

func New() *TaskList {
	return &TaskList{}
}

// Add appends task and returns the new length. Duplicate titles and nil
// tasks are accepted.
func (l *TaskList) Add(task *domain.Task) int {
	l.tasks = append(l.tasks, task)
	return len(l.tasks)
}

// Remove drops every task titled exactly title and reports whether anything
// was removed.
func (l *TaskList) Remove(title string) bool {
	before := len(l.tasks)

	kept := l.tasks[:0]
	for _, t := range l.tasks {
		if t != nil && t.Title() == title {
			continue
		}
		kept = append(kept, t)
	}

	// clear the tail so removed tasks can be collected
	for i := len(kept); i < before; i++ {
		l.tasks[i] = nil
	}
	l.tasks = kept

	return len(l.tasks) < before
}

// List returns tasks in order. A zero priority returns all of them; any other
// value is compared as-is, without normalization.
func (l *TaskList) List(priority domain.Priority) []store.Entry {
	entries := make([]store.Entry, 0, len(l.tasks))
	for _, t := range l.tasks {
		if t == nil {
			continue
		}
		if priority != 0 && t.Priority() != priority {
			continue
		}
		entries = append(entries, store.Entry{
			Added:    t.Added(),
			Title:    t.Title(),
			Priority: t.Priority(),
		})
	}

	return entries
}

// Task returns the first task titled exactly title.
func (l *TaskList) Task(title string) (*domain.Task, error) {
	for _, t := range l.tasks {
		if t != nil && t.Title() == title {
			return t, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", store.ErrNotFound, title)
}

func (l *TaskList) Len() int {
	return len(l.tasks)
}
