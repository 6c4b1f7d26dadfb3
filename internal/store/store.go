package store

import (
	"errors"
	"todo-list/internal/domain"
)

var ErrNotFound = errors.New("task not found")

// Entry is the (added, title, priority) view of a task returned by List.
type Entry struct {
	Added    string          `json:"added" yaml:"added"`
	Title    string          `json:"title" yaml:"title"`
	Priority domain.Priority `json:"priority" yaml:"priority"`
}

type TaskList interface {
	Add(task *domain.Task) int
	Remove(title string) bool
	List(priority domain.Priority) []Entry
	Task(title string) (*domain.Task, error)
}
