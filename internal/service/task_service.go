package service

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"todo-list/internal/domain"
	"todo-list/internal/store"
)

// TaskView is a snapshot of a task taken under the service lock.
type TaskView struct {
	Title    string
	Priority domain.Priority
	Added    string
}

func viewOf(t *domain.Task) TaskView {
	return TaskView{Title: t.Title(), Priority: t.Priority(), Added: t.Added()}
}

type Option func(*TaskService)

func WithClock(clock domain.Clock) Option {
	return func(s *TaskService) { s.clock = clock }
}

func WithLogger(log zerolog.Logger) Option {
	return func(s *TaskService) { s.log = log }
}

// TaskService is the one place a shared task list is touched; every call
// holds mu for its whole duration.
type TaskService struct {
	mu    sync.Mutex
	list  store.TaskList
	clock domain.Clock
	log   zerolog.Logger
}

func New(list store.TaskList, opts ...Option) (*TaskService, error) {
	if list == nil {
		return nil, ErrStoreNil
	}

	s := &TaskService{
		list:  list,
		clock: domain.SystemClock,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// AddTask creates a task stamped with the service clock, or with added when
// it is non-empty, and returns it with the new task count.
func (s *TaskService) AddTask(title string, priority any, added string) (TaskView, int, error) {
	opts := []domain.TaskOption{domain.WithClock(s.clock)}
	if added != "" {
		opts = append(opts, domain.WithAdded(added))
	}
	task := domain.NewTask(title, priority, opts...)

	s.mu.Lock()
	count := s.list.Add(task)
	s.mu.Unlock()

	s.log.Info().
		Str("title", task.Title()).
		Int("priority", int(task.Priority())).
		Int("count", count).
		Msg("task added")

	return viewOf(task), count, nil
}

func (s *TaskService) RemoveTask(title string) (bool, error) {
	s.mu.Lock()
	removed := s.list.Remove(title)
	s.mu.Unlock()

	s.log.Info().Str("title", title).Bool("removed", removed).Msg("task remove")

	return removed, nil
}

// ListTasks lists tasks filtered by priority. An empty filter lists all; a
// non-empty one must be a non-negative integer and is matched as given.
func (s *TaskService) ListTasks(filter string) ([]store.Entry, error) {
	priority, err := parseFilter(filter)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	entries := s.list.List(priority)
	s.mu.Unlock()

	s.log.Debug().Int("filter", int(priority)).Int("count", len(entries)).Msg("tasks listed")

	return entries, nil
}

func parseFilter(filter string) (domain.Priority, error) {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return 0, nil
	}
	if !domain.IsValidNonNegativeInteger(filter) {
		return 0, fmt.Errorf("%w: priority filter %q", ErrInvalidInput, filter)
	}

	n, err := strconv.Atoi(filter)
	if err != nil {
		// out of int range, cannot match any level
		return 0, fmt.Errorf("%w: priority filter %q", ErrInvalidInput, filter)
	}
	return domain.Priority(n), nil
}

func (s *TaskService) GetTask(title string) (TaskView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.list.Task(title)
	if err != nil {
		return TaskView{}, err
	}
	return viewOf(task), nil
}

// SetPriority changes the priority of the first task titled title.
func (s *TaskService) SetPriority(title string, priority any) (TaskView, error) {
	s.mu.Lock()
	task, err := s.list.Task(title)
	if err != nil {
		s.mu.Unlock()
		return TaskView{}, err
	}
	task.SetPriority(priority)
	view := viewOf(task)
	s.mu.Unlock()

	s.log.Info().Str("title", title).Int("priority", int(view.Priority)).Msg("task priority changed")

	return view, nil
}

func (s *TaskService) Priorities() []domain.Priority {
	return domain.Priorities()
}
