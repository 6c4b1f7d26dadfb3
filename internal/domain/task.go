package domain

// Task is a titled unit of work. Title and added timestamp are fixed at
// construction; only the priority can change.
type Task struct {
	title    string
	priority Priority
	added    string
}

type taskOptions struct {
	clock    Clock
	added    string
	hasAdded bool
}

type TaskOption func(*taskOptions)

// WithAdded stores added verbatim instead of reading the clock.
func WithAdded(added string) TaskOption {
	return func(o *taskOptions) {
		o.added = added
		o.hasAdded = true
	}
}

// WithClock sets the time source for the added timestamp.
func WithClock(clock Clock) TaskOption {
	return func(o *taskOptions) {
		o.clock = clock
	}
}

// NewTask builds a task. The title is not validated and priority goes
// through NormalizePriority. Without WithAdded the clock is read exactly once.
func NewTask(title string, priority any, opts ...TaskOption) *Task {
	o := taskOptions{clock: SystemClock}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	added := o.added
	if !o.hasAdded {
		added = o.clock.Timestamp()
	}

	return &Task{
		title:    title,
		priority: NormalizePriority(priority),
		added:    added,
	}
}

func (t *Task) Title() string {
	return t.title
}

func (t *Task) Added() string {
	return t.added
}

func (t *Task) Priority() Priority {
	return t.priority
}

// SetPriority applies the same normalization as NewTask.
func (t *Task) SetPriority(priority any) {
	t.priority = NormalizePriority(priority)
}
