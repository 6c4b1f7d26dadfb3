package dto

type CreateTaskRequest struct {
	Title string `json:"title"`
	// Priority accepts any JSON value; it is normalized, never rejected.
	Priority any    `json:"priority"`
	Added    string `json:"added,omitempty"`
}

type SetPriorityRequest struct {
	Priority any `json:"priority"`
}

type TaskResponse struct {
	Title    string `json:"title"`
	Priority int    `json:"priority"`
	Added    string `json:"added"`
}

type CreateTaskResponse struct {
	Task  TaskResponse `json:"task"`
	Count int          `json:"count"`
}

type RemoveTaskResponse struct {
	Removed bool `json:"removed"`
}

// TaskEntry is written as a JSON array [added, title, priority].
type TaskEntry [3]any

type PriorityResponse struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
