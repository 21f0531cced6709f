package model

// Priority is the closed set of task priorities.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether p is one of the four known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Subtask is one unit of work extracted from a task description or recording.
// EstimatedMinutes is nil when the model did not supply a usable number.
type Subtask struct {
	Text             string   `json:"text"`
	Priority         Priority `json:"priority"`
	EstimatedMinutes *int     `json:"estimatedMinutes,omitempty"`
}

// Task is one standalone task extracted from a voicemail or recording.
// DueDate is YYYY-MM-DD or empty; AssignedTo is a name hint or empty.
type Task struct {
	Text       string   `json:"text"`
	Priority   Priority `json:"priority"`
	DueDate    string   `json:"dueDate"`
	AssignedTo string   `json:"assignedTo"`
}
