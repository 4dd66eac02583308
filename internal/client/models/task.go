package models

import "time"

// TaskType distinguishes assignable tasks from schedule shifts; both live
// in the backend's /tasks collection.
type TaskType string

const (
	TaskTypeTask  TaskType = "task"
	TaskTypeShift TaskType = "shift"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

type Task struct {
	ID           string     `json:"id"`
	Type         TaskType   `json:"type"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	AssignedToID string     `json:"assignedToId,omitempty"`
	Status       TaskStatus `json:"status,omitempty"`
	Company      string     `json:"company,omitempty"`

	// Shift window; only set for TaskTypeShift.
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
}
