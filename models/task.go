package models

import "errors"

var (
	// ErrTaskNotFound is returned when no task exists for the requested id.
	ErrTaskNotFound = errors.New("task not found")
	// ErrEmptyDescription is returned when a task is written without text.
	ErrEmptyDescription = errors.New("task description is required")
)

// Status is the derived state of a task.
type Status int

const (
	StatusToDo Status = iota
	StatusInProgress
	StatusDone
)

// String returns the label shown on the dashboard and in the charts.
func (s Status) String() string {
	switch s {
	case StatusDone:
		return "Done"
	case StatusInProgress:
		return "In Progress"
	default:
		return "To Do"
	}
}

// Task is a single to-do item. Text is stored in the "task" column.
type Task struct {
	ID         int64  `json:"id"`
	Text       string `json:"task"`
	Done       bool   `json:"done"`
	InProgress bool   `json:"in_progress"`
}

// Status classifies the task: done wins over in progress, anything else is to do.
func (t Task) Status() Status {
	if t.Done {
		return StatusDone
	}
	if t.InProgress {
		return StatusInProgress
	}
	return StatusToDo
}

// StatusCounts holds how many tasks are in each derived status.
type StatusCounts struct {
	Done       int64 `json:"done"`
	InProgress int64 `json:"in_progress"`
	ToDo       int64 `json:"todo"`
}

// Total is the number of tasks across all three statuses.
func (c StatusCounts) Total() int64 {
	return c.Done + c.InProgress + c.ToDo
}

// CountTasks tallies tasks in memory using the same rule as Task.Status.
func CountTasks(tasks []Task) StatusCounts {
	var c StatusCounts
	for _, t := range tasks {
		switch t.Status() {
		case StatusDone:
			c.Done++
		case StatusInProgress:
			c.InProgress++
		default:
			c.ToDo++
		}
	}
	return c
}
