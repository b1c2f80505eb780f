package models

import "testing"

func TestTaskStatus(t *testing.T) {
	tests := []struct {
		name       string
		done       bool
		inProgress bool
		want       Status
	}{
		{"neither flag", false, false, StatusToDo},
		{"in progress only", false, true, StatusInProgress},
		{"done only", true, false, StatusDone},
		{"done wins over in progress", true, true, StatusDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{Text: "x", Done: tt.done, InProgress: tt.inProgress}
			if got := task.Status(); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	if StatusDone.String() != "Done" {
		t.Errorf("unexpected label %q", StatusDone.String())
	}
	if StatusInProgress.String() != "In Progress" {
		t.Errorf("unexpected label %q", StatusInProgress.String())
	}
	if StatusToDo.String() != "To Do" {
		t.Errorf("unexpected label %q", StatusToDo.String())
	}
}

func TestCountTasksSumsToTotal(t *testing.T) {
	tasks := []Task{
		{ID: 1, Done: true},
		{ID: 2, Done: true, InProgress: true},
		{ID: 3, InProgress: true},
		{ID: 4},
		{ID: 5},
	}

	c := CountTasks(tasks)
	if c.Done != 2 || c.InProgress != 1 || c.ToDo != 2 {
		t.Errorf("unexpected counts %+v", c)
	}
	if c.Total() != int64(len(tasks)) {
		t.Errorf("Total() = %d, want %d", c.Total(), len(tasks))
	}
}
