package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"todo-dashboard/models"
)

// TaskRepository runs task queries against the tasks table.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository returns a repository backed by db.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Ping checks the underlying connection pool.
func (r *TaskRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// ListTasks returns every task in id order.
func (r *TaskRepository) ListTasks(ctx context.Context) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, task, done, in_progress FROM tasks ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Text, &t.Done, &t.InProgress); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask inserts a new task.
func (r *TaskRepository) CreateTask(ctx context.Context, text string, done, inProgress bool) error {
	if strings.TrimSpace(text) == "" {
		return models.ErrEmptyDescription
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (task, done, in_progress) VALUES ($1, $2, $3)`,
		text, done, inProgress,
	)
	if err != nil {
		return fmt.Errorf("creating task: %w", err)
	}
	return nil
}

// GetTask returns models.ErrTaskNotFound for an unknown id.
func (r *TaskRepository) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	t := &models.Task{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, task, done, in_progress FROM tasks WHERE id = $1`,
		id,
	).Scan(&t.ID, &t.Text, &t.Done, &t.InProgress)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting task %d: %w", id, err)
	}
	return t, nil
}

// UpdateTask overwrites all fields of a task. An unknown id is not an error.
func (r *TaskRepository) UpdateTask(ctx context.Context, id int64, text string, done, inProgress bool) error {
	if strings.TrimSpace(text) == "" {
		return models.ErrEmptyDescription
	}

	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET task = $1, done = $2, in_progress = $3 WHERE id = $4`,
		text, done, inProgress, id,
	)
	if err != nil {
		return fmt.Errorf("updating task %d: %w", id, err)
	}
	return nil
}

// DeleteTask removes a task if it exists.
func (r *TaskRepository) DeleteTask(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting task %d: %w", id, err)
	}
	return nil
}

// CountByStatus counts tasks per derived status, one query per status.
func (r *TaskRepository) CountByStatus(ctx context.Context) (models.StatusCounts, error) {
	var counts models.StatusCounts

	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks WHERE done = TRUE`,
	).Scan(&counts.Done)
	if err != nil {
		return models.StatusCounts{}, fmt.Errorf("counting done tasks: %w", err)
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks WHERE in_progress = TRUE AND done = FALSE`,
	).Scan(&counts.InProgress)
	if err != nil {
		return models.StatusCounts{}, fmt.Errorf("counting in-progress tasks: %w", err)
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks WHERE in_progress = FALSE AND done = FALSE`,
	).Scan(&counts.ToDo)
	if err != nil {
		return models.StatusCounts{}, fmt.Errorf("counting to-do tasks: %w", err)
	}

	return counts, nil
}
