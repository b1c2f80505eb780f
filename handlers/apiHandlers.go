package handlers

import (
	"context"
	"net/http"
	"time"

	"todo-dashboard/models"
	"todo-dashboard/utilities"
)

type statsResponse struct {
	models.StatusCounts
	Total int64 `json:"total"`
}

type taskResponse struct {
	models.Task
	Status string `json:"status"`
}

// HealthHandler reports whether storage is reachable.
func (h *TaskHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		utilities.LogError(err, "Health check failed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// StatsHandler returns the status counts behind the dashboard charts.
func (h *TaskHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	counts, err := h.store.CountByStatus(r.Context())
	if err != nil {
		utilities.LogError(err, "Error counting tasks by status")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get task stats"})
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{StatusCounts: counts, Total: counts.Total()})
}

// ListTasksHandler returns every task with its derived status.
func (h *TaskHandler) ListTasksHandler(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.store.ListTasks(r.Context())
	if err != nil {
		utilities.LogError(err, "Error listing tasks")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list tasks"})
		return
	}

	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskResponse{Task: t, Status: t.Status().String()})
	}
	writeJSON(w, http.StatusOK, out)
}
