package handlers

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"todo-dashboard/charts"
	"todo-dashboard/models"
	"todo-dashboard/utilities"

	"github.com/gorilla/mux"
)

// TaskStore is the storage the handlers need. database.TaskRepository
// satisfies it.
type TaskStore interface {
	Ping(ctx context.Context) error
	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, text string, done, inProgress bool) error
	GetTask(ctx context.Context, id int64) (*models.Task, error)
	UpdateTask(ctx context.Context, id int64, text string, done, inProgress bool) error
	DeleteTask(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context) (models.StatusCounts, error)
}

// TaskHandler serves the dashboard and the task forms.
type TaskHandler struct {
	store     TaskStore
	templates *template.Template
}

// NewTaskHandler parses the embedded page templates and binds them to store.
func NewTaskHandler(store TaskStore) (*TaskHandler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &TaskHandler{store: store, templates: tmpl}, nil
}

type dashboardPage struct {
	Title    string
	Tasks    []models.Task
	Counts   models.StatusCounts
	PieChart template.URL
	BarChart template.URL
}

type formPage struct {
	Title string
	Task  *models.Task
}

// DashboardHandler lists every task with the status charts.
func (h *TaskHandler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Rendering dashboard")
	ctx := r.Context()

	tasks, err := h.store.ListTasks(ctx)
	if err != nil {
		utilities.LogError(err, "Error listing tasks")
		http.Error(w, "Could not load tasks", http.StatusInternalServerError)
		return
	}

	counts, err := h.store.CountByStatus(ctx)
	if err != nil {
		utilities.LogError(err, "Error counting tasks by status")
		http.Error(w, "Could not load task statistics", http.StatusInternalServerError)
		return
	}

	images, err := charts.Render(counts)
	if err != nil {
		utilities.LogError(err, "Error rendering charts")
		http.Error(w, "Could not render charts", http.StatusInternalServerError)
		return
	}

	h.renderPage(w, http.StatusOK, "items.html", dashboardPage{
		Title:    "Tasks",
		Tasks:    tasks,
		Counts:   counts,
		PieChart: template.URL(images.PieDataURI()),
		BarChart: template.URL(images.BarDataURI()),
	})
}

// CreateHandler shows the create form on GET and stores a new task on POST.
func (h *TaskHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.renderPage(w, http.StatusOK, "create.html", formPage{Title: "New task"})
		return
	}

	text, done, inProgress, ok := readTaskForm(w, r, "new_item")
	if !ok {
		return
	}

	if err := h.store.CreateTask(r.Context(), text, done, inProgress); err != nil {
		utilities.LogError(err, "Error creating task")
		http.Error(w, "Could not create task", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Task created: %q (done=%t, in_progress=%t)", text, done, inProgress)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// UpdateHandler shows the edit form on GET and overwrites the task on POST.
func (h *TaskHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	if r.Method != http.MethodPost {
		task, err := h.store.GetTask(r.Context(), id)
		if errors.Is(err, models.ErrTaskNotFound) {
			http.NotFound(w, r)
			return
		}
		if err != nil {
			utilities.LogError(err, "Error loading task for edit")
			http.Error(w, "Could not load task", http.StatusInternalServerError)
			return
		}
		h.renderPage(w, http.StatusOK, "update.html", formPage{Title: "Edit task", Task: task})
		return
	}

	text, done, inProgress, ok := readTaskForm(w, r, "update_item")
	if !ok {
		return
	}

	if err := h.store.UpdateTask(r.Context(), id, text, done, inProgress); err != nil {
		utilities.LogError(err, "Error updating task")
		http.Error(w, "Could not update task", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Task %d updated", id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// DeleteHandler removes the task and returns to the dashboard.
func (h *TaskHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteTask(r.Context(), id); err != nil {
		utilities.LogError(err, "Error deleting task")
		http.Error(w, "Could not delete task", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Task %d deleted", id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// taskID reads the {id} route variable, answering 404 when it is not a valid id.
func taskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		http.NotFound(w, r)
		return 0, false
	}
	return id, true
}

// readTaskForm parses the posted form. The description field must be present
// and non-blank, and is returned exactly as submitted; checkboxes count as
// true when present at all.
func readTaskForm(w http.ResponseWriter, r *http.Request, field string) (text string, done, inProgress, ok bool) {
	if err := r.ParseForm(); err != nil {
		utilities.LogError(err, "Error parsing form")
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return "", false, false, false
	}

	values, present := r.PostForm[field]
	if !present || len(values) == 0 || strings.TrimSpace(values[0]) == "" {
		utilities.LogDebug("Form rejected: missing %s", field)
		http.Error(w, "Missing required field: "+field, http.StatusBadRequest)
		return "", false, false, false
	}

	_, done = r.PostForm["done"]
	_, inProgress = r.PostForm["in_progress"]
	return values[0], done, inProgress, true
}
