package handlers

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"

	"todo-dashboard/models"
	"todo-dashboard/utilities"
)

//go:embed templates/*.html
var templateFiles embed.FS

var templateFuncs = template.FuncMap{
	"statusClass": func(s models.Status) string {
		return "status-" + strings.ReplaceAll(strings.ToLower(s.String()), " ", "-")
	},
}

func parseTemplates() (*template.Template, error) {
	return template.New("pages").Funcs(templateFuncs).ParseFS(templateFiles, "templates/*.html")
}

// renderPage executes name into a buffer first so a template failure never
// leaves a half-written page behind.
func (h *TaskHandler) renderPage(w http.ResponseWriter, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		utilities.LogError(err, "Error rendering template "+name)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			utilities.LogError(err, "Error encoding JSON response")
		}
	}
}
