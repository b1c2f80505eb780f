package main

import (
	"net/http"

	"todo-dashboard/handlers"
	"todo-dashboard/utilities"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// NewRouter wires every route and wraps the router with CORS, compression
// and panic recovery.
func NewRouter(h *handlers.TaskHandler, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()

	// --- Pages ---
	r.HandleFunc("/", h.DashboardHandler).Methods("GET")
	r.HandleFunc("/create", h.CreateHandler).Methods("GET", "POST")
	r.HandleFunc("/update/{id:[0-9]+}", h.UpdateHandler).Methods("GET", "POST")
	r.HandleFunc("/delete/{id:[0-9]+}", h.DeleteHandler).Methods("GET", "POST")

	// --- JSON ---
	r.HandleFunc("/health", h.HealthHandler).Methods("GET")
	r.HandleFunc("/api/stats", h.StatsHandler).Methods("GET")
	r.HandleFunc("/api/tasks", h.ListTasksHandler).Methods("GET")

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		utilities.LogInfo("CORS_ALLOWED_ORIGINS not set, allowing every origin ('*')")
	}
	utilities.LogInfo("Configuring CORS with allowed origins: %v", allowedOrigins)

	headers := gorillahandlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type"})
	methods := gorillahandlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"})
	origins := gorillahandlers.AllowedOrigins(allowedOrigins)

	// logging wraps the whole router so unmatched 404/405 requests are logged too
	var handler http.Handler = handlers.LoggingMiddleware(r)
	handler = gorillahandlers.CORS(headers, methods, origins)(handler)
	handler = gorillahandlers.CompressHandler(handler)
	handler = gorillahandlers.RecoveryHandler(
		gorillahandlers.RecoveryLogger(utilities.RecoveryLogger{}),
		gorillahandlers.PrintRecoveryStack(true),
	)(handler)
	return handler
}
