package handlers

import (
	"net/http"

	"todo-dashboard/utilities"

	"github.com/felixge/httpsnoop"
)

// LoggingMiddleware logs method, path, status and duration of every request.
// httpsnoop keeps optional interfaces such as http.Flusher on the wrapped writer.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		utilities.LogRequest(r.Method, r.URL.Path, r.RemoteAddr, m.Code, m.Duration)
	})
}
