package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthHandler(t *testing.T) {
	store := newMemStore()
	h := newTestHandler(t, store)

	rec := httptest.NewRecorder()
	h.HealthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	store.err = errors.New("db down")
	rec = httptest.NewRecorder()
	h.HealthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}

func TestStatsHandlerCountsSumToTotal(t *testing.T) {
	store := newMemStore()
	store.add("a", true, false)
	store.add("b", true, true)
	store.add("c", false, true)
	store.add("d", false, false)
	h := newTestHandler(t, store)

	rec := httptest.NewRecorder()
	h.StatsHandler(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got map[string]int64
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got["done"] != 2 || got["in_progress"] != 1 || got["todo"] != 1 {
		t.Errorf("unexpected counts %v", got)
	}
	if got["done"]+got["in_progress"]+got["todo"] != got["total"] || got["total"] != 4 {
		t.Errorf("counts do not sum to total: %v", got)
	}
}

func TestListTasksHandler(t *testing.T) {
	store := newMemStore()
	store.add("a", false, true)
	h := newTestHandler(t, store)

	rec := httptest.NewRecorder()
	h.ListTasksHandler(rec, httptest.NewRequest(http.MethodGet, "/api/tasks", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []struct {
		ID         int64  `json:"id"`
		Task       string `json:"task"`
		Done       bool   `json:"done"`
		InProgress bool   `json:"in_progress"`
		Status     string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got) != 1 || got[0].Task != "a" || got[0].Status != "In Progress" || !got[0].InProgress {
		t.Errorf("unexpected payload %+v", got)
	}
}

func TestListTasksHandlerEmptyIsArray(t *testing.T) {
	h := newTestHandler(t, newMemStore())

	rec := httptest.NewRecorder()
	h.ListTasksHandler(rec, httptest.NewRequest(http.MethodGet, "/api/tasks", nil))
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}
