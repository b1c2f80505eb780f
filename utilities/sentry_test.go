package utilities

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
)

// recordingTransport keeps every event instead of sending it.
type recordingTransport struct {
	mu     sync.Mutex
	events []*sentry.Event
}

func (t *recordingTransport) Configure(options sentry.ClientOptions) {}

func (t *recordingTransport) SendEvent(event *sentry.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, event)
}

func (t *recordingTransport) Flush(timeout time.Duration) bool { return true }

func (t *recordingTransport) FlushWithContext(ctx context.Context) bool { return true }

func (t *recordingTransport) Close() {}

func (t *recordingTransport) sent() []*sentry.Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*sentry.Event(nil), t.events...)
}

func enableTestSentry(t *testing.T) *recordingTransport {
	t.Helper()
	transport := &recordingTransport{}
	err := initSentry(sentry.ClientOptions{
		Dsn:       "https://public@sentry.example.com/1",
		Transport: transport,
	})
	if err != nil {
		t.Fatalf("initSentry failed: %v", err)
	}
	t.Cleanup(func() {
		sentryMu.Lock()
		sentryHub = nil
		sentryMu.Unlock()
	})
	return transport
}

func TestLogErrorCapturesToSentry(t *testing.T) {
	captureLogs(t, "info")
	transport := enableTestSentry(t)

	LogError(errors.New("db down"), "listing tasks")

	events := transport.sent()
	if len(events) != 1 {
		t.Fatalf("expected 1 captured event, got %d", len(events))
	}
	if got := events[0].Extra["context"]; got != "listing tasks" {
		t.Errorf("extra context = %v, want %q", got, "listing tasks")
	}
	if len(events[0].Exception) == 0 || events[0].Exception[0].Value != "db down" {
		t.Errorf("unexpected exception payload %+v", events[0].Exception)
	}
}

func TestLogErrorWithoutSentryCapturesNothing(t *testing.T) {
	captureLogs(t, "info")
	transport := enableTestSentry(t)

	sentryMu.Lock()
	sentryHub = nil
	sentryMu.Unlock()

	LogError(errors.New("ignored"), "no hub")
	if n := len(transport.sent()); n != 0 {
		t.Errorf("expected no events once capture is disabled, got %d", n)
	}
}
