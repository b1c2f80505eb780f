package utilities

import (
	"fmt"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
)

var (
	sentryMu  sync.RWMutex
	sentryHub *sentry.Hub
)

// InitSentry enables error capture. An empty dsn leaves capture disabled.
func InitSentry(dsn, environment, release string) error {
	if dsn == "" {
		LogDebug("SENTRY_DSN not set, error capture disabled")
		return nil
	}

	err := initSentry(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		Release:          release,
		AttachStacktrace: true,
	})
	if err != nil {
		return err
	}

	LogInfo("Sentry error capture enabled (environment: %s)", environment)
	return nil
}

func initSentry(opts sentry.ClientOptions) error {
	if err := sentry.Init(opts); err != nil {
		return fmt.Errorf("initializing sentry: %w", err)
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("module", "todo-dashboard")
	})

	sentryMu.Lock()
	sentryHub = hub
	sentryMu.Unlock()
	return nil
}

// FlushSentry waits up to timeout for queued events to be sent.
func FlushSentry(timeout time.Duration) {
	sentryMu.RLock()
	hub := sentryHub
	sentryMu.RUnlock()
	if hub != nil {
		hub.Flush(timeout)
	}
}

func captureError(err error, context string) {
	sentryMu.RLock()
	hub := sentryHub
	sentryMu.RUnlock()
	if hub == nil {
		return
	}

	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetExtra("context", context)
		hub.CaptureException(err)
	})
}
