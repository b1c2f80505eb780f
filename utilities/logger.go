package utilities

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// InitLogger configures the global logger. An unknown level falls back to info.
func InitLogger(level string) {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{
		DisableQuote:    true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.SetLevel(log.InfoLevel)
		log.Errorf("Invalid LOG_LEVEL '%s', defaulting to INFO", level)
		return
	}
	log.SetLevel(lvl)
}

// SetOutput redirects log output, mostly for tests.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// LogRequest records one served HTTP request.
func LogRequest(method, path, remoteAddr string, status int, duration time.Duration) {
	log.WithFields(log.Fields{
		"method":   method,
		"path":     path,
		"remote":   remoteAddr,
		"status":   status,
		"duration": duration,
	}).Info("request")
}

// LogError records err with the caller position and reports it to Sentry
// when error capture is enabled.
func LogError(err error, context string) {
	if err == nil {
		return
	}

	fields := log.Fields{"error": err.Error()}
	if _, file, line, ok := runtime.Caller(1); ok {
		fields["file"] = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}
	logAndCapture(err, context, fields)
}

func logAndCapture(err error, context string, fields log.Fields) {
	log.WithFields(fields).Error(context)
	captureError(err, context)
}

// LogDebug logs a printf-style message at debug level.
func LogDebug(format string, v ...interface{}) {
	log.Debugf(format, v...)
}

// LogInfo logs a printf-style message at info level.
func LogInfo(format string, v ...interface{}) {
	log.Infof(format, v...)
}

// LogWarn logs a printf-style message at warning level.
func LogWarn(format string, v ...interface{}) {
	log.Warnf(format, v...)
}

// RecoveryLogger adapts the logger to gorilla/handlers.RecoveryHandlerLogger.
type RecoveryLogger struct{}

// Println logs a recovered panic. No caller field is attached: the frame
// here is the recovery handler, not the panic site.
func (RecoveryLogger) Println(v ...interface{}) {
	err := errors.New(fmt.Sprint(v...))
	logAndCapture(err, "recovered from panic", log.Fields{"error": err.Error()})
}
