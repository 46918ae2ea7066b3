package helpers

import (
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// NewLogger creates a configured Logrus logger
func NewLogger(appName, env string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if env == "development" {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	logger.WithFields(logrus.Fields{"app": appName, "env": env}).Info("logger initialized")
	return logger
}

// LogEntry is a captured log line exposed on the admin logs endpoint.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
}

// RingHook is a logrus hook that keeps the most recent entries in memory.
type RingHook struct {
	mu      sync.Mutex
	entries []LogEntry
	next    int
	full    bool
}

func NewRingHook(size int) *RingHook {
	if size <= 0 {
		size = 100
	}
	return &RingHook{entries: make([]LogEntry, size)}
}

func (h *RingHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.InfoLevel, logrus.WarnLevel, logrus.ErrorLevel}
}

func (h *RingHook) Fire(e *logrus.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries[h.next] = LogEntry{Timestamp: e.Time, Level: e.Level.String(), Message: e.Message}
	h.next = (h.next + 1) % len(h.entries)
	if h.next == 0 {
		h.full = true
	}
	return nil
}

// Recent returns captured entries, oldest first.
func (h *RingHook) Recent() []LogEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.full {
		out := make([]LogEntry, h.next)
		copy(out, h.entries[:h.next])
		return out
	}
	out := make([]LogEntry, 0, len(h.entries))
	out = append(out, h.entries[h.next:]...)
	out = append(out, h.entries[:h.next]...)
	return out
}
