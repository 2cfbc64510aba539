package clipboard

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Level is the severity of a notice.
type Level int

const (
	LevelSuccess Level = iota
	LevelError
)

func (l Level) String() string {
	if l == LevelError {
		return "error"
	}
	return "success"
}

// Notice is a transient, user-visible message.
type Notice struct {
	ID      string
	Level   Level
	Message string
	TTL     time.Duration
}

// NewNotice creates a notice with a fresh ID.
func NewNotice(level Level, message string, ttl time.Duration) Notice {
	return Notice{
		ID:      uuid.NewString(),
		Level:   level,
		Message: message,
		TTL:     ttl,
	}
}

// Notifier displays notices.
type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

// LogNotifier reports notices through a structured logger.
func LogNotifier(logger *slog.Logger) Notifier {
	return NotifierFunc(func(n Notice) {
		level := slog.LevelInfo
		if n.Level == LevelError {
			level = slog.LevelWarn
		}
		logger.Log(context.Background(), level, n.Message, "notice", n.ID, "ttl", n.TTL)
	})
}

// WriterNotifier prints one line per notice, prefixed by a mark for its
// level.
func WriterNotifier(w io.Writer) Notifier {
	return NotifierFunc(func(n Notice) {
		mark := "✓"
		if n.Level == LevelError {
			mark = "✗"
		}
		fmt.Fprintf(w, "%s %s\n", mark, n.Message)
	})
}
