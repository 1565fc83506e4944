// Package notify is the client's toast surface: short transient messages
// with ids, so a flow can later dismiss a notification it raised (the
// undo toast of the dashboard's delete protocol).
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
)

type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "ok"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notifier raises transient user-visible notifications. Each returns the
// notification id usable with Dismiss.
type Notifier interface {
	Info(text string) string
	Success(text string) string
	Error(text string) string
	Dismiss(id string)
}

// Writer prints notifications to a writer, one line each. Dismiss is a
// no-op here: a printed line cannot be recalled from a terminal.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (n *Writer) emit(level Level, text string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.w, "[%s] %s\n", level, text)
	return uuid.NewString()
}

func (n *Writer) Info(text string) string    { return n.emit(LevelInfo, text) }
func (n *Writer) Success(text string) string { return n.emit(LevelSuccess, text) }
func (n *Writer) Error(text string) string   { return n.emit(LevelError, text) }

func (n *Writer) Dismiss(id string) {}
