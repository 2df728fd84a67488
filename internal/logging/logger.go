package logging

import (
	"fmt"
	"io"
	"log"
	"sync"
)

// Logger writes leveled lines to a writer kept apart from the form output.
type Logger struct {
	mu sync.Mutex
	l  *log.Logger
}

// New creates a logger writing to w, usually os.Stderr.
func New(w io.Writer) *Logger {
	return &Logger{l: log.New(w, "", log.Ldate|log.Ltime|log.Lmicroseconds)}
}

// Infof writes an informational message.
func (lg *Logger) Infof(format string, args ...any) {
	lg.logf("INFO ", format, args...)
}

// Warnf writes a warning message.
func (lg *Logger) Warnf(format string, args ...any) {
	lg.logf("WARN ", format, args...)
}

// Errorf writes an error message.
func (lg *Logger) Errorf(format string, args ...any) {
	lg.logf("ERROR", format, args...)
}

func (lg *Logger) logf(level, format string, args ...any) {
	lg.mu.Lock()
	defer lg.mu.Unlock()
	lg.l.Printf("%s %s", level, fmt.Sprintf(format, args...))
}
