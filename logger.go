package main

import (
    "fmt"
    "os"
    "sync"
    "time"
)

// EventLogger appends timestamped audit lines for pin operations to a file.
// It is safe for concurrent use.
type EventLogger struct {
    mu   sync.Mutex
    file *os.File
}

// NewEventLogger opens filePath for appending, creating it if necessary.
func NewEventLogger(filePath string) (*EventLogger, error) {
    f, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
    if err != nil {
        return nil, err
    }
    return &EventLogger{file: f}, nil
}

// Log writes a single event with timestamp.  Write errors are reported to
// standard error rather than propagated; audit logging never fails a request.
func (el *EventLogger) Log(format string, args ...any) {
    el.mu.Lock()
    defer el.mu.Unlock()
    line := fmt.Sprintf("%s - %s\n", time.Now().Format(time.RFC3339), fmt.Sprintf(format, args...))
    if _, err := el.file.WriteString(line); err != nil {
        fmt.Fprintf(os.Stderr, "event log write error: %v\n", err)
    }
}
