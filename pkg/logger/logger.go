package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

type LogEntry struct {
	Timestamp string      `json:"timestamp"`
	Level     string      `json:"level"`
	Service   string      `json:"service"`
	Action    string      `json:"action"`
	Message   string      `json:"message"`
	Hostname  string      `json:"hostname"`
	SessionID string      `json:"session_id,omitempty"`
	Error     *ErrorEntry `json:"error,omitempty"`
}

type ErrorEntry struct {
	Msg   string `json:"msg"`
	Stack string `json:"stack"`
}

// Logger emits one JSON object per line. Session-scoped operations carry the
// session id so a single customer's flow can be grepped out of the stream.
type Logger struct {
	service  string
	hostname string
	out      io.Writer
}

func NewLogger(service string) *Logger {
	hostname, _ := os.Hostname()
	return &Logger{
		service:  service,
		hostname: hostname,
		out:      os.Stdout,
	}
}

// NewWriterLogger directs output to w instead of stdout.
func NewWriterLogger(service string, w io.Writer) *Logger {
	l := NewLogger(service)
	l.out = w
	return l
}

func (l *Logger) Info(sessionID, action, message string) {
	l.log("INFO", sessionID, action, message, nil)
}

func (l *Logger) Debug(sessionID, action, message string) {
	l.log("DEBUG", sessionID, action, message, nil)
}

func (l *Logger) Warn(sessionID, action, message string) {
	l.log("WARN", sessionID, action, message, nil)
}

func (l *Logger) Error(sessionID, action, message string, err error) {
	var errorEntry *ErrorEntry
	if err != nil {
		buf := make([]byte, 1024)
		n := runtime.Stack(buf, false)
		errorEntry = &ErrorEntry{
			Msg:   err.Error(),
			Stack: string(buf[:n]),
		}
	}
	l.log("ERROR", sessionID, action, message, errorEntry)
}

func (l *Logger) log(level, sessionID, action, message string, errorEntry *ErrorEntry) {
	entry := LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level,
		Service:   l.service,
		Action:    action,
		Message:   message,
		Hostname:  l.hostname,
		SessionID: sessionID,
		Error:     errorEntry,
	}

	jsonData, _ := json.Marshal(entry)
	fmt.Fprintln(l.out, string(jsonData))
}
