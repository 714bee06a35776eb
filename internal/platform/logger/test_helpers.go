package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// TestLogBuffer is a thread-safe buffer for capturing log output in tests.
type TestLogBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

// Write implements io.Writer for TestLogBuffer.
func (b *TestLogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String returns the buffer contents as a string.
func (b *TestLogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Reset clears the buffer contents.
func (b *TestLogBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

// GetLogEntries parses the buffer contents as JSON log entries.
// Each line is assumed to be a separate JSON log entry.
func (b *TestLogBuffer) GetLogEntries() ([]map[string]interface{}, error) {
	lines := strings.Split(b.String(), "\n")
	entries := make([]map[string]interface{}, 0, len(lines))

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// GetTestLogger creates a JSON logger at debug level writing to a buffer.
func GetTestLogger(t *testing.T) (*slog.Logger, *TestLogBuffer) {
	t.Helper()

	logBuf := &TestLogBuffer{}
	handler := slog.NewJSONHandler(logBuf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), logBuf
}

// AssertLogContains checks if the log buffer contains specific content.
func AssertLogContains(t *testing.T, logBuf *TestLogBuffer, content string) {
	t.Helper()

	logs := logBuf.String()
	if !strings.Contains(logs, content) {
		t.Errorf("Expected log to contain %q, but it doesn't.\nLogs:\n%s", content, logs)
	}
}

// AssertLogNotContains checks that the log buffer does not contain content.
func AssertLogNotContains(t *testing.T, logBuf *TestLogBuffer, content string) {
	t.Helper()

	logs := logBuf.String()
	if strings.Contains(logs, content) {
		t.Errorf("Expected log not to contain %q.\nLogs:\n%s", content, logs)
	}
}
