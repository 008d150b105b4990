package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// LogBuffer captures JSON log lines written by concurrent handlers in tests.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Entries decodes every captured line. A line that is not JSON fails the test.
func (b *LogBuffer) Entries(t testing.TB) []map[string]any {
	t.Helper()

	var entries []map[string]any
	scanner := bufio.NewScanner(strings.NewReader(b.String()))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("log line is not JSON: %v\n%s", err, line)
		}
		entries = append(entries, entry)
	}
	return entries
}

// Find returns the first entry logged with msg.
func (b *LogBuffer) Find(t testing.TB, msg string) (map[string]any, bool) {
	t.Helper()
	for _, entry := range b.Entries(t) {
		if entry[slog.MessageKey] == msg {
			return entry, true
		}
	}
	return nil, false
}

// NewTestLogger returns a debug-level JSON logger writing to a fresh buffer.
// The default logger is left untouched.
func NewTestLogger(t testing.TB) (*LogBuffer, *slog.Logger) {
	t.Helper()
	buf := &LogBuffer{}
	return buf, slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
