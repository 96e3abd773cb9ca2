package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStringToLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := stringToLogLevel(tt.in); got != tt.want {
			t.Errorf("stringToLogLevel(%q) = %v, want: %v", tt.in, got, tt.want)
		}
	}
}

func TestNewWriter(t *testing.T) {
	t.Parallel()

	if got := NewWriter(FileOptions{}); got != os.Stdout {
		t.Errorf("NewWriter(empty) = %v, want: os.Stdout", got)
	}

	path := filepath.Join(t.TempDir(), "dma.log")
	w := NewWriter(FileOptions{Path: path, MaxSizeMB: 1})
	if _, err := w.Write([]byte("hello\n")); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "hello") {
		t.Errorf("log file content = %q, want it to contain %q", b, "hello")
	}
}

func TestSetupLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	SetupLogger("production", "info", &buf)
	slog.Info("ready", "port", 8080)

	if !strings.HasPrefix(buf.String(), "{") {
		t.Errorf("log output = %q, want JSON", buf.String())
	}
}
