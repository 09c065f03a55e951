package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"loud", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew_WritesToFile(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "logs", "shoplist.log")

	// Act
	logger, err := New("info", path)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	logger.Info("store added", zap.String("store_id", "abc"))
	_ = logger.Sync()

	// Assert
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"message":"store added"`) {
		t.Errorf("log file missing message, got %s", data)
	}
	if !strings.Contains(string(data), `"store_id":"abc"`) {
		t.Errorf("log file missing field, got %s", data)
	}
}

func TestNew_EmptyPathIsNop(t *testing.T) {
	logger, err := New("debug", "")
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	if logger == nil {
		t.Fatal("New() returned nil logger")
	}
	if logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("empty path should yield a disabled logger")
	}
}
