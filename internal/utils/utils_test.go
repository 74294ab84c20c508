package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want string
	}{
		{"short text unchanged", "hello", 10, "hello"},
		{"exact length unchanged", "hello", 5, "hello"},
		{"long text truncated", "hello world out there", 10, "hello w..."},
		{"empty text", "", 10, ""},
		{"multibyte runes", "₹₹₹₹₹₹₹₹₹₹", 5, "₹₹..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.text, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.max, got, tt.want)
			}
		})
	}
}

func TestSuccessMessage(t *testing.T) {
	if got := SuccessMessage(0); !strings.Contains(got, "No listings") {
		t.Errorf("SuccessMessage(0) = %q", got)
	}
	if got := SuccessMessage(1); !strings.Contains(got, "1 car cover listing!") {
		t.Errorf("SuccessMessage(1) = %q", got)
	}
	if got := SuccessMessage(7); !strings.Contains(got, "7 car cover listings!") {
		t.Errorf("SuccessMessage(7) = %q", got)
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput(WarnLevel, &buf)

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("visible warn")
	logger.Error("visible error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below level were logged: %q", out)
	}
	if !strings.Contains(out, "visible warn") || !strings.Contains(out, "visible error") {
		t.Errorf("expected warn and error lines, got: %q", out)
	}
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput(InfoLevel, &buf)

	logger.WithFields(map[string]interface{}{"page": 2, "count": 5}).Info("harvested")

	out := buf.String()
	if !strings.Contains(out, "fields={count=5, page=2}") {
		t.Errorf("fields not rendered in stable order: %q", out)
	}

	// Derived logger must not leak fields back into the parent.
	buf.Reset()
	logger.Info("bare")
	if strings.Contains(buf.String(), "fields=") {
		t.Errorf("parent logger inherited fields: %q", buf.String())
	}
}
