package logger

import (
	"path/filepath"
	"testing"
)

func TestSetup_isIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	first := Setup(dir)
	if first == nil {
		t.Fatal("Setup() returned nil")
	}
	// A second call, even with a different directory, must return the same
	// configured instance instead of duplicating output handlers.
	second := Setup(filepath.Join(t.TempDir(), "elsewhere"))
	if first != second {
		t.Error("Setup() built a second logger, want the same instance back")
	}
	if L() != first {
		t.Error("L() returned a different instance than Setup()")
	}
}
