package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, v bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(v)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	tests := []struct {
		name string
		log  func(string, ...any)
		want string
	}{
		{"debug", Debug, "[DEBUG] GET /x -> 200\n"},
		{"info", Info, "[INFO] GET /x -> 200\n"},
		{"warn", Warn, "[WARN] GET /x -> 200\n"},
		{"error", Error, "[ERROR] GET /x -> 200\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, true)
			tt.log("GET %s -> %d", "/x", 200)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")

	assert.Empty(t, buf.String())
}

func TestError_AlwaysWrites(t *testing.T) {
	buf := capture(t, false)

	Error("ledger write failed: %v", "disk full")

	assert.Equal(t, "[ERROR] ledger write failed: disk full\n", buf.String())
}

func TestSection(t *testing.T) {
	buf := capture(t, true)

	Section("Compare")

	assert.Equal(t, "\n=== Compare ===\n", buf.String())
}
