package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func restore(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })
}

func TestDefaultIsNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Info("before init")
		Sync()
	})
}

func TestInit_JSONFile(t *testing.T) {
	restore(t)
	path := filepath.Join(t.TempDir(), "nested", "app.log")

	require.NoError(t, Init("warn", "json", "file", path))
	Info("dropped")
	With(zap.String("component", "worker")).Warn("kept", zap.Int64("video_id", 7))
	Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "worker", entry["component"])
	assert.Equal(t, float64(7), entry["video_id"])
}

func TestInit_FileOutputNeedsPath(t *testing.T) {
	restore(t)
	assert.Error(t, Init("info", "json", "file", ""))
}

func TestNewCore_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		core, err := newCore(tt.level, "console", "stderr", "")
		require.NoError(t, err)
		assert.True(t, core.Enabled(tt.want), tt.level)
		if tt.want > zapcore.DebugLevel {
			assert.False(t, core.Enabled(tt.want-1), tt.level)
		}
	}
}
