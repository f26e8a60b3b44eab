package observability

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/campusnav/internal/config"
)

func setupTestLogger(cfg config.LoggerConfig) *bytes.Buffer {
	buf := new(bytes.Buffer)
	initializeLogger(cfg, zapcore.AddSync(buf))
	return buf
}

func resetGlobalLogger() {
	once = sync.Once{}
	globalLogger.Store(nil)
}

func TestInitializeLogger(t *testing.T) {
	t.Run("console logger colors the level", func(t *testing.T) {
		resetGlobalLogger()
		buf := setupTestLogger(config.LoggerConfig{
			Level:       "debug",
			Format:      "console",
			ServiceName: "campusnav",
			Colors:      config.ColorConfig{Info: "green"},
		})

		GetLogger().Info("graph loaded")
		Sync()

		out := buf.String()
		assert.Contains(t, out, "INFO")
		assert.Contains(t, out, "graph loaded")
		assert.Contains(t, out, colorGreen)
		assert.Contains(t, out, colorReset)
	})

	t.Run("json logger", func(t *testing.T) {
		resetGlobalLogger()
		buf := setupTestLogger(config.LoggerConfig{Level: "info", Format: "json", ServiceName: "api"})

		GetLogger().Warn("row skipped", zap.Int("line", 3))
		Sync()

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, "api", entry["logger"])
		assert.Equal(t, "row skipped", entry["msg"])
		assert.Equal(t, 3.0, entry["line"])
	})

	t.Run("level filters", func(t *testing.T) {
		resetGlobalLogger()
		buf := setupTestLogger(config.LoggerConfig{Level: "warn", Format: "json"})
		GetLogger().Info("hidden")
		Sync()
		assert.Empty(t, buf.String())
	})

	t.Run("writes to a rotating log file", func(t *testing.T) {
		resetGlobalLogger()
		path := filepath.Join(t.TempDir(), "campusnav.log")
		setupTestLogger(config.LoggerConfig{Level: "debug", Format: "console", LogFile: path, MaxSize: 1})

		GetLogger().Error("to the file")
		Sync()

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"msg":"to the file"`)
	})

	t.Run("initializes once", func(t *testing.T) {
		resetGlobalLogger()
		buf1 := setupTestLogger(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "First"})
		l1 := GetLogger()
		buf2 := setupTestLogger(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "Second"})

		assert.Same(t, l1, GetLogger())
		GetLogger().Info("msg")
		Sync()
		assert.Contains(t, buf1.String(), "First")
		assert.Empty(t, buf2.String())
	})
}

func TestGetLogger_Fallback(t *testing.T) {
	resetGlobalLogger()
	assert.NotNil(t, GetLogger())
}
