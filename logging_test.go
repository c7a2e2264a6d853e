package artemis

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		lines = append(lines, m)
	}
	return lines
}

func TestDefaultLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "test", false)

	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Warnf("careful")
	l.Errorf("broken: %v", "x")

	lines := logLines(t, &buf)
	require.Len(t, lines, 3)
	assert.Equal(t, "shown 2", lines[0]["message"])
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "test", lines[0]["component"])
	assert.Equal(t, "warn", lines[1]["level"])
	assert.Equal(t, "broken: x", lines[2]["message"])
}

func TestDefaultLogger_SetDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "", false)
	assert.False(t, l.DebugEnabled())

	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())
	l.Debugf("now visible")

	lines := logLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "debug", lines[0]["level"])
	assert.NotContains(t, lines[0], "component")
}

func TestApp_LoggerFallsBackToNop(t *testing.T) {
	var app *App
	assert.NotNil(t, app.Logger())

	app = NewAppBuilder().Build()
	l := app.Logger()
	require.NotNil(t, l)
	assert.False(t, l.DebugEnabled())
	l.Infof("dropped")
}

func TestLoggingModule(t *testing.T) {
	var buf bytes.Buffer
	app := NewAppBuilder().UseModule(LoggingModule{Prefix: "artemis", Out: &buf}).Build()

	app.Logger().Infof("hello")
	assert.Contains(t, buf.String(), `"message":"hello"`)

	existing := NewLoggerTo(&buf, "", false)
	app = NewAppBuilder().UseModule(LoggingModule{Logger: existing}).Build()
	assert.Same(t, existing, app.Logger())
}
