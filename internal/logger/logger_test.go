package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevel_ToCharmlogLevel(t *testing.T) {
	assert.Equal(t, charmlog.DebugLevel, DebugLevel.ToCharmlogLevel())
	assert.Equal(t, charmlog.InfoLevel, InfoLevel.ToCharmlogLevel())
	assert.Equal(t, charmlog.WarnLevel, WarnLevel.ToCharmlogLevel())
	assert.Equal(t, charmlog.ErrorLevel, ErrorLevel.ToCharmlogLevel())
	assert.Equal(t, charmlog.InfoLevel, LogLevel("bogus").ToCharmlogLevel())
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&Config{Level: DebugLevel, Output: &buf, JSON: true})

	log.With("type", "Order").Debug("generated", "file", "order_nullable.go")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "generated", entry["msg"])
	assert.Equal(t, "Order", entry["type"])
	assert.Equal(t, "order_nullable.go", entry["file"])
}

func TestNewLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&Config{Level: WarnLevel, Output: &buf})

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestGetLoggerConfig(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("log-level", "info", "")
	cmd.Flags().Bool("log-json", false, "")
	cmd.Flags().Bool("log-source", false, "")
	require.NoError(t, cmd.Flags().Set("log-level", "debug"))
	require.NoError(t, cmd.Flags().Set("log-json", "true"))

	level, asJSON, source, err := GetLoggerConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "debug", level)
	assert.True(t, asJSON)
	assert.False(t, source)
}

func TestGetLoggerConfig_MissingFlag(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}

	_, _, _, err := GetLoggerConfig(cmd)
	require.Error(t, err)
}
