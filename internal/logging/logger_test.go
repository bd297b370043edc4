package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestNew_WritesToFileWithSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.log")
	logger, err := New(Options{Level: zapcore.InfoLevel, File: path})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("student added")
	require.NoError(t, logger.Sync())

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "student added", entries[0]["msg"])

	session, ok := entries[0]["session"].(string)
	require.True(t, ok)
	_, err = uuid.Parse(session)
	assert.NoError(t, err)
}

func TestNew_SessionsDiffer(t *testing.T) {
	dir := t.TempDir()
	var sessions []string
	for _, name := range []string{"a.log", "b.log"} {
		path := filepath.Join(dir, name)
		logger, err := New(Options{Level: zapcore.WarnLevel, File: path})
		require.NoError(t, err)
		logger.Warn("x")
		require.NoError(t, logger.Sync())
		sessions = append(sessions, readEntries(t, path)[0]["session"].(string))
	}
	assert.NotEqual(t, sessions[0], sessions[1])
}

func TestNew_BadPath(t *testing.T) {
	_, err := New(Options{Level: zapcore.InfoLevel, File: filepath.Join(t.TempDir(), "missing", "roster.log")})
	assert.Error(t, err)
}
