package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SlogJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Backend: BackendSlog, Level: "warn", Output: &buf})
	require.NoError(t, err)

	ctx := context.Background()
	log.Info(ctx, "hidden")
	log.Warn(ctx, "shown", "field", "email")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "email", entry["field"])
}

func TestNew_DefaultsToSlog(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Output: &buf})
	require.NoError(t, err)
	assert.IsType(t, &SlogLogger{}, log)
}

func TestNew_ZapToWriter(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Backend: BackendZap, Level: "debug", Output: &buf})
	require.NoError(t, err)

	zl, ok := log.(*ZapLogger)
	require.True(t, ok)

	zl.With("module", "store").Debug(context.Background(), "user deleted", "id", "7")
	require.NoError(t, zl.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "user deleted", entry["msg"])
	assert.Equal(t, "store", entry["module"])
	assert.Equal(t, "7", entry["id"])
}

func TestNew_ZapToRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	log, err := New(Options{Backend: BackendZap, File: path})
	require.NoError(t, err)

	log.Info(context.Background(), "started")
	require.FileExists(t, path)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(Options{Backend: "logrus"})
	require.Error(t, err)

	_, err = New(Options{Backend: BackendSlog, Level: "loud"})
	require.Error(t, err)

	_, err = New(Options{Backend: BackendZap, Level: "loud"})
	require.Error(t, err)
}
