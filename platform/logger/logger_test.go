package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRotatingWritesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "notes.log")

	log, err := NewRotating("Notes-Tests", file)
	require.NoError(t, err)

	log.Infow("startup", "status", "ok")
	_ = log.Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"service":"Notes-Tests"`)
	assert.Contains(t, string(data), `"status":"ok"`)
}

func TestNewRotatingWithoutFile(t *testing.T) {
	log, err := NewRotating("Notes-Tests", "")
	require.NoError(t, err)
	assert.NotNil(t, log)
}
