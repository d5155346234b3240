package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDisabledByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, err := New(false, dir)
	require.NoError(t, err)
	logger.Info("discarded")

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "no log dir without debug")
}

func TestNewWritesFileWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, err := New(true, dir)
	require.NoError(t, err)

	logger.Info("lap completed")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "lap completed")
}

func TestNewRotatesLargeLog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, make([]byte, maxLogSize+1), 0o644))

	logger, err := New(true, dir)
	require.NoError(t, err)
	logger.Info("fresh")
	_ = logger.Sync()

	old, err := os.Stat(path + ".old")
	require.NoError(t, err)
	assert.EqualValues(t, maxLogSize+1, old.Size())

	cur, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, cur.Size(), int64(maxLogSize))
}

func TestRotateKeepsSmallLog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("previous\n"), 0o644))

	require.NoError(t, rotate(path))
	_, err := os.Stat(path + ".old")
	assert.True(t, os.IsNotExist(err))
}
