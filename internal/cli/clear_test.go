package cli

import (
	"testing"
	"time"

	"promotimer/internal/core/countdown"
	"promotimer/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClear_RemovesAnchor(t *testing.T) {
	configPath, storePath := testPaths(t)
	seedAnchor(t, storePath, time.Now().Add(-time.Hour))

	var err error
	output := captureOutput(t, func() {
		err = RunWithArgs("test", []string{"--config", configPath, "--store", storePath, "clear"})
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Countdown anchor cleared")

	store, err := storage.OpenSQLiteStore(storePath)
	require.NoError(t, err)
	defer store.Close()
	_, ok, err := store.Get(countdown.AnchorKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClear_NoAnchor(t *testing.T) {
	configPath, storePath := testPaths(t)

	var err error
	output := captureOutput(t, func() {
		err = RunWithArgs("test", []string{"--config", configPath, "--store", storePath, "clear"})
	})

	require.NoError(t, err)
	assert.Contains(t, output, "No countdown anchor stored.")
}

func TestClear_RemovesCorruptAnchor(t *testing.T) {
	configPath, storePath := testPaths(t)
	seedAnchor(t, storePath, time.Now().Add(1000*24*time.Hour))

	var err error
	output := captureOutput(t, func() {
		err = RunWithArgs("test", []string{"--config", configPath, "--store", storePath, "clear"})
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Countdown anchor cleared")
}
