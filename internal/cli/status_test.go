package cli

import (
	"encoding/json"
	"testing"
	"time"

	"promotimer/internal/core/countdown"
	"promotimer/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runStatusJSON(t *testing.T, configPath, storePath string) statusReport {
	t.Helper()
	var err error
	output := captureOutput(t, func() {
		err = RunWithArgs("test", []string{"--config", configPath, "--store", storePath, "--json", "status"})
	})
	require.NoError(t, err)

	var report statusReport
	require.NoError(t, json.Unmarshal([]byte(output), &report), output)
	return report
}

func seedAnchor(t *testing.T, storePath string, anchor time.Time) {
	t.Helper()
	store, err := storage.OpenSQLiteStore(storePath)
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.Set(countdown.AnchorKey, countdown.EncodeAnchor(anchor)))
}

func TestStatus_RelativeWithoutAnchorDoesNotCreateOne(t *testing.T) {
	configPath, storePath := testPaths(t)

	report := runStatusJSON(t, configPath, storePath)

	assert.Equal(t, "relative", report.Mode)
	assert.Nil(t, report.Anchor)
	assert.Nil(t, report.EndMoment)
	assert.False(t, report.Expired)

	store, err := storage.OpenSQLiteStore(storePath)
	require.NoError(t, err)
	defer store.Close()
	_, ok, err := store.Get(countdown.AnchorKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStatus_RelativeWithAnchor(t *testing.T) {
	configPath, storePath := testPaths(t)
	writeConfig(t, configPath, "mode: relative\nform_trigger_id: Wyf6hq\n")
	anchor := time.Now().Add(-time.Hour - 30*time.Second)
	seedAnchor(t, storePath, anchor)

	report := runStatusJSON(t, configPath, storePath)

	assert.Equal(t, "Wyf6hq", report.FormID)
	require.NotNil(t, report.Anchor)
	assert.Equal(t, anchor.UnixMilli(), report.Anchor.UnixMilli())
	require.NotNil(t, report.EndMoment)
	assert.Equal(t, anchor.Add(7*24*time.Hour).UnixMilli(), report.EndMoment.UnixMilli())
	require.NotNil(t, report.Remaining)
	assert.Equal(t, int64(6), report.Remaining.Days)
	assert.Equal(t, int64(22), report.Remaining.Hours)
	assert.False(t, report.Expired)
}

func TestStatus_RelativeExpired(t *testing.T) {
	configPath, storePath := testPaths(t)
	seedAnchor(t, storePath, time.Now().Add(-8*24*time.Hour))

	report := runStatusJSON(t, configPath, storePath)

	assert.True(t, report.Expired)
	assert.Nil(t, report.Remaining)
}

func TestStatus_ManualMode(t *testing.T) {
	configPath, storePath := testPaths(t)
	writeConfig(t, configPath, "mode: manual\nmanual_end_datetime: \"2099-01-01T00:00:00Z\"\n")

	report := runStatusJSON(t, configPath, storePath)

	assert.Equal(t, "manual", report.Mode)
	assert.True(t, report.Configured)
	require.NotNil(t, report.EndMoment)
	assert.True(t, report.EndMoment.Equal(time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.NotNil(t, report.Remaining)
}

func TestStatus_ManualModeUnparsable(t *testing.T) {
	configPath, storePath := testPaths(t)
	writeConfig(t, configPath, "mode: manual\nmanual_end_datetime: not-a-date\n")

	report := runStatusJSON(t, configPath, storePath)

	assert.False(t, report.Configured)
	assert.Nil(t, report.EndMoment)
}

func TestStatus_TextOutput(t *testing.T) {
	configPath, storePath := testPaths(t)

	var err error
	output := captureOutput(t, func() {
		err = RunWithArgs("test", []string{"--config", configPath, "--store", storePath, "status"})
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Promo Timer Status")
	assert.Contains(t, output, "Mode:        relative")
	assert.Contains(t, output, "none (clicks do nothing)")
	assert.Contains(t, output, "not yet (a 168h0m0s window begins on first run)")
}

func TestStatus_FutureAnchorReportedCorrupt(t *testing.T) {
	configPath, storePath := testPaths(t)
	seedAnchor(t, storePath, time.Now().Add(1000*24*time.Hour))

	report := runStatusJSON(t, configPath, storePath)

	assert.True(t, report.AnchorCorrupt)
	assert.Nil(t, report.Anchor)
	assert.Nil(t, report.EndMoment)
	assert.Nil(t, report.Remaining)
}

func TestStatus_JSONKeysAreSnakeCase(t *testing.T) {
	configPath, storePath := testPaths(t)
	seedAnchor(t, storePath, time.Now().Add(-time.Hour))

	var err error
	output := captureOutput(t, func() {
		err = RunWithArgs("test", []string{"--config", configPath, "--store", storePath, "--json", "status"})
	})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &raw))
	remaining, ok := raw["remaining"].(map[string]any)
	require.True(t, ok, output)
	assert.Contains(t, remaining, "days")
	assert.Contains(t, remaining, "hours")
	assert.Contains(t, remaining, "minutes")
	assert.Contains(t, remaining, "seconds")
	assert.NotContains(t, remaining, "Days")
}
