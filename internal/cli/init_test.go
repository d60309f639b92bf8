package cli

import (
	"testing"
	"time"

	"promotimer/internal/core/model"
	"promotimer/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesRelativeConfig(t *testing.T) {
	configPath, _ := testPaths(t)

	var err error
	output := captureOutput(t, func() {
		err = RunWithArgs("test", []string{"--config", configPath, "init", "--form-id", " Wyf6hq ", "--color", "#ff3366"})
	})

	require.NoError(t, err)
	assert.Contains(t, output, configPath)

	settings, err := storage.LoadSettings(configPath)
	require.NoError(t, err)
	assert.Equal(t, model.ModeRelative, settings.Countdown.Mode)
	assert.Equal(t, "Wyf6hq", settings.Countdown.FormTriggerID)
	assert.Equal(t, "#ff3366", settings.Countdown.DisplayColor)
	assert.Equal(t, 7*24*time.Hour, settings.Countdown.RelativeDuration)
}

func TestInit_WritesManualConfig(t *testing.T) {
	configPath, _ := testPaths(t)

	var err error
	captureOutput(t, func() {
		err = RunWithArgs("test", []string{"--config", configPath, "init", "--mode", "manual", "--end", "2030-01-01T00:00:00Z"})
	})

	require.NoError(t, err)
	settings, err := storage.LoadSettings(configPath)
	require.NoError(t, err)
	assert.Equal(t, model.ModeAbsolute, settings.Countdown.Mode)
	assert.Equal(t, "2030-01-01T00:00:00Z", settings.Countdown.AbsoluteEnd)
}

func TestInit_ManualRequiresValidEnd(t *testing.T) {
	configPath, _ := testPaths(t)

	err := RunWithArgs("test", []string{"--config", configPath, "init", "--mode", "manual", "--end", "soon"})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidEndMoment)
}

func TestInit_UnknownMode(t *testing.T) {
	configPath, _ := testPaths(t)

	err := RunWithArgs("test", []string{"--config", configPath, "init", "--mode", "weekly"})

	assert.ErrorIs(t, err, storage.ErrUnknownMode)
}

func TestInit_RefusesOverwriteWithoutForce(t *testing.T) {
	configPath, _ := testPaths(t)
	writeConfig(t, configPath, "mode: relative\n")

	err := RunWithArgs("test", []string{"--config", configPath, "init"})
	assert.Error(t, err)

	captureOutput(t, func() {
		err = RunWithArgs("test", []string{"--config", configPath, "init", "--force", "--form-id", "abc"})
	})
	require.NoError(t, err)

	settings, err := storage.LoadSettings(configPath)
	require.NoError(t, err)
	assert.Equal(t, "abc", settings.Countdown.FormTriggerID)
}

func TestInit_CTAURL(t *testing.T) {
	configPath, _ := testPaths(t)

	err := RunWithArgs("test", []string{"--config", configPath, "init", "--cta-url", "offer"})
	assert.ErrorContains(t, err, "cta_url")

	captureOutput(t, func() {
		err = RunWithArgs("test", []string{"--config", configPath, "init", "--cta-url", "https://example.com/offer"})
	})
	require.NoError(t, err)
	settings, err := storage.LoadSettings(configPath)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/offer", settings.Countdown.CTAURL)
}
