package cli

import (
	"fmt"
	"io"
	"time"

	"promotimer/internal/core/countdown"
	"promotimer/internal/core/model"
	"promotimer/internal/log"
	"promotimer/internal/storage"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setup initializes logging and loads settings.
func (globals *GlobalFlags) setup() (model.Settings, error) {
	if err := log.Init(log.Options{
		Verbose:    globals.Verbose,
		JSONFormat: globals.JSON,
		File:       globals.LogFile,
	}); err != nil {
		return model.Settings{}, err
	}

	path, err := globals.configPath()
	if err != nil {
		return model.Settings{}, err
	}
	settings, err := storage.LoadSettings(path)
	if err != nil {
		return model.Settings{}, err
	}
	log.Debug("settings loaded", "path", path, "mode", settings.Countdown.Mode)
	return settings, nil
}

func (globals *GlobalFlags) configPath() (string, error) {
	if globals.Config != "" {
		return globals.Config, nil
	}
	return storage.ResolveConfigPath(appName)
}

func (globals *GlobalFlags) storePath(settings model.Settings) (string, error) {
	if globals.Store != "" {
		return globals.Store, nil
	}
	if settings.StorePath != "" {
		return settings.StorePath, nil
	}
	return storage.ResolveStorePath(appName)
}

// instanceKey identifies the anchor a desktop banner counts down, so only
// one banner per store is on screen.
func (globals *GlobalFlags) instanceKey(settings model.Settings) string {
	if globals.Ephemeral {
		return appName + ":memory"
	}
	path, err := globals.storePath(settings)
	if err != nil {
		return appName
	}
	return appName + ":" + path
}

// openStore opens the anchor store. With tolerant set, a store that cannot
// be opened degrades to memory so the countdown still runs.
func (globals *GlobalFlags) openStore(settings model.Settings, tolerant bool) (countdown.KeyValueStore, io.Closer, error) {
	if globals.Ephemeral {
		return storage.NewMemoryStore(), nopCloser{}, nil
	}

	path, err := globals.storePath(settings)
	if err == nil {
		var store *storage.SQLiteStore
		store, err = storage.OpenSQLiteStore(path)
		if err == nil {
			return store, store, nil
		}
	}
	if !tolerant {
		return nil, nil, fmt.Errorf("open anchor store: %w", err)
	}
	log.Warn("anchor store unavailable, countdown will not survive a restart", "error", err)
	return storage.NewMemoryStore(), nopCloser{}, nil
}

// formatBreakdown formats a breakdown like "6d 23:59:59".
func formatBreakdown(breakdown countdown.Breakdown) string {
	parts := breakdown.Padded()
	return fmt.Sprintf("%sd %s:%s:%s", parts[0], parts[1], parts[2], parts[3])
}

func formatMoment(moment time.Time) string {
	return moment.Local().Format(time.RFC3339)
}
