package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"promotimer/internal/core/model"
	"promotimer/internal/log"
	"promotimer/internal/storage"
)

// Execute runs the init command.
func (c *InitCommand) Execute(args []string) error {
	if err := log.Init(log.Options{Verbose: c.globals.Verbose, File: c.globals.LogFile}); err != nil {
		return err
	}
	defer log.Close()

	path, err := c.globals.configPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !c.Force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	settings := model.DefaultSettings()
	switch strings.ToLower(strings.TrimSpace(c.Mode)) {
	case "", string(model.ModeRelative):
		settings.Countdown.Mode = model.ModeRelative
	case string(model.ModeAbsolute), "absolute":
		settings.Countdown.Mode = model.ModeAbsolute
		if _, err := model.ParseEndMoment(c.End, time.Local); err != nil {
			return fmt.Errorf("--end: %w", err)
		}
		settings.Countdown.AbsoluteEnd = c.End
	default:
		return fmt.Errorf("%w: %q", storage.ErrUnknownMode, c.Mode)
	}
	settings.Countdown.FormTriggerID = strings.TrimSpace(c.FormID)
	settings.Countdown.DisplayColor = c.Color
	if c.CTAURL != "" {
		if err := storage.ValidateCTAURL(c.CTAURL); err != nil {
			return err
		}
		settings.Countdown.CTAURL = c.CTAURL
	}

	if err := storage.SaveSettings(path, settings); err != nil {
		return err
	}
	log.Debug("config written", "path", path)
	fmt.Printf("Wrote config to %s\n", path)
	return nil
}
