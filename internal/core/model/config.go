package model

import "time"

// Mode selects how the countdown end moment is derived.
type Mode string

const (
	// ModeRelative anchors the countdown to the first run on this device.
	ModeRelative Mode = "relative"
	// ModeAbsolute counts down to a configured end moment.
	ModeAbsolute Mode = "manual"
)

// DefaultRelativeDuration is the length of a relative countdown window.
const DefaultRelativeDuration = 7 * 24 * time.Hour

// CountdownConfig contains the immutable settings of one widget instance.
type CountdownConfig struct {
	Mode             Mode
	AbsoluteEnd      string
	RelativeDuration time.Duration
	FormTriggerID    string
	DisplayColor     string
	CTALabel         string
	// CTAURL is where the call-to-action leads when no form opens in its place.
	CTAURL           string
}

// DefaultConfig returns settings for a seven day relative countdown.
func DefaultConfig() CountdownConfig {
	return CountdownConfig{
		Mode:             ModeRelative,
		RelativeDuration: DefaultRelativeDuration,
		CTALabel:         "Claim offer",
	}
}

// TriggerEnabled reports whether interactions should open the external form.
func (config CountdownConfig) TriggerEnabled() bool {
	return config.FormTriggerID != ""
}

// Settings contains everything loaded from the configuration file.
type Settings struct {
	Countdown CountdownConfig
	StorePath string
}

// DefaultSettings returns default settings for promotimer.
func DefaultSettings() Settings {
	return Settings{Countdown: DefaultConfig()}
}
