package storage

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"promotimer/internal/core/model"

	"gopkg.in/yaml.v3"
)

const (
	settingsFileName = "config.yaml"
	storeFileName    = "anchor.db"
)

// ErrUnknownMode indicates the configuration names an unsupported countdown mode.
var ErrUnknownMode = errors.New("unknown countdown mode")

type yamlSettings struct {
	Mode              string `yaml:"mode"`
	ManualEndDatetime string `yaml:"manual_end_datetime,omitempty"`
	RelativeDuration  string `yaml:"relative_duration,omitempty"`
	FormTriggerID     string `yaml:"form_trigger_id,omitempty"`
	DisplayColor      string `yaml:"display_color,omitempty"`
	CTALabel          string `yaml:"cta_label,omitempty"`
	CTAURL            string `yaml:"cta_url,omitempty"`
	StorePath         string `yaml:"store_path,omitempty"`
}

// LoadSettings reads widget settings from YAML.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (model.Settings, error) {
	settings := model.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	if err := applyYamlSettings(&settings, fileData); err != nil {
		return model.DefaultSettings(), err
	}
	return settings, nil
}

// SaveSettings writes widget settings to YAML.
func SaveSettings(path string, settings model.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	countdown := settings.Countdown
	fileData := yamlSettings{
		Mode:              string(countdown.Mode),
		ManualEndDatetime: countdown.AbsoluteEnd,
		FormTriggerID:     countdown.FormTriggerID,
		DisplayColor:      countdown.DisplayColor,
		CTALabel:          countdown.CTALabel,
		CTAURL:            countdown.CTAURL,
		StorePath:         settings.StorePath,
	}
	if countdown.RelativeDuration > 0 {
		fileData.RelativeDuration = countdown.RelativeDuration.String()
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

// ResolveConfigPath returns the default settings path for appName.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// ResolveStorePath returns the default anchor database path for appName.
func ResolveStorePath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, storeFileName), nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) error {
	switch strings.ToLower(strings.TrimSpace(fileData.Mode)) {
	case "":
	case string(model.ModeRelative):
		settings.Countdown.Mode = model.ModeRelative
	case string(model.ModeAbsolute), "absolute":
		settings.Countdown.Mode = model.ModeAbsolute
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, fileData.Mode)
	}

	if fileData.RelativeDuration != "" {
		duration, err := time.ParseDuration(fileData.RelativeDuration)
		if err != nil {
			return fmt.Errorf("parse relative_duration: %w", err)
		}
		if duration > 0 {
			settings.Countdown.RelativeDuration = duration
		}
	}

	if fileData.CTALabel != "" {
		settings.Countdown.CTALabel = fileData.CTALabel
	}

	ctaURL := strings.TrimSpace(fileData.CTAURL)
	if ctaURL != "" {
		if err := ValidateCTAURL(ctaURL); err != nil {
			return err
		}
	}
	settings.Countdown.CTAURL = ctaURL

	settings.Countdown.AbsoluteEnd = fileData.ManualEndDatetime
	settings.Countdown.FormTriggerID = strings.TrimSpace(fileData.FormTriggerID)
	settings.Countdown.DisplayColor = fileData.DisplayColor
	settings.StorePath = fileData.StorePath
	return nil
}

// ValidateCTAURL accepts absolute http(s) links only.
func ValidateCTAURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse cta_url: %w", err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("parse cta_url: %q is not an absolute http(s) link", raw)
	}
	return nil
}
