package model

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidEndMoment indicates the configured end moment could not be parsed.
var ErrInvalidEndMoment = errors.New("invalid end moment")

var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05Z07:00",
}

var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseEndMoment parses an ISO-like date string.
// Date-only values are read as UTC midnight, date-times without an offset
// are read in the provided location.
func ParseEndMoment(raw string, location *time.Location) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, ErrInvalidEndMoment
	}
	if location == nil {
		location = time.Local
	}

	for _, layout := range zonedLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed.UTC(), nil
	}
	for _, layout := range localLayouts {
		if parsed, err := time.ParseInLocation(layout, value, location); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, ErrInvalidEndMoment
}
