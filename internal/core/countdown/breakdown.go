package countdown

import (
	"fmt"
	"time"
)

const (
	millisPerSecond = int64(1000)
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
	millisPerDay    = 24 * millisPerHour
)

// Breakdown is a remaining duration split into display units.
type Breakdown struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
}

// Decompose floors remaining into whole days, hours, minutes and seconds.
// Negative durations decompose to zero.
func Decompose(remaining time.Duration) Breakdown {
	millis := remaining.Milliseconds()
	if millis <= 0 {
		return Breakdown{}
	}
	return Breakdown{
		Days:    millis / millisPerDay,
		Hours:   (millis % millisPerDay) / millisPerHour,
		Minutes: (millis % millisPerHour) / millisPerMinute,
		Seconds: (millis % millisPerMinute) / millisPerSecond,
	}
}

// TotalSeconds returns the number of whole seconds the breakdown covers.
func (breakdown Breakdown) TotalSeconds() int64 {
	return breakdown.Days*86400 + breakdown.Hours*3600 + breakdown.Minutes*60 + breakdown.Seconds
}

// Padded returns each unit zero-padded to at least two digits.
func (breakdown Breakdown) Padded() [4]string {
	return [4]string{
		pad(breakdown.Days),
		pad(breakdown.Hours),
		pad(breakdown.Minutes),
		pad(breakdown.Seconds),
	}
}

// String formats the breakdown as DD:HH:MM:SS.
func (breakdown Breakdown) String() string {
	parts := breakdown.Padded()
	return fmt.Sprintf("%s:%s:%s:%s", parts[0], parts[1], parts[2], parts[3])
}

func pad(value int64) string {
	return fmt.Sprintf("%02d", value)
}
