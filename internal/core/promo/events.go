package promo

import (
	"time"

	"promotimer/internal/core/countdown"
)

// Frame is one rendered tick of the countdown.
type Frame struct {
	Breakdown countdown.Breakdown
	Digits    [4]string
	Color     string
}

// DisplaySink presents frames and removes the widget on expiry.
type DisplaySink interface {
	Render(frame Frame)
	Remove()
}

// LifecycleType defines the type of widget lifecycle event.
type LifecycleType string

const (
	LifecycleStarted LifecycleType = "started"
	LifecycleRemoved LifecycleType = "removed"
)

// Lifecycle is emitted when the widget starts counting or is removed.
type Lifecycle struct {
	Type      LifecycleType
	EndMoment time.Time
	At        time.Time
}
