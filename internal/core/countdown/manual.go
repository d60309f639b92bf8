package countdown

import (
	"sync"
	"time"
)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// Scheduler runs a callback on the host's next display frame.
type Scheduler interface {
	ScheduleNextFrame(callback func())
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock provides a controllable time source for testing.
type ManualClock struct {
	mu      sync.RWMutex
	current time.Time
}

// NewManualClock creates a manual clock set to start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

// Now returns the current mocked time.
func (clock *ManualClock) Now() time.Time {
	clock.mu.RLock()
	defer clock.mu.RUnlock()
	return clock.current
}

// Set moves the clock to t.
func (clock *ManualClock) Set(t time.Time) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.current = t
}

// Advance moves the clock forward by delta.
func (clock *ManualClock) Advance(delta time.Duration) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.current = clock.current.Add(delta)
}

// ManualScheduler queues frame callbacks until Step is called.
type ManualScheduler struct {
	mu      sync.Mutex
	pending []func()
}

// ScheduleNextFrame queues callback for the next Step.
func (scheduler *ManualScheduler) ScheduleNextFrame(callback func()) {
	scheduler.mu.Lock()
	scheduler.pending = append(scheduler.pending, callback)
	scheduler.mu.Unlock()
}

// Step runs the callbacks queued before the call and returns how many ran.
func (scheduler *ManualScheduler) Step() int {
	scheduler.mu.Lock()
	callbacks := scheduler.pending
	scheduler.pending = nil
	scheduler.mu.Unlock()

	for _, callback := range callbacks {
		callback()
	}
	return len(callbacks)
}

// Pending reports the number of queued callbacks.
func (scheduler *ManualScheduler) Pending() int {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return len(scheduler.pending)
}
