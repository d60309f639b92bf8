package banner

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// FrameScheduler runs callbacks on Fyne's animation cadence, once per
// rendered frame. It idles when nothing is scheduled.
type FrameScheduler struct {
	mu        sync.Mutex
	pending   []func()
	running   bool
	animation *fyne.Animation
}

// NewFrameScheduler creates a scheduler bound to the current Fyne app.
func NewFrameScheduler() *FrameScheduler {
	scheduler := &FrameScheduler{}
	scheduler.animation = fyne.NewAnimation(time.Second, scheduler.onFrame)
	scheduler.animation.RepeatCount = fyne.AnimationRepeatForever
	return scheduler
}

// ScheduleNextFrame queues callback for the next rendered frame.
func (scheduler *FrameScheduler) ScheduleNextFrame(callback func()) {
	scheduler.mu.Lock()
	scheduler.pending = append(scheduler.pending, callback)
	start := !scheduler.running
	scheduler.running = true
	scheduler.mu.Unlock()

	if start {
		scheduler.animation.Start()
	}
}

// Stop drops pending callbacks and halts the animation.
func (scheduler *FrameScheduler) Stop() {
	scheduler.mu.Lock()
	scheduler.pending = nil
	wasRunning := scheduler.running
	scheduler.running = false
	scheduler.mu.Unlock()

	if wasRunning {
		scheduler.animation.Stop()
	}
}

func (scheduler *FrameScheduler) onFrame(float32) {
	scheduler.mu.Lock()
	callbacks := scheduler.pending
	scheduler.pending = nil
	if len(callbacks) == 0 {
		scheduler.running = false
		scheduler.mu.Unlock()
		scheduler.animation.Stop()
		return
	}
	scheduler.mu.Unlock()

	for _, callback := range callbacks {
		callback()
	}
}
