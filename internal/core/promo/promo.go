// Package promo wires the countdown engine and the interaction trigger into
// a single promotional widget.
package promo

import (
	"errors"
	"sync"
	"time"

	"promotimer/internal/core/countdown"
	"promotimer/internal/core/model"
	"promotimer/internal/core/trigger"
	"promotimer/internal/log"
)

// Collaborators are the host capabilities a widget depends on.
type Collaborators struct {
	Store     countdown.KeyValueStore
	Commands  trigger.CommandSink
	Scheduler countdown.Scheduler
	Clock     countdown.Clock
	Display   DisplaySink
}

// Widget is one countdown instance with its interaction trigger.
type Widget struct {
	mu        sync.Mutex
	config    model.CountdownConfig
	engine    *countdown.Engine
	trigger   *trigger.Trigger
	display   DisplaySink
	clock     countdown.Clock
	enabled   bool
	endMoment time.Time
	removed   bool
	events    []chan Lifecycle
}

// Initialize computes the end moment and binds the trigger. Ticking begins
// with Start. A manual countdown without a usable end moment yields a widget
// that never counts down.
func Initialize(config model.CountdownConfig, collaborators Collaborators) *Widget {
	clock := collaborators.Clock
	if clock == nil {
		clock = countdown.SystemClock{}
	}

	widget := &Widget{
		config:  config,
		display: collaborators.Display,
		clock:   clock,
		trigger: trigger.New(config.FormTriggerID, collaborators.Commands),
		engine: countdown.New(config, countdown.Options{
			Store:     collaborators.Store,
			Scheduler: collaborators.Scheduler,
			Clock:     clock,
		}),
	}

	if config.TriggerEnabled() {
		widget.trigger.Bind()
	} else {
		log.Debug("no form trigger id, interactions open nothing")
	}
	widget.engine.OnTick(widget.render)
	widget.engine.OnExpire(widget.teardown)

	endMoment, err := widget.engine.Initialize()
	switch {
	case err == nil:
		widget.enabled = true
		widget.endMoment = endMoment
	case errors.Is(err, countdown.ErrNoEndMoment):
		log.Debug("widget will not count down", "error", err)
	default:
		log.Warn("initialize countdown", "error", err)
	}
	return widget
}

// Start renders the first frame and keeps rendering until expiry.
func (widget *Widget) Start() {
	if !widget.enabled {
		return
	}
	widget.emit(Lifecycle{Type: LifecycleStarted, EndMoment: widget.endMoment, At: widget.clock.Now()})
	widget.engine.Start()
}

// Interact handles a click on the widget or its call-to-action control.
func (widget *Widget) Interact(target trigger.Target) trigger.Outcome {
	return widget.trigger.Handle(target)
}

// Subscribe registers a lifecycle observer channel.
func (widget *Widget) Subscribe(buffer int) <-chan Lifecycle {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Lifecycle, buffer)
	widget.mu.Lock()
	widget.events = append(widget.events, ch)
	widget.mu.Unlock()
	return ch
}

// Engine exposes the underlying countdown engine.
func (widget *Widget) Engine() *countdown.Engine {
	return widget.engine
}

// Enabled reports whether the widget has an end moment to count down to.
func (widget *Widget) Enabled() bool {
	return widget.enabled
}

// EndMoment returns the computed end moment.
func (widget *Widget) EndMoment() (time.Time, bool) {
	return widget.endMoment, widget.enabled
}

// Removed reports whether the widget was torn down after expiry.
func (widget *Widget) Removed() bool {
	widget.mu.Lock()
	defer widget.mu.Unlock()
	return widget.removed
}

// TriggerBound reports whether interactions currently open the form.
func (widget *Widget) TriggerBound() bool {
	return widget.trigger.Bound()
}

// Config returns the widget configuration.
func (widget *Widget) Config() model.CountdownConfig {
	return widget.config
}

func (widget *Widget) render(breakdown countdown.Breakdown) {
	if widget.display == nil {
		return
	}
	widget.display.Render(Frame{
		Breakdown: breakdown,
		Digits:    breakdown.Padded(),
		Color:     widget.config.DisplayColor,
	})
}

func (widget *Widget) teardown() {
	widget.trigger.Expire()

	widget.mu.Lock()
	if widget.removed {
		widget.mu.Unlock()
		return
	}
	widget.removed = true
	widget.mu.Unlock()

	if widget.display != nil {
		widget.display.Remove()
	}
	widget.emit(Lifecycle{Type: LifecycleRemoved, EndMoment: widget.endMoment, At: widget.clock.Now()})
}

func (widget *Widget) emit(event Lifecycle) {
	widget.mu.Lock()
	events := append([]chan Lifecycle(nil), widget.events...)
	widget.mu.Unlock()
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
