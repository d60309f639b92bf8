package countdown

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"promotimer/internal/core/model"
	"promotimer/internal/log"
)

// ErrNoEndMoment indicates an absolute countdown has no usable end moment.
var ErrNoEndMoment = errors.New("no end moment")

// Options contains the collaborators of an Engine.
type Options struct {
	Store     KeyValueStore
	Scheduler Scheduler
	Clock     Clock
}

// Engine is a state machine that counts down to a fixed end moment.
type Engine struct {
	mu            sync.Mutex
	config        model.CountdownConfig
	store         KeyValueStore
	scheduler     Scheduler
	clock         Clock
	state         State
	endMoment     time.Time
	anchorStored  bool
	started       bool
	expiryHandled bool
	tickHandlers  []func(Breakdown)
	expireHooks   []func()
	events        []chan Event
}

// New creates an Engine. Initialize must be called before Start.
func New(config model.CountdownConfig, options Options) *Engine {
	if config.RelativeDuration <= 0 {
		config.RelativeDuration = model.DefaultRelativeDuration
	}
	if options.Clock == nil {
		options.Clock = SystemClock{}
	}
	return &Engine{
		config:    config,
		store:     options.Store,
		scheduler: options.Scheduler,
		clock:     options.Clock,
		state:     StateUninitialized,
	}
}

// OnTick registers a handler that receives every non-expired breakdown.
func (engine *Engine) OnTick(handler func(Breakdown)) {
	engine.mu.Lock()
	engine.tickHandlers = append(engine.tickHandlers, handler)
	engine.mu.Unlock()
}

// OnExpire registers a handler run once when the countdown expires.
func (engine *Engine) OnExpire(handler func()) {
	engine.mu.Lock()
	engine.expireHooks = append(engine.expireHooks, handler)
	engine.mu.Unlock()
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	engine.events = append(engine.events, ch)
	engine.mu.Unlock()
	return ch
}

// Initialize computes the end moment. It is computed once; later calls
// return the same value.
func (engine *Engine) Initialize() (time.Time, error) {
	engine.mu.Lock()
	defer engine.mu.Unlock()

	if engine.state != StateUninitialized {
		return engine.endMoment, nil
	}

	if engine.config.Mode == model.ModeAbsolute {
		endMoment, err := model.ParseEndMoment(engine.config.AbsoluteEnd, time.Local)
		if err != nil {
			log.Debug("countdown disabled", "mode", engine.config.Mode, "end", engine.config.AbsoluteEnd)
			return time.Time{}, fmt.Errorf("%w: %q", ErrNoEndMoment, engine.config.AbsoluteEnd)
		}
		engine.endMoment = endMoment
	} else {
		anchor := engine.resolveAnchorLocked()
		engine.endMoment = anchor.Add(engine.config.RelativeDuration)
	}

	engine.state = StateRunning
	log.Debug("countdown initialized", "mode", engine.config.Mode, "end", engine.endMoment)
	return engine.endMoment, nil
}

// Start renders the first tick and keeps ticking on each scheduled frame
// until the countdown expires. It is a no-op unless the engine is running.
func (engine *Engine) Start() {
	engine.mu.Lock()
	if engine.state != StateRunning || engine.started {
		engine.mu.Unlock()
		return
	}
	engine.started = true
	engine.mu.Unlock()

	engine.frame()
}

// Tick computes the remaining time. The boolean is true once expired.
func (engine *Engine) Tick() (Breakdown, bool) {
	engine.mu.Lock()
	if engine.state != StateRunning {
		expired := engine.state == StateExpired
		engine.mu.Unlock()
		return Breakdown{}, expired
	}

	now := engine.clock.Now()
	remaining := engine.endMoment.Sub(now)
	if remaining <= 0 {
		engine.state = StateExpired
		engine.mu.Unlock()
		engine.handleExpiry(now)
		return Breakdown{}, true
	}

	breakdown := Decompose(remaining)
	handlers := append([]func(Breakdown){}, engine.tickHandlers...)
	engine.emitLocked(Event{
		Type:      EventTick,
		State:     StateRunning,
		Remaining: remaining,
		Breakdown: breakdown,
		At:        now,
	})
	engine.mu.Unlock()

	for _, handler := range handlers {
		handler(breakdown)
	}
	return breakdown, false
}

// Expire ends a running countdown immediately. Repeated calls are no-ops.
func (engine *Engine) Expire() {
	engine.mu.Lock()
	if engine.state == StateUninitialized {
		engine.mu.Unlock()
		return
	}
	engine.state = StateExpired
	engine.mu.Unlock()

	engine.handleExpiry(engine.clock.Now())
}

// State returns the current lifecycle state.
func (engine *Engine) State() State {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.state
}

// EndMoment returns the computed end moment, if any.
func (engine *Engine) EndMoment() (time.Time, bool) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.endMoment, engine.state != StateUninitialized
}

func (engine *Engine) frame() {
	if _, expired := engine.Tick(); expired {
		return
	}
	if engine.scheduler == nil {
		return
	}
	engine.scheduler.ScheduleNextFrame(engine.frame)
}

func (engine *Engine) handleExpiry(now time.Time) {
	engine.mu.Lock()
	if engine.expiryHandled {
		engine.mu.Unlock()
		return
	}
	engine.expiryHandled = true
	clearAnchor := engine.config.Mode != model.ModeAbsolute && engine.anchorStored
	hooks := append([]func(){}, engine.expireHooks...)
	engine.emitLocked(Event{
		Type:  EventExpired,
		State: StateExpired,
		At:    now,
	})
	engine.mu.Unlock()

	if clearAnchor {
		if err := ClearAnchor(engine.store); err != nil {
			log.Warn("clear countdown anchor", "key", AnchorKey, "error", err)
		}
	}
	log.Info("countdown expired", "mode", engine.config.Mode)

	for _, hook := range hooks {
		hook()
	}
}

// resolveAnchorLocked returns the stored anchor or creates a fresh one.
// Unreadable storage yields an in-memory anchor that is not persisted.
func (engine *Engine) resolveAnchorLocked() time.Time {
	now := time.UnixMilli(engine.clock.Now().UnixMilli())
	if engine.store == nil {
		return now
	}

	anchor, ok, err := ReadAnchor(engine.store, now)
	switch {
	case err == nil && ok:
		engine.anchorStored = true
		return anchor
	case errors.Is(err, ErrCorruptAnchor):
		log.Warn("discarding corrupt countdown anchor", "key", AnchorKey)
	case err != nil:
		log.Warn("countdown anchor unreadable, using in-memory anchor", "key", AnchorKey, "error", err)
		return now
	}

	if err := engine.store.Set(AnchorKey, EncodeAnchor(now)); err != nil {
		log.Warn("persist countdown anchor", "key", AnchorKey, "error", err)
		return now
	}
	engine.anchorStored = true
	return now
}

func (engine *Engine) emitLocked(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
