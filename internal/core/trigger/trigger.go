package trigger

import (
	"sync"

	"promotimer/internal/log"
)

// Target identifies which part of the widget received an interaction.
type Target int

const (
	TargetWidget Target = iota
	TargetCTA
)

func (target Target) String() string {
	if target == TargetCTA {
		return "cta"
	}
	return "widget"
}

// Outcome reports how an interaction was handled.
type Outcome struct {
	Issued         bool
	PreventDefault bool
}

// Trigger turns widget interactions into open-form commands until revoked.
type Trigger struct {
	mu      sync.Mutex
	formID  string
	sink    CommandSink
	bound   bool
	revoked bool
}

// New creates an unbound trigger. An empty formID makes it inert.
func New(formID string, sink CommandSink) *Trigger {
	return &Trigger{formID: formID, sink: sink}
}

// Bind starts issuing commands for interactions. A revoked trigger stays unbound.
func (trigger *Trigger) Bind() {
	trigger.mu.Lock()
	defer trigger.mu.Unlock()
	if trigger.formID == "" || trigger.sink == nil || trigger.revoked {
		return
	}
	trigger.bound = true
}

// Unbind stops issuing commands. Repeated calls are no-ops.
func (trigger *Trigger) Unbind() {
	trigger.mu.Lock()
	trigger.bound = false
	trigger.mu.Unlock()
}

// Bound reports whether interactions currently issue commands.
func (trigger *Trigger) Bound() bool {
	trigger.mu.Lock()
	defer trigger.mu.Unlock()
	return trigger.bound
}

// Handle processes one interaction. CTA interactions suppress the control's
// default action while the trigger is bound.
func (trigger *Trigger) Handle(target Target) Outcome {
	trigger.mu.Lock()
	if !trigger.bound {
		trigger.mu.Unlock()
		return Outcome{}
	}
	command := Command{Name: CommandOpenForm, FormID: trigger.formID}
	trigger.mu.Unlock()

	trigger.sink.Append(command)
	log.Debug("interaction issued command", "target", target, "command", command)
	return Outcome{Issued: true, PreventDefault: target == TargetCTA}
}

// Expire permanently unbinds the trigger and closes a form that may still
// be open. Only the first call issues a command.
func (trigger *Trigger) Expire() {
	trigger.mu.Lock()
	if trigger.revoked {
		trigger.mu.Unlock()
		return
	}
	trigger.revoked = true
	trigger.bound = false
	formID := trigger.formID
	trigger.mu.Unlock()

	if formID == "" || trigger.sink == nil {
		return
	}
	trigger.sink.Append(Command{Name: CommandCloseForm, FormID: formID})
}
