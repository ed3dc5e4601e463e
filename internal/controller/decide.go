package controller

import (
	"github.com/tpfand/tpfand/internal/profile"
	"github.com/tpfand/tpfand/internal/sensors"
)

type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseActive
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseActive:
		return "active"
	case PhaseTerminated:
		return "terminated"
	}
	return "unknown"
}

type TerminationReason string

const (
	ReasonNone          TerminationReason = ""
	ReasonCancelled     TerminationReason = "cancelled"
	ReasonSensorFailure TerminationReason = "sensor-failure"
)

type Cause string

const (
	CauseInitial    Cause = "initial"
	CauseEscapeUp   Cause = "escape-up"
	CauseEscapeDown Cause = "escape-down"
)

// State of the control loop. Profile and RemainingHoldTicks are only
// meaningful while Phase is PhaseActive.
type State struct {
	Phase              Phase
	Profile            profile.Profile
	RemainingHoldTicks int
	Reason             TerminationReason
}

func Active(p profile.Profile, remainingHoldTicks int) State {
	return State{
		Phase:              PhaseActive,
		Profile:            p,
		RemainingHoldTicks: remainingHoldTicks,
	}
}

func Terminated(reason TerminationReason) State {
	return State{
		Phase:  PhaseTerminated,
		Reason: reason,
	}
}

// Transition describes a change of the active profile. From is nil for the
// initial selection.
type Transition struct {
	From  *profile.Profile
	To    profile.Profile
	Value int
	Cause Cause
}

// FromLevel returns the level of the previous profile, -1 if there was none.
func (t Transition) FromLevel() int {
	if t.From == nil {
		return -1
	}
	return t.From.Level
}

// Decision is the outcome of evaluating a single primary value.
type Decision struct {
	Next State
	// Command holds the level to apply, nil if the actuator must not be touched
	Command *int
	// Transition is set whenever the active profile changes
	Transition *Transition
	// Resync requests a read-compare-write of the current level
	Resync bool
	// Skipped is set if the value could not be evaluated
	Skipped bool
}

// Decide evaluates the primary zone value against the profile table.
// It has no side effects.
func Decide(table *profile.Table, state State, value int) Decision {
	if state.Phase == PhaseTerminated {
		return Decision{Next: state}
	}

	if value == sensors.NotPresent {
		return Decision{Next: state, Skipped: true}
	}

	if state.Phase == PhaseUninitialized {
		initial := table.Pick(value)
		return Decision{
			Next:       Active(initial, initial.HoldDelay),
			Command:    levelOf(initial),
			Transition: &Transition{To: initial, Value: value, Cause: CauseInitial},
		}
	}

	current := state.Profile

	if current.EscapesUp(value) {
		return escape(table, current, value, CauseEscapeUp)
	}

	if current.IsBelow(value) {
		remaining := state.RemainingHoldTicks - 1
		if remaining > 0 {
			return Decision{Next: Active(current, remaining)}
		}
		return escape(table, current, value, CauseEscapeDown)
	}

	// in band, or within the stick margin above it
	return Decision{
		Next:   Active(current, current.HoldDelay),
		Resync: true,
	}
}

func escape(table *profile.Table, current profile.Profile, value int, cause Cause) Decision {
	next := table.Pick(value)
	if next == current {
		return Decision{Next: Active(current, current.HoldDelay)}
	}

	from := current
	return Decision{
		Next:       Active(next, next.HoldDelay),
		Command:    levelOf(next),
		Transition: &Transition{From: &from, To: next, Value: value, Cause: cause},
	}
}

func levelOf(p profile.Profile) *int {
	level := p.Level
	return &level
}
