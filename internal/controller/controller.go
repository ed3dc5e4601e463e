package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tpfand/tpfand/internal/fans"
	"github.com/tpfand/tpfand/internal/profile"
	"github.com/tpfand/tpfand/internal/sensors"
	"github.com/tpfand/tpfand/internal/ui"
	"github.com/tpfand/tpfand/internal/util"
)

const DefaultWindowSize = 100

// Listener is notified by the control loop. Calls happen on the loop goroutine
// after the fan has been commanded and must not block.
type Listener interface {
	OnTick(snapshot Snapshot)
	OnTransition(transition Transition, at time.Time)
}

// Snapshot is a copy of the observable controller state after a tick.
type Snapshot struct {
	Phase              string           `json:"phase"`
	Reason             string           `json:"reason,omitempty"`
	Profile            *profile.Profile `json:"profile,omitempty"`
	RemainingHoldTicks int              `json:"remainingHoldTicks"`
	Reading            sensors.Reading  `json:"reading"`
	PrimaryZone        int              `json:"primaryZone"`
	PrimaryValue       int              `json:"primaryValue"`
	Window             util.WindowStats `json:"window"`
	Counters           Counters         `json:"counters"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

type Controller struct {
	sensor      sensors.Gateway
	actuator    fans.Actuator
	table       *profile.Table
	primaryZone int
	tickRate    time.Duration
	listeners   []Listener

	mu       sync.RWMutex
	state    State
	stats    *statistics
	snapshot Snapshot
}

func NewController(
	sensor sensors.Gateway,
	actuator fans.Actuator,
	table *profile.Table,
	primaryZone int,
	tickRate time.Duration,
	listeners ...Listener,
) *Controller {
	return &Controller{
		sensor:      sensor,
		actuator:    actuator,
		table:       table,
		primaryZone: primaryZone,
		tickRate:    tickRate,
		listeners:   listeners,
		stats:       newStatistics(DefaultWindowSize),
		snapshot: Snapshot{
			Phase:        PhaseUninitialized.String(),
			PrimaryZone:  primaryZone,
			PrimaryValue: sensors.NotPresent,
		},
	}
}

// Run executes the control loop until ctx is cancelled or the sensor fails.
// Cancellation ends the loop without error, a sensor failure is returned.
func (c *Controller) Run(ctx context.Context) error {
	ui.Info("Starting control loop (tick rate: %s, primary zone: %d)", c.tickRate, c.primaryZone)

	ticker := time.NewTicker(c.tickRate)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			c.terminate(ReasonCancelled)
			ui.Info("Control loop stopped: %s", ReasonCancelled)
			return nil
		}

		err := c.Tick()
		if err != nil {
			ui.Error("Control loop stopped: %s: %v", ReasonSensorFailure, err)
			return err
		}

		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
	}
}

// Tick runs a single fetch, decide, actuate iteration.
func (c *Controller) Tick() error {
	reading, err := c.sensor.FetchReading()
	if err != nil {
		c.terminate(ReasonSensorFailure)
		return fmt.Errorf("sensor %s: %w", c.sensor.GetId(), err)
	}

	value := reading.Zone(c.primaryZone)

	c.mu.Lock()
	previous := c.state
	decision := Decide(c.table, previous, value)
	c.state = decision.Next
	c.stats.Ticks++
	if decision.Skipped {
		c.stats.SkippedTicks++
	} else {
		c.stats.observe(value)
	}
	if decision.Transition != nil {
		c.stats.Transitions++
	}
	c.mu.Unlock()

	if decision.Skipped {
		ui.Debug("Primary zone %d is not present, skipping tick", c.primaryZone)
	}

	if decision.Command != nil {
		c.apply(*decision.Command)
	} else if decision.Resync {
		c.resync(decision.Next.Profile.Level)
	}

	// listeners only hear about a transition once the fan has been commanded
	if decision.Transition != nil {
		c.onTransition(*decision.Transition)
	}

	c.publish(reading, value)
	return nil
}

// State returns the current state of the loop.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Snapshot returns the state published by the most recent tick.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

func (c *Controller) onTransition(transition Transition) {
	if transition.From == nil {
		ui.Info("none => %d", transition.To.Level)
	} else {
		ui.Info("%d => %d", transition.From.Level, transition.To.Level)
	}
	ui.Debug("Transition (%s) at value %d: %s", transition.Cause, transition.Value, transition.To)

	now := time.Now()
	for _, listener := range c.listeners {
		listener.OnTransition(transition, now)
	}
}

func (c *Controller) apply(level int) {
	_, err := fans.ApplyLevel(c.actuator, level)
	if errors.Is(err, fans.ErrWriteFailed) {
		c.mu.Lock()
		c.stats.WriteFailures++
		c.mu.Unlock()
		ui.Error("Unable to set fan level %d: %v", level, err)
	} else if err != nil {
		ui.Warning("Fan level %d was set without reading the previous level: %v", level, err)
	}
}

func (c *Controller) resync(level int) {
	reported, err := fans.ApplyLevel(c.actuator, level)
	if err == nil && reported == level {
		return
	}

	readFailed := errors.Is(err, fans.ErrReadFailed)
	writeFailed := errors.Is(err, fans.ErrWriteFailed)
	changed := !readFailed && reported != level

	c.mu.Lock()
	if changed {
		c.stats.Resyncs++
	}
	if writeFailed {
		c.stats.WriteFailures++
	}
	c.mu.Unlock()

	if changed {
		ui.Warning("Fan level of %s was changed by third party! Expected level: %d but is now: %d", c.actuator.GetId(), level, reported)
	}
	if readFailed {
		ui.Warning("Unable to verify level of fan %s, level %d was written again: %v", c.actuator.GetId(), level, err)
	}
	if writeFailed {
		ui.Error("Unable to restore fan level %d: %v", level, err)
	}
}

func (c *Controller) terminate(reason TerminationReason) {
	c.mu.Lock()
	c.state = Terminated(reason)
	c.snapshot.Phase = PhaseTerminated.String()
	c.snapshot.Reason = string(reason)
	c.snapshot.Profile = nil
	c.snapshot.UpdatedAt = time.Now()
	snapshot := c.snapshot
	c.mu.Unlock()

	for _, listener := range c.listeners {
		listener.OnTick(snapshot)
	}
}

func (c *Controller) publish(reading sensors.Reading, value int) {
	c.mu.Lock()
	snapshot := Snapshot{
		Phase:        c.state.Phase.String(),
		Reason:       string(c.state.Reason),
		Reading:      append(sensors.Reading(nil), reading...),
		PrimaryZone:  c.primaryZone,
		PrimaryValue: value,
		Window:       c.stats.windowStats(),
		Counters:     c.stats.Counters,
		UpdatedAt:    time.Now(),
	}
	if c.state.Phase == PhaseActive {
		active := c.state.Profile
		snapshot.Profile = &active
		snapshot.RemainingHoldTicks = c.state.RemainingHoldTicks
	}
	c.snapshot = snapshot
	c.mu.Unlock()

	for _, listener := range c.listeners {
		listener.OnTick(snapshot)
	}
}

// IsSensorFailure reports whether err ended the loop because of the sensor.
func IsSensorFailure(err error) bool {
	return errors.Is(err, sensors.ErrReadFailed) || errors.Is(err, sensors.ErrShapeMismatch)
}
