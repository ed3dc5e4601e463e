package fans

import (
	"errors"
	"fmt"

	"github.com/tpfand/tpfand/internal/configuration"
)

// LevelUnknown is reported while the firmware controls the fan on its own.
const LevelUnknown = -1

// ErrWriteFailed indicates that a level could not be written to the hardware.
var ErrWriteFailed = errors.New("fan level write failed")

// ErrReadFailed is returned by ApplyLevel if the reported level could not be
// read. The level is written anyway.
var ErrReadFailed = errors.New("fan level read failed")

type ControlMode int

const (
	// ControlModeAuto leaves the fan to the integrated control of the embedded controller
	ControlModeAuto ControlMode = iota
	// ControlModeManual gives tpfand control over the fan level
	ControlModeManual
)

func (m ControlMode) String() string {
	switch m {
	case ControlModeAuto:
		return "auto"
	case ControlModeManual:
		return "manual"
	}
	return fmt.Sprintf("unknown (%d)", int(m))
}

// ModeController hands fan control to tpfand and back to the firmware.
type ModeController interface {
	SwitchToManual() error
	SwitchToAuto() error
}

// Actuator drives a discrete fan level.
type Actuator interface {
	ModeController

	GetId() string
	GetConfig() configuration.FanConfig

	// GetLevel returns the level currently reported by the hardware,
	// LevelUnknown if it is under automatic control.
	GetLevel() (int, error)
	SetLevel(level int) error
}

// ModeReader is implemented by actuators that can report who controls the fan.
type ModeReader interface {
	GetControlMode() (ControlMode, error)
}

// RpmReader is implemented by actuators that also report the fan speed.
type RpmReader interface {
	GetRpm() (int, error)
}

func NewActuator(config configuration.FanConfig) (Actuator, error) {
	if config.ThinkPad != nil {
		return &ThinkPadFan{
			Config: config,
		}, nil
	}

	if config.File != nil {
		return &FileFan{
			Config: config,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdFan{
			Config: config,
		}, nil
	}

	if config.Acpi != nil {
		return &AcpiFan{
			Config: config,
		}, nil
	}

	return nil, errors.New("no matching fan type for fan configuration")
}

// ApplyLevel writes level unless the hardware already reports it.
// It returns the level reported before the write, LevelUnknown if it could not be read.
// The hardware is always re-read since third parties may change the level at any time.
// A failed read is returned as ErrReadFailed, a failed write as ErrWriteFailed.
func ApplyLevel(actuator Actuator, level int) (reported int, err error) {
	reported, readErr := actuator.GetLevel()
	if readErr != nil {
		reported = LevelUnknown
		readErr = fmt.Errorf("%w: %s: %w", ErrReadFailed, actuator.GetId(), readErr)
	} else if reported == level {
		return reported, nil
	}

	writeErr := actuator.SetLevel(level)
	if writeErr != nil {
		writeErr = fmt.Errorf("%w: level %d on %s: %w", ErrWriteFailed, level, actuator.GetId(), writeErr)
	}
	return reported, errors.Join(readErr, writeErr)
}
