package sensors

import (
	"errors"
	"fmt"

	"github.com/tpfand/tpfand/internal/configuration"
)

const (
	// SentinelThreshold is the raw value from which on a zone is reported as absent.
	SentinelThreshold = 255
	// NotPresent replaces sentinel values, it never matches a profile band.
	NotPresent = -1
)

var (
	// ErrShapeMismatch indicates that the sensor interface reports an unexpected
	// number of zones. Retrying cannot fix this.
	ErrShapeMismatch = errors.New("sensor shape mismatch")
	// ErrReadFailed indicates that a single read of the sensor interface failed.
	ErrReadFailed = errors.New("sensor read failed")
)

// Reading holds one value per thermal zone, in the order reported by the sensor interface.
type Reading []int

// Zone returns the value of the zone at index, NotPresent if out of range.
func (r Reading) Zone(index int) int {
	if index < 0 || index >= len(r) {
		return NotPresent
	}
	return r[index]
}

// Gateway wraps the platform temperature query.
type Gateway interface {
	GetId() string
	GetConfig() configuration.SensorConfig

	// FetchReading queries all zones at once. Failures are returned as
	// ErrShapeMismatch or ErrReadFailed and never retried.
	FetchReading() (Reading, error)
}

func NewGateway(config configuration.SensorConfig) (Gateway, error) {
	if config.ThinkPad != nil {
		return &ThinkPadGateway{
			Config: config,
		}, nil
	}

	if config.Sysctl != nil {
		return &SysctlGateway{
			Config: config,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdGateway{
			Config: config,
		}, nil
	}

	if config.Files != nil {
		return &FilesGateway{
			Config:  config,
			Paths:   config.Files.Paths,
			Divisor: config.Files.Divisor,
		}, nil
	}

	if config.HwMon != nil {
		return NewHwMonGateway(config)
	}

	return nil, errors.New("no matching sensor type for sensor configuration")
}

// Normalize rewrites every value at or above SentinelThreshold to NotPresent.
func Normalize(raw []int) Reading {
	reading := make(Reading, len(raw))
	for idx, value := range raw {
		if value >= SentinelThreshold {
			value = NotPresent
		}
		reading[idx] = value
	}
	return reading
}

// checkWidth confirms the interface reported exactly the expected number of zones.
func checkWidth(expected int, actual int) error {
	if expected != actual {
		return fmt.Errorf("%w: expected %d zones, interface reports %d", ErrShapeMismatch, expected, actual)
	}
	return nil
}

func readFailed(id string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrReadFailed, id, err)
}
