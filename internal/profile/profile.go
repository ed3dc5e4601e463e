package profile

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/tpfand/tpfand/internal/configuration"
)

// ErrConfigInvariantViolated is returned when a set of profiles does not
// partition the integer domain.
var ErrConfigInvariantViolated = errors.New("profile table invariant violated")

// Profile binds the temperature band (Min, Max] to a fan level.
type Profile struct {
	Level int `json:"level"`
	// Min is the exclusive lower bound
	Min int `json:"min"`
	// Max is the inclusive upper bound
	Max int `json:"max"`
	// StickMargin is the tolerance above Max before an upward escape is recognized
	StickMargin int `json:"stickMargin"`
	// HoldDelay is the number of consecutive ticks at or below Min before a downward escape
	HoldDelay int `json:"holdDelay"`
}

// Contains reports whether value lies within (Min, Max].
// The lowest band also holds math.MinInt itself.
func (p Profile) Contains(value int) bool {
	return (p.Min < value || p.Min == math.MinInt) && value <= p.Max
}

// EscapesUp reports whether value is beyond Max + StickMargin.
// The comparison cannot overflow, so the band ending at math.MaxInt never escapes.
func (p Profile) EscapesUp(value int) bool {
	if value <= p.Max {
		return false
	}
	return uint(value-p.Max) > uint(p.StickMargin)
}

// IsBelow reports whether value is at or below the lower bound of the band.
// Nothing is below the lowest band.
func (p Profile) IsBelow(value int) bool {
	return p.Min != math.MinInt && value <= p.Min
}

func (p Profile) String() string {
	return fmt.Sprintf("(%s, %s] => %d", formatBound(p.Min), formatBound(p.Max), p.Level)
}

func formatBound(value int) string {
	switch value {
	case math.MinInt:
		return "-inf"
	case math.MaxInt:
		return "+inf"
	}
	return strconv.Itoa(value)
}

// FromConfig converts the configured bands into profiles, deriving the lower
// bound of every band from the upper bound of its predecessor.
func FromConfig(configs []configuration.ProfileConfig, defaults configuration.ProfileDefaultsConfig) []Profile {
	result := make([]Profile, 0, len(configs))

	lower := math.MinInt
	for idx, config := range configs {
		upper := math.MaxInt
		if config.Max != nil && idx < len(configs)-1 {
			upper = *config.Max
		}

		result = append(result, Profile{
			Level:       config.Level,
			Min:         lower,
			Max:         upper,
			StickMargin: config.GetStickMargin(defaults),
			HoldDelay:   config.GetHoldDelay(defaults),
		})
		lower = upper
	}

	return result
}
