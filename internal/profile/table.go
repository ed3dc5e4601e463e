package profile

import (
	"fmt"
	"math"
)

// Table is an ordered, immutable partition of the integer domain into bands.
type Table struct {
	profiles []Profile
}

// NewTable validates the partition invariant once and returns the table.
func NewTable(profiles []Profile) (*Table, error) {
	if len(profiles) <= 0 {
		return nil, fmt.Errorf("%w: no profiles", ErrConfigInvariantViolated)
	}

	first := profiles[0]
	if first.Min != math.MinInt {
		return nil, fmt.Errorf("%w: lowest band must start at -inf, got %d", ErrConfigInvariantViolated, first.Min)
	}
	last := profiles[len(profiles)-1]
	if last.Max != math.MaxInt {
		return nil, fmt.Errorf("%w: highest band must end at +inf, got %d", ErrConfigInvariantViolated, last.Max)
	}

	for idx, p := range profiles {
		if p.Min >= p.Max {
			return nil, fmt.Errorf("%w: band %d %s is empty", ErrConfigInvariantViolated, idx, p)
		}
		if p.StickMargin < 0 {
			return nil, fmt.Errorf("%w: band %d has a negative stick margin", ErrConfigInvariantViolated, idx)
		}
		if p.HoldDelay < 0 {
			return nil, fmt.Errorf("%w: band %d has a negative hold delay", ErrConfigInvariantViolated, idx)
		}
		if idx > 0 && p.Min != profiles[idx-1].Max {
			return nil, fmt.Errorf("%w: band %d starts at %d but band %d ends at %d", ErrConfigInvariantViolated, idx, p.Min, idx-1, profiles[idx-1].Max)
		}
	}

	copied := make([]Profile, len(profiles))
	copy(copied, profiles)
	return &Table{profiles: copied}, nil
}

// Pick returns the first band with Min < value <= Max.
// A well-formed table always matches, so a miss panics.
func (t *Table) Pick(value int) Profile {
	for _, p := range t.profiles {
		if p.Contains(value) {
			return p
		}
	}
	panic(fmt.Sprintf("no profile matches value %d, the table does not partition the domain", value))
}

// IndexOf returns the position of the given profile in the table, or -1.
func (t *Table) IndexOf(p Profile) int {
	for idx, candidate := range t.profiles {
		if candidate == p {
			return idx
		}
	}
	return -1
}

// Profiles returns a copy of all bands in ascending order.
func (t *Table) Profiles() []Profile {
	result := make([]Profile, len(t.profiles))
	copy(result, t.profiles)
	return result
}

func (t *Table) Len() int {
	return len(t.profiles)
}
