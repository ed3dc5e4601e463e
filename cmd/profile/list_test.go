package profile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tpfand/tpfand/internal/profile"
)

func TestPlotRange(t *testing.T) {
	// GIVEN
	table, err := profile.NewTable([]profile.Profile{
		{Level: 0, Min: math.MinInt, Max: 45},
		{Level: 2, Min: 45, Max: 60},
		{Level: 7, Min: 60, Max: math.MaxInt},
	})
	require.NoError(t, err)

	// WHEN
	start, stop := plotRange(table)

	// THEN
	assert.Equal(t, 35, start)
	assert.Equal(t, 70, stop)
}

func TestPlotRange_SingleBand(t *testing.T) {
	// GIVEN
	table, err := profile.NewTable([]profile.Profile{
		{Level: 3, Min: math.MinInt, Max: math.MaxInt},
	})
	require.NoError(t, err)

	// WHEN
	start, stop := plotRange(table)

	// THEN
	assert.Equal(t, 0, start)
	assert.Equal(t, 100, stop)
}

func TestPlotValues_FollowsBands(t *testing.T) {
	// GIVEN
	table, err := profile.NewTable([]profile.Profile{
		{Level: 0, Min: math.MinInt, Max: 45},
		{Level: 2, Min: 45, Max: math.MaxInt},
	})
	require.NoError(t, err)

	// WHEN
	values := plotValues(table, 40, 50)

	// THEN
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0, 2, 2, 2, 2, 2}, values)
}

func TestPlotValues_WideBandsAreSampled(t *testing.T) {
	// GIVEN
	table, err := profile.NewTable([]profile.Profile{
		{Level: 0, Min: math.MinInt, Max: 45},
		{Level: 7, Min: 45, Max: 1000000000},
		{Level: 3, Min: 1000000000, Max: math.MaxInt},
	})
	require.NoError(t, err)
	start, stop := plotRange(table)

	// WHEN
	values := plotValues(table, start, stop)

	// THEN
	assert.LessOrEqual(t, len(values), maxPlotPoints+1)
	assert.Equal(t, 0.0, values[0])
	assert.Contains(t, values, 7.0)
}

func TestPlotRange_BoundsNearDomainEdges(t *testing.T) {
	// GIVEN
	table, err := profile.NewTable([]profile.Profile{
		{Level: 0, Min: math.MinInt, Max: math.MinInt + 1},
		{Level: 1, Min: math.MinInt + 1, Max: math.MaxInt - 1},
		{Level: 2, Min: math.MaxInt - 1, Max: math.MaxInt},
	})
	require.NoError(t, err)

	// WHEN
	start, stop := plotRange(table)
	values := plotValues(table, start, stop)

	// THEN
	assert.Equal(t, math.MinInt, start)
	assert.Equal(t, math.MaxInt, stop)
	assert.LessOrEqual(t, len(values), maxPlotPoints+1)
	assert.Equal(t, 0.0, values[0])
}
