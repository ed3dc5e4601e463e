package configuration

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleConfig = `
tickRate: 500ms
sensor:
  zones: cpu,minipci,hdd,gpu,bat0,ultrabay0,bat1,ultrabay1
  thinkpad:
    path: /proc/acpi/ibm/thermal
fan:
  thinkpad:
    path: /proc/acpi/ibm/fan
profileDefaults:
  stickMargin: 5
profiles:
  - level: 0
    max: 30
    holdDelay: 100
  - level: 1
    max: 40
  - level: 3
    max: inf
`

func readConfig(t *testing.T, content string) Configuration {
	v := viper.New()
	setDefaultValues(v)
	v.SetConfigType("yaml")
	err := v.ReadConfig(bytes.NewBufferString(content))
	require.NoError(t, err)

	config, err := unmarshalConfig(v)
	require.NoError(t, err)
	return config
}

func TestUnmarshalConfig_Defaults(t *testing.T) {
	// WHEN
	config := readConfig(t, "fan:\n  thinkpad:\n    path: /proc/acpi/ibm/fan\n")

	// THEN
	assert.Equal(t, 300*time.Millisecond, config.TickRate)
	assert.Equal(t, 0, config.PrimaryZone)
	assert.Equal(t, 8, config.Sensor.Width)
	assert.Equal(t, 0, config.Fan.MinLevel)
	assert.Equal(t, 7, config.Fan.MaxLevel)
	assert.Equal(t, 33, config.ProfileDefaults.HoldDelay)
	assert.True(t, config.History.Enabled)
	assert.Equal(t, 1000, config.History.Retention)
	assert.Equal(t, 9000, config.Statistics.Port)
	assert.NotNil(t, config.Fan.ThinkPad)
	assert.Nil(t, config.Fan.File)
}

func TestUnmarshalConfig_Example(t *testing.T) {
	// WHEN
	config := readConfig(t, exampleConfig)

	// THEN
	assert.Equal(t, 500*time.Millisecond, config.TickRate)
	assert.Equal(t, []string{"cpu", "minipci", "hdd", "gpu", "bat0", "ultrabay0", "bat1", "ultrabay1"}, config.Sensor.Zones)
	assert.Equal(t, "/proc/acpi/ibm/thermal", config.Sensor.ThinkPad.Path)

	assert.Len(t, config.Profiles, 3)
	assert.Equal(t, 30, *config.Profiles[0].Max)
	assert.Equal(t, 100, config.Profiles[0].GetHoldDelay(config.ProfileDefaults))
	assert.Equal(t, 5, config.Profiles[0].GetStickMargin(config.ProfileDefaults))
	assert.Equal(t, 33, config.Profiles[1].GetHoldDelay(config.ProfileDefaults))
	assert.Equal(t, math.MaxInt, *config.Profiles[2].Max)

	assert.NoError(t, validateConfig(&config, ""))
}

func TestSensorConfig_ZoneName(t *testing.T) {
	// GIVEN
	config := SensorConfig{Width: 3, Zones: []string{"cpu", "", "gpu"}}

	// THEN
	assert.Equal(t, "cpu", config.ZoneName(0))
	assert.Equal(t, "zone1", config.ZoneName(1))
	assert.Equal(t, "gpu", config.ZoneName(2))
	assert.Equal(t, "zone5", config.ZoneName(5))
}
