package configuration

import (
	"strconv"
	"time"
)

const (
	DefaultThinkPadThermalPath = "/proc/acpi/ibm/thermal"
	DefaultSysctlThermalName   = "dev.acpi_ibm.0.thermal"
)

type SensorConfig struct {
	// Width is the number of zones the sensor interface is expected to report.
	Width int `json:"width"`
	// Zones optionally names each zone, in order.
	Zones []string `json:"zones,omitempty"`

	ThinkPad *ThinkPadSensorConfig `json:"thinkpad,omitempty"`
	Sysctl   *SysctlSensorConfig   `json:"sysctl,omitempty"`
	Cmd      *CmdSensorConfig      `json:"cmd,omitempty"`
	Files    *FilesSensorConfig    `json:"files,omitempty"`
	HwMon    *HwMonSensorConfig    `json:"hwmon,omitempty"`
}

type ThinkPadSensorConfig struct {
	Path string `json:"path"`
}

type SysctlSensorConfig struct {
	Name string `json:"name"`
}

type CmdSensorConfig struct {
	Exec    string        `json:"exec"`
	Args    []string      `json:"args"`
	Timeout time.Duration `json:"timeout"`
}

type FilesSensorConfig struct {
	Paths []string `json:"paths"`
	// Divisor is applied to every value, e.g. 1000 for sysfs millidegrees.
	Divisor int `json:"divisor"`
}

type HwMonSensorConfig struct {
	Inputs  []HwMonInputConfig `json:"inputs"`
	Divisor int                `json:"divisor"`
}

type HwMonInputConfig struct {
	Platform string `json:"platform"`
	Index    int    `json:"index"`
	// TempInput is the resolved sysfs path, computed at runtime
	TempInput string `json:"tempInput,omitempty"`
}

// ZoneName returns the configured name of the zone at the given index.
func (c SensorConfig) ZoneName(index int) string {
	if index >= 0 && index < len(c.Zones) && len(c.Zones[index]) > 0 {
		return c.Zones[index]
	}
	return "zone" + strconv.Itoa(index)
}
