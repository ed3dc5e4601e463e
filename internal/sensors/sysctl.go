package sensors

import (
	"encoding/binary"
	"fmt"

	"github.com/tpfand/tpfand/internal/configuration"
)

const sysctlIntSize = 4

// SysctlGateway reads the acpi_ibm thermal array through sysctl(3).
type SysctlGateway struct {
	Config configuration.SensorConfig `json:"config"`
}

func (g *SysctlGateway) GetId() string {
	return "sysctl"
}

func (g *SysctlGateway) GetConfig() configuration.SensorConfig {
	return g.Config
}

func (g *SysctlGateway) name() string {
	if len(g.Config.Sysctl.Name) > 0 {
		return g.Config.Sysctl.Name
	}
	return configuration.DefaultSysctlThermalName
}

func (g *SysctlGateway) FetchReading() (Reading, error) {
	data, err := sysctlRaw(g.name())
	if err != nil {
		return nil, readFailed(g.name(), err)
	}
	return decodeSysctlInts(g.Config.Width, data)
}

// decodeSysctlInts converts a raw C int array into a Reading.
func decodeSysctlInts(width int, data []byte) (Reading, error) {
	if len(data)%sysctlIntSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrShapeMismatch, len(data), sysctlIntSize)
	}
	if err := checkWidth(width, len(data)/sysctlIntSize); err != nil {
		return nil, err
	}

	raw := make([]int, width)
	for idx := range raw {
		raw[idx] = int(int32(binary.NativeEndian.Uint32(data[idx*sysctlIntSize:])))
	}
	return Normalize(raw), nil
}
