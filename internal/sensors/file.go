package sensors

import (
	"github.com/tpfand/tpfand/internal/configuration"
	"github.com/tpfand/tpfand/internal/util"
)

// FilesGateway reads one integer per zone from individual files,
// typically sysfs temp*_input nodes.
type FilesGateway struct {
	Config  configuration.SensorConfig `json:"config"`
	Paths   []string                   `json:"paths"`
	Divisor int                        `json:"divisor"`
}

func (g *FilesGateway) GetId() string {
	return "files"
}

func (g *FilesGateway) GetConfig() configuration.SensorConfig {
	return g.Config
}

func (g *FilesGateway) FetchReading() (Reading, error) {
	if err := checkWidth(g.Config.Width, len(g.Paths)); err != nil {
		return nil, err
	}

	raw := make([]int, len(g.Paths))
	for idx, path := range g.Paths {
		value, err := util.ReadIntFromFile(path)
		if err != nil {
			return nil, readFailed(path, err)
		}
		if g.Divisor > 1 {
			value /= g.Divisor
		}
		raw[idx] = value
	}

	return Normalize(raw), nil
}
