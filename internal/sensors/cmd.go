package sensors

import (
	"strconv"
	"strings"

	"github.com/tpfand/tpfand/internal/configuration"
	"github.com/tpfand/tpfand/internal/util"
)

// CmdGateway runs an executable that prints one integer per zone,
// separated by whitespace.
type CmdGateway struct {
	Config configuration.SensorConfig `json:"config"`
}

func (g *CmdGateway) GetId() string {
	return "cmd"
}

func (g *CmdGateway) GetConfig() configuration.SensorConfig {
	return g.Config
}

func (g *CmdGateway) FetchReading() (Reading, error) {
	conf := g.Config.Cmd
	result, err := util.SafeCmdExecution(conf.Exec, conf.Args, conf.Timeout)
	if err != nil {
		return nil, readFailed(conf.Exec, err)
	}

	fields := strings.Fields(result)
	if err := checkWidth(g.Config.Width, len(fields)); err != nil {
		return nil, err
	}

	raw := make([]int, len(fields))
	for idx, field := range fields {
		raw[idx], err = strconv.Atoi(field)
		if err != nil {
			return nil, readFailed(conf.Exec, err)
		}
	}

	return Normalize(raw), nil
}
