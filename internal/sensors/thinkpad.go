package sensors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tpfand/tpfand/internal/configuration"
	"github.com/tpfand/tpfand/internal/util"
)

// ThinkPadGateway reads the thinkpad_acpi procfs thermal node, e.g.:
//
//	temperatures:	52 47 36 -128 34 -128 33 -128
type ThinkPadGateway struct {
	Config configuration.SensorConfig `json:"config"`
}

func (g *ThinkPadGateway) GetId() string {
	return "thinkpad"
}

func (g *ThinkPadGateway) GetConfig() configuration.SensorConfig {
	return g.Config
}

func (g *ThinkPadGateway) path() string {
	if len(g.Config.ThinkPad.Path) > 0 {
		return g.Config.ThinkPad.Path
	}
	return configuration.DefaultThinkPadThermalPath
}

func (g *ThinkPadGateway) FetchReading() (Reading, error) {
	text, err := util.ReadTextFromFile(g.path())
	if err != nil {
		return nil, readFailed(g.path(), err)
	}

	fields, err := parseThermalLine(text)
	if err != nil {
		return nil, readFailed(g.path(), err)
	}

	if err := checkWidth(g.Config.Width, len(fields)); err != nil {
		return nil, err
	}

	raw := make([]int, len(fields))
	for idx, field := range fields {
		raw[idx], err = strconv.Atoi(field)
		if err != nil {
			return nil, readFailed(g.path(), err)
		}
	}

	return Normalize(raw), nil
}

func parseThermalLine(text string) ([]string, error) {
	label, values, found := strings.Cut(text, ":")
	if !found || strings.TrimSpace(label) != "temperatures" {
		return nil, fmt.Errorf("unexpected thermal format: %q", text)
	}
	return strings.Fields(values), nil
}
