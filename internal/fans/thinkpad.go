package fans

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tpfand/tpfand/internal/configuration"
	"github.com/tpfand/tpfand/internal/util"
)

// ThinkPadFan drives the thinkpad_acpi procfs fan node, which reports e.g.:
//
//	status:		enabled
//	speed:		2783
//	level:		auto
type ThinkPadFan struct {
	Config configuration.FanConfig `json:"config"`
}

func (fan *ThinkPadFan) GetId() string {
	return "thinkpad"
}

func (fan *ThinkPadFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan *ThinkPadFan) path() string {
	if len(fan.Config.ThinkPad.Path) > 0 {
		return fan.Config.ThinkPad.Path
	}
	return configuration.DefaultThinkPadFanPath
}

func (fan *ThinkPadFan) readField(name string) (string, error) {
	text, err := util.ReadTextFromFile(fan.path())
	if err != nil {
		return "", err
	}

	for _, line := range strings.Split(text, "\n") {
		key, value, found := strings.Cut(line, ":")
		if found && strings.TrimSpace(key) == name {
			return strings.TrimSpace(value), nil
		}
	}
	return "", fmt.Errorf("field '%s' not found in %s", name, fan.path())
}

func (fan *ThinkPadFan) GetLevel() (int, error) {
	value, err := fan.readField("level")
	if err != nil {
		return LevelUnknown, err
	}

	switch value {
	// full-speed and disengaged are firmware states outside the level range
	case "auto", "full-speed", "disengaged":
		return LevelUnknown, nil
	}

	level, err := strconv.Atoi(value)
	if err != nil {
		return LevelUnknown, fmt.Errorf("unexpected fan level '%s': %w", value, err)
	}
	return level, nil
}

func (fan *ThinkPadFan) SetLevel(level int) error {
	return util.WriteTextToFile(fmt.Sprintf("level %d", level), fan.path())
}

func (fan *ThinkPadFan) GetRpm() (int, error) {
	value, err := fan.readField("speed")
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(value)
}

func (fan *ThinkPadFan) GetControlMode() (ControlMode, error) {
	level, err := fan.GetLevel()
	if err != nil {
		return ControlModeAuto, err
	}
	if level == LevelUnknown {
		return ControlModeAuto, nil
	}
	return ControlModeManual, nil
}

// SwitchToManual is a no-op, writing a numeric level takes over control.
func (fan *ThinkPadFan) SwitchToManual() error {
	return nil
}

func (fan *ThinkPadFan) SwitchToAuto() error {
	return util.WriteTextToFile("level auto", fan.path())
}
