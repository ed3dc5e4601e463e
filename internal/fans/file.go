package fans

import (
	"github.com/tpfand/tpfand/internal/configuration"
	"github.com/tpfand/tpfand/internal/util"
)

const (
	defaultManualValue = 1
	defaultAutoValue   = 2
)

// FileFan drives a fan through a level file and an optional mode file,
// similar to the hwmon pwm/pwm_enable pair.
type FileFan struct {
	Config configuration.FanConfig `json:"config"`
}

func (fan *FileFan) GetId() string {
	return fan.Config.File.Path
}

func (fan *FileFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan *FileFan) GetLevel() (int, error) {
	level, err := util.ReadIntFromFile(fan.Config.File.Path)
	if err != nil {
		return LevelUnknown, err
	}
	return level, nil
}

func (fan *FileFan) SetLevel(level int) error {
	return util.WriteIntToFile(level, fan.Config.File.Path)
}

func (fan *FileFan) GetControlMode() (ControlMode, error) {
	conf := fan.Config.File
	if len(conf.ModePath) <= 0 {
		return ControlModeManual, nil
	}
	value, err := util.ReadIntFromFile(conf.ModePath)
	if err != nil {
		return ControlModeAuto, err
	}
	if value == valueOrDefault(conf.ManualValue, defaultManualValue) {
		return ControlModeManual, nil
	}
	return ControlModeAuto, nil
}

func (fan *FileFan) SwitchToManual() error {
	conf := fan.Config.File
	if len(conf.ModePath) <= 0 {
		return nil
	}
	return util.WriteIntToFile(valueOrDefault(conf.ManualValue, defaultManualValue), conf.ModePath)
}

func (fan *FileFan) SwitchToAuto() error {
	conf := fan.Config.File
	if len(conf.ModePath) <= 0 {
		return nil
	}
	return util.WriteIntToFile(valueOrDefault(conf.AutoValue, defaultAutoValue), conf.ModePath)
}

func valueOrDefault(value *int, fallback int) int {
	if value != nil {
		return *value
	}
	return fallback
}
