package fans

import (
	"strconv"

	"github.com/tpfand/tpfand/internal/configuration"
	"github.com/tpfand/tpfand/internal/util"
)

type CmdFan struct {
	Config configuration.FanConfig `json:"config"`
}

func (fan *CmdFan) GetId() string {
	return fan.Config.Cmd.SetLevel.Exec
}

func (fan *CmdFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan *CmdFan) GetLevel() (int, error) {
	conf := fan.Config.Cmd.GetLevel
	result, err := util.SafeCmdExecution(conf.Exec, conf.Args, util.DefaultCmdTimeout)
	if err != nil {
		return LevelUnknown, err
	}

	level, err := strconv.Atoi(result)
	if err != nil {
		return LevelUnknown, err
	}
	return level, nil
}

func (fan *CmdFan) SetLevel(level int) error {
	conf := fan.Config.Cmd.SetLevel
	args := util.ReplacePlaceholder(conf.Args, "level", strconv.Itoa(level))
	_, err := util.SafeCmdExecution(conf.Exec, args, util.DefaultCmdTimeout)
	return err
}

func (fan *CmdFan) SwitchToManual() error {
	return runOptional(fan.Config.Cmd.Manual)
}

func (fan *CmdFan) SwitchToAuto() error {
	return runOptional(fan.Config.Cmd.Auto)
}

func runOptional(conf *configuration.ExecConfig) error {
	if conf == nil {
		return nil
	}
	_, err := util.SafeCmdExecution(conf.Exec, conf.Args, util.DefaultCmdTimeout)
	return err
}
