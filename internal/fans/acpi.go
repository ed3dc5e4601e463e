package fans

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tpfand/tpfand/internal/configuration"
	"github.com/tpfand/tpfand/internal/util"
)

// AcpiFan drives the fan level through ACPI methods using the acpi_call kernel module.
type AcpiFan struct {
	Config configuration.FanConfig `json:"config"`

	callFn func(method, args string) (int64, error)
}

func (fan *AcpiFan) GetId() string {
	return fan.Config.Acpi.SetLevel.Method
}

func (fan *AcpiFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan *AcpiFan) call(conf *configuration.AcpiCallConfig, args string) (int64, error) {
	callFn := fan.callFn
	if callFn == nil {
		callFn = util.AcpiCall
	}
	return callFn(conf.Method, args)
}

func (fan *AcpiFan) GetLevel() (int, error) {
	conf := fan.Config.Acpi.GetLevel
	val, err := fan.call(conf, conf.Args)
	if err != nil {
		return LevelUnknown, fmt.Errorf("fan %s getLevel: %w", fan.GetId(), err)
	}
	return int(val), nil
}

func (fan *AcpiFan) SetLevel(level int) error {
	conf := fan.Config.Acpi.SetLevel
	args := strings.ReplaceAll(conf.Args, "%level%", strconv.Itoa(level))
	_, err := fan.call(conf, args)
	if err != nil {
		return fmt.Errorf("fan %s setLevel: %w", fan.GetId(), err)
	}
	return nil
}

func (fan *AcpiFan) SwitchToManual() error {
	conf := fan.Config.Acpi.Manual
	if conf == nil {
		return nil
	}
	_, err := fan.call(conf, conf.Args)
	return err
}

func (fan *AcpiFan) SwitchToAuto() error {
	conf := fan.Config.Acpi.Auto
	if conf == nil {
		return nil
	}
	_, err := fan.call(conf, conf.Args)
	return err
}
