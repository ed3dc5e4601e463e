package configuration

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tpfand/tpfand/internal/util"
	"golang.org/x/exp/slices"
)

var (
	sensorTypes = []string{"thinkpad", "sysctl", "cmd", "files", "hwmon"}
	fanTypes    = []string{"thinkpad", "file", "cmd", "acpi"}
)

func Validate(configPath string) error {
	return validateConfig(&CurrentConfig, configPath)
}

func validateConfig(config *Configuration, path string) error {
	if config.TickRate <= 0 {
		return errors.New("tickRate must be > 0")
	}

	err := validateSensor(config)
	if err != nil {
		return err
	}
	err = validateFan(config)
	if err != nil {
		return err
	}
	err = validateProfiles(config)
	if err != nil {
		return err
	}

	if config.History.Enabled && config.History.Retention <= 0 {
		return errors.New("history: retention must be >= 1")
	}

	if containsCommands(config) {
		if _, err := util.CheckFilePermissionsForExecution(path); err != nil {
			return fmt.Errorf("config file '%s' has invalid permissions: %s", path, err)
		}
	}

	return nil
}

func containsCommands(config *Configuration) bool {
	return config.Sensor.Cmd != nil || config.Fan.Cmd != nil
}

func validateSensor(config *Configuration) error {
	sensor := config.Sensor

	subConfigs := 0
	if sensor.ThinkPad != nil {
		subConfigs++
	}
	if sensor.Sysctl != nil {
		subConfigs++
	}
	if sensor.Cmd != nil {
		subConfigs++
	}
	if sensor.Files != nil {
		subConfigs++
	}
	if sensor.HwMon != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return errors.New("sensor: only one sensor type can be used")
	}
	if subConfigs <= 0 {
		return fmt.Errorf("sensor: sub-configuration for sensor is missing, use one of: %s", strings.Join(sensorTypes, " | "))
	}

	if sensor.Width <= 0 {
		return errors.New("sensor: width must be >= 1")
	}

	if len(sensor.Zones) > 0 {
		if len(sensor.Zones) != sensor.Width {
			return fmt.Errorf("sensor: expected %d zone names, got %d", sensor.Width, len(sensor.Zones))
		}
		var seen []string
		for _, zone := range sensor.Zones {
			if slices.Contains(seen, zone) {
				return fmt.Errorf("sensor: duplicate zone name: %s", zone)
			}
			seen = append(seen, zone)
		}
	}

	if config.PrimaryZone < 0 || config.PrimaryZone >= sensor.Width {
		return fmt.Errorf("primaryZone: %d is out of range [0..%d]", config.PrimaryZone, sensor.Width-1)
	}

	if sensor.Cmd != nil && len(sensor.Cmd.Exec) <= 0 {
		return errors.New("sensor: cmd: missing exec")
	}

	if sensor.Files != nil {
		if len(sensor.Files.Paths) != sensor.Width {
			return fmt.Errorf("sensor: files: expected %d paths, got %d", sensor.Width, len(sensor.Files.Paths))
		}
		if sensor.Files.Divisor < 0 {
			return errors.New("sensor: files: divisor must be >= 0")
		}
	}

	if sensor.HwMon != nil {
		if len(sensor.HwMon.Inputs) != sensor.Width {
			return fmt.Errorf("sensor: hwmon: expected %d inputs, got %d", sensor.Width, len(sensor.HwMon.Inputs))
		}
		for idx, input := range sensor.HwMon.Inputs {
			if input.Index <= 0 {
				return fmt.Errorf("sensor: hwmon: input %d: invalid index, must be >= 1", idx)
			}
			if len(input.Platform) <= 0 {
				return fmt.Errorf("sensor: hwmon: input %d: missing platform", idx)
			}
		}
		if sensor.HwMon.Divisor < 0 {
			return errors.New("sensor: hwmon: divisor must be >= 0")
		}
	}

	return nil
}

func validateFan(config *Configuration) error {
	fan := config.Fan

	subConfigs := 0
	if fan.ThinkPad != nil {
		subConfigs++
	}
	if fan.File != nil {
		subConfigs++
	}
	if fan.Cmd != nil {
		subConfigs++
	}
	if fan.Acpi != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return errors.New("fan: only one fan type can be used")
	}
	if subConfigs <= 0 {
		return fmt.Errorf("fan: sub-configuration for fan is missing, use one of: %s", strings.Join(fanTypes, " | "))
	}

	if fan.MinLevel < 0 {
		return errors.New("fan: minLevel must be >= 0")
	}
	if fan.MaxLevel < fan.MinLevel {
		return fmt.Errorf("fan: maxLevel (%d) must be >= minLevel (%d)", fan.MaxLevel, fan.MinLevel)
	}

	if fan.File != nil && len(fan.File.Path) <= 0 {
		return errors.New("fan: file: missing path")
	}

	if fan.Cmd != nil {
		if fan.Cmd.GetLevel == nil || len(fan.Cmd.GetLevel.Exec) <= 0 {
			return errors.New("fan: cmd: missing getLevel")
		}
		if fan.Cmd.SetLevel == nil || len(fan.Cmd.SetLevel.Exec) <= 0 {
			return errors.New("fan: cmd: missing setLevel")
		}
	}

	if fan.Acpi != nil {
		if fan.Acpi.GetLevel == nil || len(fan.Acpi.GetLevel.Method) <= 0 {
			return errors.New("fan: acpi: missing getLevel")
		}
		if fan.Acpi.SetLevel == nil || len(fan.Acpi.SetLevel.Method) <= 0 {
			return errors.New("fan: acpi: missing setLevel")
		}
	}

	return nil
}

func validateProfiles(config *Configuration) error {
	profiles := config.Profiles
	if len(profiles) <= 0 {
		return errors.New("profiles: at least one profile is required")
	}

	defaults := config.ProfileDefaults
	lastIndex := len(profiles) - 1
	for idx, profile := range profiles {
		if profile.Level < config.Fan.MinLevel || profile.Level > config.Fan.MaxLevel {
			return fmt.Errorf("profile %d: level %d is out of range [%d..%d]", idx, profile.Level, config.Fan.MinLevel, config.Fan.MaxLevel)
		}
		if profile.GetStickMargin(defaults) < 0 {
			return fmt.Errorf("profile %d: stickMargin must be >= 0", idx)
		}
		if profile.GetHoldDelay(defaults) < 0 {
			return fmt.Errorf("profile %d: holdDelay must be >= 0", idx)
		}

		if idx == lastIndex {
			if profile.Max != nil && *profile.Max != math.MaxInt {
				return fmt.Errorf("profile %d: the last profile must not define a max", idx)
			}
			continue
		}

		if profile.Max == nil {
			return fmt.Errorf("profile %d: max is required for all but the last profile", idx)
		}
		if idx > 0 && *profile.Max <= *profiles[idx-1].Max {
			return fmt.Errorf("profile %d: max %d must be greater than max %d of profile %d", idx, *profile.Max, *profiles[idx-1].Max, idx-1)
		}
	}

	return nil
}
