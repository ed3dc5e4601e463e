package sensors

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/md14454/gosensors"
	"github.com/tpfand/tpfand/internal/configuration"
)

const (
	BusTypeIsa  = 1
	BusTypePci  = 2
	BusTypeAcpi = 5
)

// HwMonChip is a libsensors chip with the temperature inputs it exposes.
type HwMonChip struct {
	Name     string
	Platform string
	Path     string
	// TempInputs are the sysfs paths of all temp*_input nodes, in feature order
	TempInputs []string
}

// HwMonGateway reads zones from lm-sensors temperature inputs that are
// resolved by platform and index at startup.
type HwMonGateway struct {
	FilesGateway
}

func (g *HwMonGateway) GetId() string {
	return "hwmon"
}

func NewHwMonGateway(config configuration.SensorConfig) (Gateway, error) {
	chips := GetChips()
	paths, err := ResolveHwMonInputs(config.HwMon.Inputs, chips)
	if err != nil {
		return nil, err
	}

	return &HwMonGateway{
		FilesGateway: FilesGateway{
			Config:  config,
			Paths:   paths,
			Divisor: config.HwMon.Divisor,
		},
	}, nil
}

// ResolveHwMonInputs maps every configured (platform, index) pair to the sysfs
// path of its temperature input.
func ResolveHwMonInputs(inputs []configuration.HwMonInputConfig, chips []*HwMonChip) ([]string, error) {
	paths := make([]string, 0, len(inputs))
	for idx := range inputs {
		input := &inputs[idx]

		found := false
		for _, chip := range chips {
			matched, err := regexp.MatchString("(?i)"+input.Platform, chip.Platform)
			if err != nil {
				return nil, fmt.Errorf("failed to match platform regex %s against %s: %w", input.Platform, chip.Platform, err)
			}
			if !matched {
				continue
			}
			if input.Index > len(chip.TempInputs) {
				return nil, fmt.Errorf("hwmon device %s has no temperature input with index %d", chip.Platform, input.Index)
			}
			input.TempInput = chip.TempInputs[input.Index-1]
			found = true
			break
		}
		if !found {
			return nil, fmt.Errorf("couldn't find hwmon device with platform '%s'", input.Platform)
		}
		paths = append(paths, input.TempInput)
	}
	return paths, nil
}

// GetChips lists all libsensors chips that expose at least one temperature input.
func GetChips() []*HwMonChip {
	gosensors.Init()
	defer gosensors.Cleanup()

	var list []*HwMonChip
	for _, chip := range gosensors.GetDetectedChips() {
		inputs := getTempInputs(chip)
		if len(inputs) <= 0 {
			continue
		}

		name := computeIdentifier(chip)
		platform := findPlatform(chip.Path)
		if len(platform) <= 0 {
			platform = name
		}

		list = append(list, &HwMonChip{
			Name:       name,
			Platform:   platform,
			Path:       chip.Path,
			TempInputs: inputs,
		})
	}
	return list
}

func getTempInputs(chip gosensors.Chip) []string {
	var inputs []string
	for _, feature := range chip.GetFeatures() {
		if feature.Type != gosensors.FeatureTypeTemp {
			continue
		}
		for _, sub := range feature.GetSubFeatures() {
			if sub.Type == gosensors.SubFeatureTypeTempInput {
				inputs = append(inputs, filepath.Join(chip.Path, sub.Name))
				break
			}
		}
	}
	return inputs
}

func computeIdentifier(chip gosensors.Chip) string {
	name := chip.Prefix
	if len(name) <= 0 {
		content, _ := os.ReadFile(filepath.Join(chip.Path, "name"))
		name = strings.TrimSpace(string(content))
	}
	if len(name) <= 0 {
		_, name = filepath.Split(chip.Path)
	}

	switch chip.Bus.Type {
	case BusTypeIsa:
		return fmt.Sprintf("%s-isa-%d", name, chip.Bus.Nr)
	case BusTypePci:
		return fmt.Sprintf("%s-pci-%d", name, chip.Bus.Nr)
	case BusTypeAcpi:
		return fmt.Sprintf("%s-acpi-%d", name, chip.Bus.Nr)
	}
	return name
}

var platformRegex = regexp.MustCompile(`.*/platform/[^/]+/.*`)

func findPlatform(devicePath string) string {
	return platformRegex.FindString(devicePath)
}
