package global

import (
	"bytes"

	"github.com/mgutz/ansi"
	"github.com/tomlazar/table"
	"github.com/tpfand/tpfand/internal/configuration"
	"github.com/tpfand/tpfand/internal/ui"
)

var (
	CfgFile     string
	LogFile     string
	NoColor     bool
	NoStyle     bool
	Verbose     bool
	NoRootCheck bool
)

// LoadValidatedConfig reads, decodes and validates the configuration file
// and exits if any of these steps fail.
func LoadValidatedConfig() string {
	configPath := configuration.DetectAndReadConfigFile()
	ui.Debug("Using configuration file at: %s", configPath)
	configuration.LoadConfig()

	if err := configuration.Validate(configPath); err != nil {
		ui.Fatal("Invalid configuration: %v", err)
	}
	return configPath
}

func TableConfig() *table.Config {
	return &table.Config{
		ShowIndex:       false,
		Color:           !NoColor,
		AlternateColors: true,
		TitleColorCode:  ansi.ColorCode("white+buf"),
		AltColorCodes: []string{
			ansi.ColorCode("white"),
			ansi.ColorCode("white:236"),
		},
	}
}

// PrintTable renders tab with TableConfig and prints it verbatim.
func PrintTable(tab table.Table) error {
	var buf bytes.Buffer
	if err := tab.WriteTable(&buf, TableConfig()); err != nil {
		return err
	}
	ui.Printfln("%s", buf.String())
	return nil
}
