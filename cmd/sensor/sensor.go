package sensor

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
	"github.com/tpfand/tpfand/cmd/global"
	"github.com/tpfand/tpfand/internal/configuration"
	"github.com/tpfand/tpfand/internal/sensors"
	"github.com/tpfand/tpfand/internal/ui"
)

var primaryOnly bool

var Command = &cobra.Command{
	Use:   "sensor",
	Short: "Print the current reading of all thermal zones",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		global.LoadValidatedConfig()

		config := configuration.CurrentConfig
		gateway, err := sensors.NewGateway(config.Sensor)
		if err != nil {
			return err
		}

		reading, err := gateway.FetchReading()
		if err != nil {
			return err
		}

		if primaryOnly {
			ui.Printf("%d", reading.Zone(config.PrimaryZone))
			return nil
		}

		var rows [][]string
		for idx, value := range reading {
			valueText := strconv.Itoa(value)
			if value == sensors.NotPresent {
				valueText = "N/A"
			}
			primary := ""
			if idx == config.PrimaryZone {
				primary = "*"
			}
			rows = append(rows, []string{strconv.Itoa(idx), config.Sensor.ZoneName(idx), valueText, primary})
		}

		tab := table.Table{
			Headers: []string{"Index", "Zone", "Value", "Primary"},
			Rows:    rows,
		}
		if err := global.PrintTable(tab); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	Command.Flags().BoolVarP(&primaryOnly, "primary", "p", false, "Only print the value of the primary zone")
}
