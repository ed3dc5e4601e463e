package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
	"github.com/tpfand/tpfand/cmd/global"
	"github.com/tpfand/tpfand/internal/sensors"
	"github.com/tpfand/tpfand/internal/ui"
	"github.com/tpfand/tpfand/internal/util"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect temperature inputs",
	Long:  `Lists all lm-sensors chips with their temperature inputs, usable in a hwmon sensor configuration`,
	Run: func(cmd *cobra.Command, args []string) {
		chips := sensors.GetChips()
		if len(chips) <= 0 {
			ui.Warning("No temperature inputs found")
			return
		}

		for _, chip := range chips {
			ui.Printfln("> %s (platform: %s)", chip.Name, chip.Platform)

			var rows [][]string
			for idx, input := range chip.TempInputs {
				valueText := "N/A"
				value, err := util.ReadIntFromFile(input)
				if err == nil {
					valueText = fmt.Sprintf("%.1f", float64(value)/1000)
				}
				_, file := filepath.Split(input)
				rows = append(rows, []string{strconv.Itoa(idx + 1), file, valueText})
			}

			tab := table.Table{
				Headers: []string{"Index", "Input", "Value"},
				Rows:    rows,
			}
			if err := global.PrintTable(tab); err != nil {
				ui.Fatal("Error printing table: %v", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
