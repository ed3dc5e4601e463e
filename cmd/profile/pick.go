package profile

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tpfand/tpfand/internal/ui"
)

var pickCmd = &cobra.Command{
	Use:   "pick <temperature>",
	Short: "Print the profile a temperature falls into",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid temperature: %s", args[0])
		}

		profileTable, err := loadTable()
		if err != nil {
			return err
		}

		p := profileTable.Pick(value)
		ui.Printfln("%d is in profile %d: %s", value, profileTable.IndexOf(p), p)
		return nil
	},
}

func init() {
	Command.AddCommand(pickCmd)
}
