package fan

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/tpfand/tpfand/internal/fans"
	"github.com/tpfand/tpfand/internal/ui"
)

var rpmCmd = &cobra.Command{
	Use:   "rpm",
	Short: "Get the current rpm value of the fan",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fan, err := getActuator()
		if err != nil {
			return err
		}

		reader, ok := fan.(fans.RpmReader)
		if !ok {
			return errors.New("the fan does not report its rpm")
		}
		rpm, err := reader.GetRpm()
		if err != nil {
			return err
		}
		ui.Printf("%d", rpm)
		return nil
	},
}

func init() {
	Command.AddCommand(rpmCmd)
}
