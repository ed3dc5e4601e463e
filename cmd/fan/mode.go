package fan

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tpfand/tpfand/internal/fans"
	"github.com/tpfand/tpfand/internal/ui"
)

var modeCmd = &cobra.Command{
	Use:   "mode [manual|auto]",
	Short: "Get/Set who controls the fan",
	Long:  ``,
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fan, err := getActuator()
		if err != nil {
			return err
		}

		if len(args) > 0 {
			switch strings.ToLower(args[0]) {
			case fans.ControlModeManual.String():
				err = fan.SwitchToManual()
			case fans.ControlModeAuto.String():
				err = fan.SwitchToAuto()
			default:
				return fmt.Errorf("unknown mode: %s, must be one of: 'manual', 'auto'", args[0])
			}
			if err != nil {
				return err
			}
		}

		reader, ok := fan.(fans.ModeReader)
		if !ok {
			if len(args) <= 0 {
				ui.Printf("Unknown, the fan does not report its mode")
			}
			return nil
		}

		mode, err := reader.GetControlMode()
		if err != nil {
			return err
		}
		switch mode {
		case fans.ControlModeManual:
			ui.Printf("Manual control, gives tpfand control (%s)", mode)
		case fans.ControlModeAuto:
			ui.Printf("Automatic control by the embedded controller (%s)", mode)
		}
		return nil
	},
}

func init() {
	Command.AddCommand(modeCmd)
}
