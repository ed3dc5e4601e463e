package fan

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tpfand/tpfand/internal/fans"
	"github.com/tpfand/tpfand/internal/ui"
)

var levelCmd = &cobra.Command{
	Use:   "level [level]",
	Short: "Get/Set the current level of the fan",
	Long:  ``,
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fan, err := getActuator()
		if err != nil {
			return err
		}

		if len(args) <= 0 {
			level, err := fan.GetLevel()
			if err != nil {
				return err
			}
			if level == fans.LevelUnknown {
				ui.Printf("auto")
			} else {
				ui.Printf("%d", level)
			}
			return nil
		}

		level, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid level: %s", args[0])
		}
		config := fan.GetConfig()
		if level < config.MinLevel || level > config.MaxLevel {
			return fmt.Errorf("level %d is out of range [%d..%d]", level, config.MinLevel, config.MaxLevel)
		}

		reported, err := fans.ApplyLevel(fan, level)
		if err != nil {
			return err
		}
		if reported == level {
			ui.Info("Fan is already at level %d", level)
		} else {
			ui.Success("Fan level set to %d", level)
		}
		return nil
	},
}

func init() {
	Command.AddCommand(levelCmd)
}
