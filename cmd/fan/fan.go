package fan

import (
	"github.com/spf13/cobra"
	"github.com/tpfand/tpfand/cmd/global"
	"github.com/tpfand/tpfand/internal/configuration"
	"github.com/tpfand/tpfand/internal/fans"
)

var Command = &cobra.Command{
	Use:              "fan",
	Short:            "Fan related commands",
	Long:             ``,
	TraverseChildren: true,
}

func getActuator() (fans.Actuator, error) {
	global.LoadValidatedConfig()

	return fans.NewActuator(configuration.CurrentConfig.Fan)
}
