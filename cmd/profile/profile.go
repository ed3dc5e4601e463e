package profile

import (
	"github.com/spf13/cobra"
	"github.com/tpfand/tpfand/cmd/global"
	"github.com/tpfand/tpfand/internal"
	"github.com/tpfand/tpfand/internal/configuration"
	"github.com/tpfand/tpfand/internal/profile"
)

var Command = &cobra.Command{
	Use:              "profile",
	Short:            "Profile table related commands",
	TraverseChildren: true,
}

func loadTable() (*profile.Table, error) {
	global.LoadValidatedConfig()
	return internal.CreateTable(configuration.CurrentConfig)
}
