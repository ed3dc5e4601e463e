package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tpfand/tpfand/internal/ui"
)

// Version is set at build time through -ldflags
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tpfand",
	Long:  `All software has versions. This is tpfand's`,
	Run: func(cmd *cobra.Command, args []string) {
		ui.Printfln("%s", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
