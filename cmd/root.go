package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/tpfand/tpfand/cmd/config"
	"github.com/tpfand/tpfand/cmd/fan"
	"github.com/tpfand/tpfand/cmd/global"
	"github.com/tpfand/tpfand/cmd/history"
	"github.com/tpfand/tpfand/cmd/profile"
	"github.com/tpfand/tpfand/cmd/sensor"
	"github.com/tpfand/tpfand/internal"
	"github.com/tpfand/tpfand/internal/configuration"
	"github.com/tpfand/tpfand/internal/ui"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tpfand",
	Short: "A daemon to control the fan level of a ThinkPad.",
	Long: `tpfand is a small daemon that drives the discrete fan levels
of a laptop based on a table of temperature bands.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupUi()
	},
	// this is the default command to run when no subcommand is specified
	Run: func(cmd *cobra.Command, args []string) {
		printHeader()

		configPath := configuration.DetectAndReadConfigFile()
		ui.Info("Using configuration file at: %s", configPath)
		configuration.LoadConfig()
		err := configuration.Validate(configPath)
		if err != nil {
			ui.ErrorAndNotify("Config Validation Error", "%v", err)
			os.Exit(1)
		}

		logFile := global.LogFile
		if len(logFile) <= 0 {
			logFile = configuration.CurrentConfig.LogFile
		}
		if len(logFile) > 0 {
			redirectOutput(logFile)
		}
		ui.SetTimestamps(true)

		internal.RunDaemon(internal.DaemonOptions{
			SkipRootCheck: global.NoRootCheck,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.CfgFile, "config", "c", "", "config file (default is $HOME/tpfand.yaml)")
	rootCmd.PersistentFlags().StringVarP(&global.LogFile, "log-file", "", "", "Append all output to the given file instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")
	rootCmd.Flags().BoolVarP(&global.NoRootCheck, "no-root-check", "", false, "Do not require root permissions")

	rootCmd.AddCommand(config.Command)
	rootCmd.AddCommand(fan.Command)
	rootCmd.AddCommand(sensor.Command)
	rootCmd.AddCommand(profile.Command)
	rootCmd.AddCommand(history.Command)
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

func redirectOutput(path string) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		ui.Fatal("Unable to open log file %s: %v", path, err)
	}
	// escape sequences are useless in a file
	pterm.DisableColor()
	ui.SetOutput(file)
}

// Print a large text with the LetterStyle from the standard theme.
func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("tp", pterm.NewStyle(pterm.FgWhite)),
		pterm.NewLettersFromStringWithStyle("fan", pterm.NewStyle(pterm.FgLightRed)),
		pterm.NewLettersFromStringWithStyle("d", pterm.NewStyle(pterm.FgWhite)),
	).Render()
	if err != nil {
		fmt.Println("tpfand")
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		configuration.InitConfig(global.CfgFile)
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
