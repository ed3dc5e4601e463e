package history

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
	"github.com/tpfand/tpfand/cmd/global"
	"github.com/tpfand/tpfand/internal/configuration"
	"github.com/tpfand/tpfand/internal/persistence"
	"github.com/tpfand/tpfand/internal/ui"
)

var (
	limit        int
	clearHistory bool
)

var Command = &cobra.Command{
	Use:   "history",
	Short: "Print the most recent fan level transitions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		global.LoadValidatedConfig()
		config := configuration.CurrentConfig

		_, err := os.Stat(config.DbPath)
		if errors.Is(err, os.ErrNotExist) {
			ui.Info("No transitions recorded yet")
			return nil
		}

		p := persistence.NewPersistence(config.DbPath, config.History.Retention)
		if clearHistory {
			if err := p.DeleteTransitions(); err != nil {
				return err
			}
			ui.Success("Transition history cleared")
			return nil
		}

		records, err := p.LoadTransitions(limit)
		if err != nil {
			return err
		}
		if len(records) <= 0 {
			ui.Info("No transitions recorded yet")
			return nil
		}

		tab := table.Table{
			Headers: []string{"Time", "From", "To", "Value", "Cause"},
			Rows:    formatRecords(records),
		}
		return global.PrintTable(tab)
	},
}

func formatRecords(records []persistence.Record) [][]string {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		from := "-"
		if record.FromLevel >= 0 {
			from = strconv.Itoa(record.FromLevel)
		}
		rows = append(rows, []string{
			record.Time.Local().Format(time.DateTime),
			from,
			strconv.Itoa(record.ToLevel),
			strconv.Itoa(record.Value),
			record.Cause,
		})
	}
	return rows
}

func init() {
	Command.Flags().IntVarP(&limit, "limit", "n", 20, "Number of transitions to print, 0 prints all")
	Command.Flags().BoolVarP(&clearHistory, "clear", "", false, "Delete all recorded transitions")
}
