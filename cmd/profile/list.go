package profile

import (
	"fmt"
	"math"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
	"github.com/tpfand/tpfand/cmd/global"
	"github.com/tpfand/tpfand/internal/profile"
	"github.com/tpfand/tpfand/internal/ui"
)

const (
	plotMargin    = 10
	maxPlotPoints = 200
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the profile table and a plot of the fan level over temperature",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profileTable, err := loadTable()
		if err != nil {
			return err
		}

		var rows [][]string
		for idx, p := range profileTable.Profiles() {
			rows = append(rows, []string{
				strconv.Itoa(idx), p.String(), strconv.Itoa(p.Level), strconv.Itoa(p.StickMargin), strconv.Itoa(p.HoldDelay),
			})
		}
		tab := table.Table{
			Headers: []string{"Index", "Band", "Level", "Stick Margin", "Hold Delay"},
			Rows:    rows,
		}
		if err := global.PrintTable(tab); err != nil {
			return err
		}

		start, stop := plotRange(profileTable)
		values := plotValues(profileTable, start, stop)

		caption := fmt.Sprintf("Level / Temperature (%d..%d)", start, stop)
		graph := asciigraph.Plot(values, asciigraph.Height(10), asciigraph.Width(100), asciigraph.Caption(caption))
		ui.Printfln("%s", graph)
		return nil
	},
}

// plotRange covers all finite band bounds plus some margin on both sides.
func plotRange(t *profile.Table) (start int, stop int) {
	start, stop = math.MaxInt, math.MinInt
	for _, p := range t.Profiles() {
		for _, bound := range []int{p.Min, p.Max} {
			if bound == math.MinInt || bound == math.MaxInt {
				continue
			}
			start = min(start, bound)
			stop = max(stop, bound)
		}
	}
	if start > stop {
		// a single band covering everything
		return 0, 100
	}
	return saturatingAdd(start, -plotMargin), saturatingAdd(stop, plotMargin)
}

// plotValues samples the level at no more than maxPlotPoints+1 evenly spaced
// temperatures between start and stop.
func plotValues(t *profile.Table, start int, stop int) []float64 {
	span := uint(stop - start)
	step := span/maxPlotPoints + 1

	values := make([]float64, 0, maxPlotPoints+1)
	for offset := uint(0); ; offset += step {
		values = append(values, float64(t.Pick(start+int(offset)).Level))
		if span-offset < step {
			break
		}
	}
	return values
}

func saturatingAdd(value int, delta int) int {
	if delta > 0 && value > math.MaxInt-delta {
		return math.MaxInt
	}
	if delta < 0 && value < math.MinInt-delta {
		return math.MinInt
	}
	return value + delta
}

func init() {
	Command.AddCommand(listCmd)
}
