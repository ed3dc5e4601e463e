package global

import (
	"bytes"
	"os"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/tomlazar/table"
)

func TestPrintTable_KeepsPercentSigns(t *testing.T) {
	// GIVEN
	var buf bytes.Buffer
	pterm.SetDefaultOutput(&buf)
	defer pterm.SetDefaultOutput(os.Stdout)
	NoColor = true
	defer func() { NoColor = false }()

	tab := table.Table{
		Headers: []string{"Zone", "Load"},
		Rows:    [][]string{{"cpu", "100%d"}},
	}

	// WHEN
	err := PrintTable(tab)

	// THEN
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "100%d")
	assert.NotContains(t, buf.String(), "MISSING")
}
