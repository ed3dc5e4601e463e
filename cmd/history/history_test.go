package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tpfand/tpfand/internal/persistence"
)

func TestFormatRecords(t *testing.T) {
	// GIVEN
	at := time.Date(2024, 3, 1, 12, 30, 0, 0, time.Local)
	records := []persistence.Record{
		{Time: at, FromLevel: -1, ToLevel: 0, Value: 25, Cause: "initial"},
		{Time: at, FromLevel: 0, ToLevel: 2, Value: 46, Cause: "escape-up"},
	}

	// WHEN
	rows := formatRecords(records)

	// THEN
	assert.Equal(t, [][]string{
		{"2024-03-01 12:30:00", "-", "0", "25", "initial"},
		{"2024-03-01 12:30:00", "0", "2", "46", "escape-up"},
	}, rows)
}
