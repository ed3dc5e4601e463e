package persistence

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPersistence(t *testing.T, retention int) Persistence {
	p := NewPersistence(filepath.Join(t.TempDir(), "db", "tpfand.db"), retention)
	require.NoError(t, p.Init())
	return p
}

func createRecord(from int, to int) Record {
	return Record{
		Time:      time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		FromLevel: from,
		ToLevel:   to,
		Value:     46,
		Cause:     "escape-up",
	}
}

func TestPersistence_LoadTransitions_Empty(t *testing.T) {
	// GIVEN
	p := createPersistence(t, 10)

	// WHEN
	records, err := p.LoadTransitions(0)

	// THEN
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestPersistence_AppendTransition(t *testing.T) {
	// GIVEN
	p := createPersistence(t, 10)

	// WHEN
	err1 := p.AppendTransition(createRecord(-1, 0))
	err2 := p.AppendTransition(createRecord(0, 2))

	// THEN
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	records, err := p.LoadTransitions(0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, uint64(1), records[0].Sequence)
	assert.Equal(t, -1, records[0].FromLevel)
	assert.Equal(t, uint64(2), records[1].Sequence)
	assert.Equal(t, 2, records[1].ToLevel)
	assert.Equal(t, "escape-up", records[1].Cause)
	assert.True(t, records[1].Time.Equal(createRecord(0, 2).Time))
}

func TestPersistence_AppendTransition_PrunesBeyondRetention(t *testing.T) {
	// GIVEN
	p := createPersistence(t, 3)

	// WHEN
	for level := 0; level < 5; level++ {
		require.NoError(t, p.AppendTransition(createRecord(level, level+1)))
	}

	// THEN
	records, err := p.LoadTransitions(0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, uint64(3), records[0].Sequence)
	assert.Equal(t, uint64(5), records[2].Sequence)
}

func TestPersistence_LoadTransitions_Limit(t *testing.T) {
	// GIVEN
	p := createPersistence(t, 0)
	for level := 0; level < 5; level++ {
		require.NoError(t, p.AppendTransition(createRecord(level, level+1)))
	}

	// WHEN
	records, err := p.LoadTransitions(2)

	// THEN
	assert.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 4, records[0].ToLevel)
	assert.Equal(t, 5, records[1].ToLevel)
}

func TestPersistence_DeleteTransitions(t *testing.T) {
	// GIVEN
	p := createPersistence(t, 10)
	require.NoError(t, p.AppendTransition(createRecord(0, 1)))

	// WHEN
	err := p.DeleteTransitions()

	// THEN
	assert.NoError(t, err)
	records, err := p.LoadTransitions(0)
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestPersistence_DeleteTransitions_NothingRecorded(t *testing.T) {
	// GIVEN
	p := createPersistence(t, 10)

	// WHEN
	err := p.DeleteTransitions()

	// THEN
	assert.NoError(t, err)
}
