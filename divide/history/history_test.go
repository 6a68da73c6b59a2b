package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classdivide/classdivide/divide"
)

func testManager(t *testing.T) *Manager {
	t.Helper()
	return NewManagerAt(filepath.Join(t.TempDir(), "history.json"))
}

func testRecord(input string) Record {
	return NewRecord(input, "out.xlsx", 4, 100, "xlsx", divide.DefaultParams())
}

func TestManager_LoadMissingFile_Empty(t *testing.T) {
	m := testManager(t)
	records, err := m.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestManager_AddThenLoad_RoundTrips(t *testing.T) {
	m := testManager(t)
	rec := testRecord("roster.xlsx")

	require.NoError(t, m.Add(rec))

	records, err := m.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec.ID, records[0].ID)
	assert.Equal(t, "roster.xlsx", records[0].InputPath)
	assert.Equal(t, 4, records[0].NumClasses)
	assert.Equal(t, divide.DefaultParams(), records[0].Params)
}

func TestManager_Add_NewestFirst(t *testing.T) {
	m := testManager(t)
	require.NoError(t, m.Add(testRecord("first.xlsx")))
	require.NoError(t, m.Add(testRecord("second.xlsx")))

	records, err := m.Load()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "second.xlsx", records[0].InputPath)
	assert.Equal(t, "first.xlsx", records[1].InputPath)
}

func TestManager_Add_TruncatesAtFifty(t *testing.T) {
	m := testManager(t)
	for i := 0; i < 55; i++ {
		require.NoError(t, m.Add(testRecord("run.xlsx")))
	}

	records, err := m.Load()
	require.NoError(t, err)
	assert.Len(t, records, 50)
}

func TestManager_Delete(t *testing.T) {
	m := testManager(t)
	keep := testRecord("keep.xlsx")
	drop := testRecord("drop.xlsx")
	require.NoError(t, m.Add(keep))
	require.NoError(t, m.Add(drop))

	require.NoError(t, m.Delete(drop.ID))

	records, err := m.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, keep.ID, records[0].ID)
}

func TestManager_Clear(t *testing.T) {
	m := testManager(t)
	require.NoError(t, m.Add(testRecord("run.xlsx")))
	require.NoError(t, m.Clear())
	require.NoError(t, m.Clear()) // idempotent

	records, err := m.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestManager_CorruptFile_DiscardedNotFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	m := NewManagerAt(path)

	records, err := m.Load()
	require.NoError(t, err)
	assert.Empty(t, records)

	// The corrupt file is gone; a fresh Add starts clean.
	require.NoError(t, m.Add(testRecord("run.xlsx")))
	records, err = m.Load()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
