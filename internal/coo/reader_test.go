package coo

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, nrows, ncols uint64, records [][3]uint64) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.bin")

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	var header [16]byte
	binary.LittleEndian.PutUint64(header[0:8], nrows)
	binary.LittleEndian.PutUint64(header[8:16], ncols)
	_, err = f.Write(header[:])
	require.NoError(t, err)

	for _, r := range records {
		var rec [17]byte
		binary.LittleEndian.PutUint64(rec[0:8], r[0])
		binary.LittleEndian.PutUint64(rec[8:16], r[1])
		rec[16] = byte(r[2])
		_, err := f.Write(rec[:])
		require.NoError(t, err)
	}

	return path
}

func TestReadFile_DecodesHeaderAndRecords(t *testing.T) {
	path := writeFixture(t, 2, 3, [][3]uint64{
		{0, 1, 2},
		{1, 2, 5},
	})

	trip, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 2, trip.NRows)
	assert.Equal(t, 3, trip.NCols)
	require.Len(t, trip.Row, 2)
	assert.Equal(t, []int{0, 1}, trip.Row)
	assert.Equal(t, []int{1, 2}, trip.Col)
	assert.Equal(t, []float64{2, 5}, trip.Value)
}

func TestReadFile_EmptyBody(t *testing.T) {
	path := writeFixture(t, 0, 0, nil)

	trip, err := ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, trip.Row)
}

func TestReadFile_MissingFile(t *testing.T) {
	_, err := ReadFile("/nonexistent/path/to/file.bin")
	require.Error(t, err)
}

func TestReadFile_TruncatedRecordIsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.bin")
	// 16-byte header plus 10 stray bytes: not a multiple of recordSize.
	require.NoError(t, os.WriteFile(path, make([]byte, 26), 0o600))

	_, err := ReadFile(path)
	require.Error(t, err)
}
