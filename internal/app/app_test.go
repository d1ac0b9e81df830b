package app

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pc3-recommend/internal/config"
	"github.com/katalvlaran/pc3-recommend/internal/telemetry"
)

func writeFixture(t *testing.T, nrows, ncols uint64, records [][3]uint64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.bin")

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

func TestRun_EndToEndProducesReportForEveryUser(t *testing.T) {
	// Scenario 5 from the spec, as a binary fixture.
	path := writeFixture(t, 3, 3, [][3]uint64{
		{0, 0, 5}, {0, 1, 3},
		{1, 0, 4}, {1, 1, 2}, {1, 2, 1},
		{2, 1, 5}, {2, 2, 5},
	})

	cfg := &config.Config{
		InputFile: path,
		Workers:   2,
		K:         2,
		LogLevel:  "error",
		LogFormat: "text",
	}
	log := telemetry.NewLogger(cfg)

	var out bytes.Buffer
	require.NoError(t, Run(cfg, log, &out))

	report := out.String()
	assert.Contains(t, report, "Recommendations for User 0:")
	assert.Contains(t, report, "Recommendations for User 1:")
	assert.Contains(t, report, "Recommendations for User 2:")
	assert.Contains(t, report, "Item 2: Score")
}

func TestRun_TopNCapsPrintedItems(t *testing.T) {
	// u0 is positively similar to both u1 and u2 after centering, and
	// their unseen items give u0 two candidates (items 2 and 3).
	path := writeFixture(t, 3, 4, [][3]uint64{
		{0, 0, 1}, {0, 1, 3},
		{1, 0, 1}, {1, 1, 3}, {1, 2, 5}, {1, 3, 1},
		{2, 0, 1}, {2, 1, 5}, {2, 2, 1},
	})

	cfg := &config.Config{InputFile: path, Workers: 2, K: 2, TopN: 1, LogLevel: "error"}
	log := telemetry.NewLogger(cfg)

	var out bytes.Buffer
	require.NoError(t, Run(cfg, log, &out))

	userBlock := out.String()
	idx := strings.Index(userBlock, "Recommendations for User 0:")
	require.GreaterOrEqual(t, idx, 0)
	next := strings.Index(userBlock[idx:], "\n\n")
	block := userBlock[idx : idx+next]
	assert.LessOrEqual(t, strings.Count(block, "Item"), 1)
}

func TestRun_MissingFileReturnsError(t *testing.T) {
	cfg := &config.Config{InputFile: "/nonexistent.bin", Workers: 1, K: 1, LogLevel: "error"}
	log := telemetry.NewLogger(cfg)

	var out bytes.Buffer
	err := Run(cfg, log, &out)
	require.Error(t, err)
}
