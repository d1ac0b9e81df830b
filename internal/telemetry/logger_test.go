package telemetry

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pc3-recommend/internal/config"
)

func TestNewLogger_DefaultsToInfoAndText(t *testing.T) {
	log := NewLogger(&config.Config{LogLevel: "", LogFormat: ""})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	_, isText := log.Formatter.(*logrus.TextFormatter)
	assert.True(t, isText)
}

func TestNewLogger_JSONFormat(t *testing.T) {
	log := NewLogger(&config.Config{LogLevel: "warn", LogFormat: "json"})
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	_, isJSON := log.Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)
}

func TestNewLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	log := NewLogger(&config.Config{LogLevel: "not-a-level"})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestTimer_StopLogsElapsed(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	timer := NewTimer(log, "test-stage")
	time.Sleep(time.Millisecond)
	elapsed := timer.Stop("did a thing")

	require.Greater(t, elapsed, time.Duration(0))
	assert.Contains(t, buf.String(), "did a thing")
}
