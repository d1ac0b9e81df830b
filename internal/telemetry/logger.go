// Package telemetry adapts the teacher's hand-rolled utils.Logger and
// utils.Timer into a logrus-backed logger and Prometheus instrumentation,
// grounded on utils/logger.go (Info/Warn/Error surface) and utils/timer.go
// (stage timing), generalized to the configurable level/format pair
// SPEC_FULL §11 adds.
package telemetry

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pc3-recommend/internal/config"
)

// NewLogger builds a *logrus.Logger configured from cfg's LogLevel and
// LogFormat, writing to stdout so stage progress lines keep reading like
// a terminal tool even under the structured formatter.
func NewLogger(cfg *config.Config) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if cfg.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return l
}

// Timer measures one pipeline stage's wall-clock duration and, on Stop,
// both logs it and records it in the stage_duration histogram —
// replacing utils.Timer's plain Elapsed() with the combined
// log+metrics reporting the pipeline needs at each of §2's stage
// boundaries.
type Timer struct {
	stage string
	start time.Time
	log   *logrus.Logger
}

// NewTimer starts timing stage, to be finished with Stop.
func NewTimer(log *logrus.Logger, stage string) *Timer {
	return &Timer{stage: stage, start: time.Now(), log: log}
}

// Stop records the elapsed duration against the stage_duration_seconds
// histogram and logs message at Info level with the elapsed time
// appended.
func (t *Timer) Stop(message string) time.Duration {
	elapsed := time.Since(t.start)
	StageDuration.WithLabelValues(t.stage).Observe(elapsed.Seconds())
	t.log.Infof("%s (%s)", message, elapsed)
	return elapsed
}
