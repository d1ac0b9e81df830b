package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collectors registered here follow the registration-at-package-init
// pattern in pandharkardeep/social-graph's internal/metrics/metrics.go;
// unlike that HTTP-serving example, the registry here is populated
// unconditionally but only exposed over HTTP when --metrics-addr is set
// (§12), since this is a batch job, not a long-running service.
var (
	StageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pc3_stage_duration_seconds",
			Help:    "Duration of each pipeline stage in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"stage"},
	)

	WorkerTasksCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pc3_worker_tasks_completed_total",
			Help: "Total worker pool tasks that ran to completion.",
		},
	)

	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pc3_worker_queue_depth",
			Help: "Worker pool task queue depth, sampled on submit/dequeue.",
		},
	)

	NeighborhoodSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pc3_neighborhood_size",
			Help:    "Computed neighborhood size per user.",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 30, 50, 100},
		},
	)
)

func init() {
	prometheus.MustRegister(StageDuration, WorkerTasksCompleted, WorkerQueueDepth, NeighborhoodSize)
}

// PoolStats adapts the registered worker collectors to workerpool.Stats
// without internal/workerpool importing Prometheus directly.
type PoolStats struct{}

func (PoolStats) TaskCompleted() { WorkerTasksCompleted.Inc() }
func (PoolStats) QueueDepth(n int) { WorkerQueueDepth.Set(float64(n)) }

// ServeMetrics starts a /metrics HTTP listener on addr if addr is
// non-empty, returning immediately; it never blocks correctness since
// the registry is populated regardless (§12). Shuts down when ctx is
// canceled.
func ServeMetrics(ctx context.Context, addr string) {
	if addr == "" {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	go func() {
		_ = srv.ListenAndServe()
	}()
}
