// Package workerpool implements the fixed-size FIFO worker pool: a
// shared task queue drained by N goroutines, with cooperative shutdown.
// Grounded on original_source/src/thread_pool.c, translated from
// pthread_mutex_t/pthread_cond_t to sync.Mutex/sync.Cond — the same
// queue-protection, signal, and join-barrier structure, not a channel
// redesign, because channels alone cannot express the exact "submit
// returns SHUTDOWN once destroy has begun, but already-queued tasks
// still drain" contract §4.4 requires.
package workerpool

import (
	"sync"

	"github.com/katalvlaran/pc3-recommend/internal/errs"
)

// Task is a unit of work: Fn consumes Arg and is responsible for any
// cleanup Arg needs — the pool never inspects Arg itself.
type Task struct {
	Fn  func(arg any)
	Arg any
}

type taskNode struct {
	task Task
	next *taskNode
}

// Stats is an optional sink a Pool reports queue/task events to, kept
// decoupled from any specific metrics backend so tests can use a plain
// struct and production wires in internal/telemetry's Prometheus
// collectors.
type Stats interface {
	TaskCompleted()
	QueueDepth(n int)
}

type noopStats struct{}

func (noopStats) TaskCompleted()  {}
func (noopStats) QueueDepth(int) {}

// Pool is a fixed-size worker pool draining a shared FIFO task queue.
type Pool struct {
	nthreads int

	mu    sync.Mutex
	cond  *sync.Cond
	head  *taskNode
	tail  *taskNode
	depth int

	shuttingDown bool
	wg           sync.WaitGroup

	stats Stats

	// startFn, when non-nil, replaces the goroutine launch used during
	// New so tests can force a THREAD failure — Go's `go func()` itself
	// has no failure mode, so this is the only way to exercise the
	// partial-startup recovery path §4.4 specifies.
	startFn func(run func()) error
}

// Option configures a Pool at construction time.
type Option func(*Pool)

// WithStats attaches a Stats sink the pool reports to.
func WithStats(s Stats) Option {
	return func(p *Pool) { p.stats = s }
}

func withStartFn(fn func(run func()) error) Option {
	return func(p *Pool) { p.startFn = fn }
}

// New initializes a Pool with nthreads workers. Fails with
// errs.KindInvalid if nthreads is 0. On a partial worker-start failure
// (only reachable via the test-only startFn hook — see Pool.startFn),
// New signals shutdown to the already-started workers, joins them, and
// returns errs.KindThread.
func New(nthreads int, opts ...Option) (*Pool, error) {
	const op = "workerpool.New"
	if nthreads <= 0 {
		return nil, errs.New(op, errs.KindInvalid)
	}

	p := &Pool{nthreads: nthreads, stats: noopStats{}}
	for _, opt := range opts {
		opt(p)
	}
	p.cond = sync.NewCond(&p.mu)

	launch := func(run func()) error {
		go run()
		return nil
	}
	if p.startFn != nil {
		launch = p.startFn
	}

	for i := 0; i < nthreads; i++ {
		p.wg.Add(1)
		if err := launch(p.worker); err != nil {
			p.wg.Done()
			p.cleanupPartial()
			return nil, errs.Wrap(op, errs.KindThread, err)
		}
	}

	return p, nil
}

func (p *Pool) cleanupPartial() {
	p.mu.Lock()
	p.shuttingDown = true
	p.cond.Broadcast()
	p.mu.Unlock()

	// started goroutines are already running and will observe
	// shuttingDown with an empty queue and return; wait for all of them
	// to join before reporting THREAD.
	p.wg.Wait()
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		p.mu.Lock()
		for p.head == nil && !p.shuttingDown {
			p.cond.Wait()
		}
		if p.shuttingDown && p.head == nil {
			p.mu.Unlock()
			return
		}

		n := p.head
		p.head = n.next
		if p.head == nil {
			p.tail = nil
		}
		p.depth--
		depth := p.depth
		p.mu.Unlock()

		p.stats.QueueDepth(depth)
		n.task.Fn(n.task.Arg)
		p.stats.TaskCompleted()
	}
}

// Submit enqueues fn(arg) to run on the next available worker. Returns
// errs.KindShutdown if Destroy has already begun.
func (p *Pool) Submit(fn func(arg any), arg any) error {
	const op = "workerpool.Submit"
	if fn == nil {
		return errs.New(op, errs.KindInvalid)
	}

	n := &taskNode{task: Task{Fn: fn, Arg: arg}}

	p.mu.Lock()
	if p.shuttingDown {
		p.mu.Unlock()
		return errs.New(op, errs.KindShutdown)
	}

	if p.tail == nil {
		p.head = n
	} else {
		p.tail.next = n
	}
	p.tail = n
	p.depth++
	depth := p.depth
	p.cond.Signal()
	p.mu.Unlock()

	p.stats.QueueDepth(depth)
	return nil
}

// Destroy signals shutdown, wakes every worker, and blocks until all
// have drained the queue and exited. Tasks enqueued before Destroy was
// called run to completion; Destroy is their join barrier.
func (p *Pool) Destroy() {
	p.mu.Lock()
	p.shuttingDown = true
	p.cond.Broadcast()
	p.mu.Unlock()

	p.wg.Wait()
}
