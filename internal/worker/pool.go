// Package worker provides a worker pool for validating PGN games in parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// Job is the text of one PGN game to replay.
type Job struct {
	Text  string
	Index int // Position of the game in its input, for ordering
}

// Outcome is the result of replaying one game.
type Outcome struct {
	Index  int
	Game   *game.Game     // nil when the game failed to replay
	Record *output.Record // nil when the game failed to replay
	Err    error
}

// ValidateFunc replays one job.
type ValidateFunc func(job Job) Outcome

// Pool runs a fixed number of workers over a job channel.
type Pool struct {
	numWorkers int
	bufferSize int
	jobs       chan Job
	outcomes   chan Outcome
	validate   ValidateFunc
	wg         sync.WaitGroup
	stopFlag   int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. Default: 1 worker, buffer size of 10.
func NewPool(validate ValidateFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		validate:   validate,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.bufferSize)
	p.outcomes = make(chan Outcome, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker replays jobs until the job channel is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.outcomes <- p.validate(job)
	}
}

// Submit queues a job. It blocks while the buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// TrySubmit queues a job without blocking. It returns false if the buffer
// is full or the pool is stopped.
func (p *Pool) TrySubmit(job Job) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.jobs <- job:
		return true
	default:
		return false
	}
}

// Stop makes workers skip the jobs still queued.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the job channel, waits for the workers and then closes the
// outcome channel.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.outcomes)
}

// Outcomes returns the channel of finished jobs, in completion order.
func (p *Pool) Outcomes() <-chan Outcome {
	return p.outcomes
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
