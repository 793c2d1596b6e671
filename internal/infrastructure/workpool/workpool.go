// Package workpool provides a fixed-size pool of workers for CPU-bound jobs.
// The auth service routes bcrypt verifications through it so a burst of login
// attempts cannot monopolize the request-handling goroutines.
package workpool

import (
	"context"

	"github.com/rs/zerolog"
)

const (
	defaultWorkers = 4
	queueBuffer    = 64
)

type job struct {
	fn   func()
	done chan struct{}
}

// Pool runs submitted jobs on a bounded set of workers. Do blocks the caller
// until its job has run, so results flow back through the closure; only the
// degree of parallelism is capped.
type Pool struct {
	jobs chan job
	size int
	log  zerolog.Logger
}

// New creates a Pool with size workers. If size <= 0, defaultWorkers is used.
func New(size int, log zerolog.Logger) *Pool {
	if size <= 0 {
		size = defaultWorkers
	}
	return &Pool{
		jobs: make(chan job, queueBuffer),
		size: size,
		log:  log,
	}
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.size; i++ {
		go p.runWorker(ctx, i)
	}
	p.log.Debug().Int("workers", p.size).Msg("workpool started")
}

// Do submits fn and waits for it to complete. Returns ctx.Err() if the
// context ends before the job has been accepted or finished.
func (p *Pool) Do(ctx context.Context, fn func()) error {
	j := job{fn: fn, done: make(chan struct{})}

	select {
	case p.jobs <- j:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-j.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-p.jobs:
			j.fn()
			close(j.done)
		}
	}
}
