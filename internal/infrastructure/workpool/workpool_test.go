package workpool

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestPool_RunsSubmittedJobs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := New(2, zerolog.Nop())
	p.Start(ctx)

	var ran atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := p.Do(ctx, func() { ran.Add(1) }); err != nil {
				t.Errorf("Do returned error: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := ran.Load(); got != 20 {
		t.Fatalf("expected 20 jobs run, got %d", got)
	}
}

func TestPool_DoBlocksUntilComplete(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := New(1, zerolog.Nop())
	p.Start(ctx)

	result := 0
	if err := p.Do(ctx, func() {
		time.Sleep(10 * time.Millisecond)
		result = 42
	}); err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	// Do must not return before the job body has finished.
	if result != 42 {
		t.Fatalf("expected result set before Do returned, got %d", result)
	}
}

func TestPool_DoHonorsContext(t *testing.T) {
	// Pool never started: no worker drains the queue beyond its buffer, so a
	// cancelled context must unblock the caller.
	p := New(1, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Fill the buffered queue first so submission blocks.
	for i := 0; i < queueBuffer; i++ {
		p.jobs <- job{fn: func() {}, done: make(chan struct{})}
	}

	if err := p.Do(ctx, func() {}); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNew_DefaultSize(t *testing.T) {
	p := New(0, zerolog.Nop())
	if p.size != defaultWorkers {
		t.Fatalf("expected default size %d, got %d", defaultWorkers, p.size)
	}
}
