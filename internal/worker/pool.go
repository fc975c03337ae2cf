package worker

import (
	"context"
	"sync"
)

type Task func(ctx context.Context)

// Pool fans submitted tasks out over a fixed number of goroutines. Tasks
// own their output slots; the pool only coordinates execution.
type Pool struct {
	workers int
	tasks   chan Task
	wg      sync.WaitGroup
}

func NewPool(workers, buffer int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &Pool{
		workers: workers,
		tasks:   make(chan Task, buffer),
	}
}

// Submit enqueues a task. It blocks once the buffer is full until Run's
// workers drain the channel, so callers submitting before Run either size the
// buffer to the task count or start Run first.
func (p *Pool) Submit(t Task) {
	if p == nil || t == nil {
		return
	}
	p.tasks <- t
}

func (p *Pool) Close() {
	if p == nil {
		return
	}
	close(p.tasks)
}

// Run starts the workers and blocks until the task channel is closed and
// drained, or the context is cancelled.
func (p *Pool) Run(ctx context.Context) {
	if p == nil {
		return
	}

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					if t == nil {
						continue
					}
					t(ctx)
				}
			}
		}()
	}

	p.wg.Wait()
}
