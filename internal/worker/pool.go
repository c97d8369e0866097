// Package worker runs fire-and-forget tasks on a fixed set of goroutines.
// Tasks are handed over at most once; nothing is retried or persisted about
// the hand-off itself.
package worker

import (
	"sync"

	"github.com/nvoronova/bookshelf-backend/internal/metrics"
)

type task func()

type Pool struct {
	wg    sync.WaitGroup
	tasks chan task
}

func NewPool(n int) *Pool {
	p := &Pool{tasks: make(chan task, 1024)}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for t := range p.tasks {
				t()
				metrics.WorkerQueueDepth.Dec()
			}
		}()
	}
	return p
}

// Submit enqueues a task. Blocks only when the buffer is full.
func (p *Pool) Submit(f task) {
	metrics.WorkerQueueDepth.Inc()
	p.tasks <- f
}

// Stop drains the queue and waits for in-flight tasks to finish.
func (p *Pool) Stop() {
	close(p.tasks)
	p.wg.Wait()
}
