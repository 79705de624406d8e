package parallel

import (
	"runtime"
	"sync"
)

// Pool runs tasks on a fixed number of goroutines. A pool of one worker
// runs every task synchronously in Go.
type Pool struct {
	wg      sync.WaitGroup
	work    chan func()
	workers int
	close   func()
}

func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		workers: numWorkers,
		close:   func() {},
	}
	if numWorkers == 1 {
		return pool
	}

	pool.work = make(chan func(), numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for f := range pool.work {
				f()
			}
		})
	}
	pool.close = sync.OnceFunc(func() { close(pool.work) })

	return pool
}

// Workers is the number of tasks that may run at once.
func (p *Pool) Workers() int {
	return p.workers
}

// Go queues f, blocking while every worker is busy and the queue is full.
// It must not be called after Close.
func (p *Pool) Go(f func()) {
	if p.work == nil {
		f()
		return
	}
	p.work <- f
}

// Close stops accepting tasks and waits for the queued ones to finish.
func (p *Pool) Close() {
	p.close()
	p.wg.Wait()
}
