// Package parallel runs independent jobs on a fixed number of workers and
// keeps count of how they ended.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

type (
	Job      func() error
	WorkFunc func(Job)
	WaitFunc func() Stats
)

// Stats counts finished jobs.
type Stats struct {
	Done   uint64
	Failed uint64
}

// Total is Done + Failed.
func (s Stats) Total() uint64 { return s.Done + s.Failed }

type Pool struct {
	wg     sync.WaitGroup
	done   atomic.Uint64
	failed atomic.Uint64
	// Do queues a job; with a single worker it runs the job inline.
	Do WorkFunc
	// Wait closes the queue, waits for every job and returns the counts.
	// Do must not be called after Wait.
	Wait WaitFunc
}

// Start creates a pool of numWorkers workers, GOMAXPROCS when below 1.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{}
	pool.Do = func(f Job) { pool.run(f) }
	pool.Wait = pool.stats

	if numWorkers > 1 {
		workChan := make(chan Job, numWorkers)

		for range numWorkers {
			pool.wg.Go(func() {
				for f := range workChan {
					pool.run(f)
				}
			})
		}

		pool.Do = func(f Job) {
			workChan <- f
		}

		closeOnce := sync.OnceFunc(func() { close(workChan) })
		pool.Wait = func() Stats {
			closeOnce()
			pool.wg.Wait()
			return pool.stats()
		}
	}

	return pool
}

func (p *Pool) run(f Job) {
	if err := f(); err != nil {
		p.failed.Add(1)
		return
	}
	p.done.Add(1)
}

func (p *Pool) stats() Stats {
	return Stats{Done: p.done.Load(), Failed: p.failed.Load()}
}
