// Package worker runs tile fetches on a bounded set of goroutines.
package worker

import (
	"context"
	"sync"
	"time"
)

// Task is a unit of work. Work receives the task's context and should
// return when it is cancelled.
type Task struct {
	Ctx  context.Context
	Work func(ctx context.Context) error
}

type Pool struct {
	workers chan struct{}
	tasks   chan Task
	quit    chan struct{}
	timeout time.Duration
	once    sync.Once
	wg      sync.WaitGroup
}

// NewPool starts a dispatcher running at most maxWorkers tasks at once.
// Each task is bounded by timeout.
func NewPool(maxWorkers int, timeout time.Duration) *Pool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	p := &Pool{
		workers: make(chan struct{}, maxWorkers),
		tasks:   make(chan Task, 100),
		quit:    make(chan struct{}),
		timeout: timeout,
	}
	p.wg.Add(1)
	go p.dispatcher()
	return p
}

func (p *Pool) dispatcher() {
	defer p.wg.Done()
	for {
		select {
		case <-p.quit:
			return
		case task := <-p.tasks:
			select {
			case p.workers <- struct{}{}:
			case <-p.quit:
				return
			}
			p.wg.Add(1)
			go func() {
				defer func() {
					<-p.workers
					p.wg.Done()
				}()
				ctx := task.Ctx
				if ctx == nil {
					ctx = context.Background()
				}
				ctx, cancel := context.WithTimeout(ctx, p.timeout)
				defer cancel()
				_ = task.Work(ctx)
			}()
		}
	}
}

// Submit queues a task. It reports false when the queue is full or the pool
// is shut down; the caller may retry on a later frame.
func (p *Pool) Submit(task Task) bool {
	select {
	case <-p.quit:
		return false
	default:
	}
	select {
	case p.tasks <- task:
		return true
	default:
		return false
	}
}

// Shutdown stops dispatching and waits for running tasks.
func (p *Pool) Shutdown() {
	p.once.Do(func() { close(p.quit) })
	p.wg.Wait()
}
