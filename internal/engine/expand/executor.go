package expand

import (
	"context"
	"runtime"
	"sync"

	"go.trai.ch/lode/internal/core/domain"
)

// fetchResult carries a completed child-dependency read. Errors are
// captured as values so the driver decides when to abort.
type fetchResult struct {
	deps []domain.Dep
	err  error
}

// Future is the handle to a submitted child-dependency fetch.
type Future struct {
	ch chan fetchResult
}

// Await blocks until the fetch completes and returns its result.
func (f *Future) Await() ([]domain.Dep, error) {
	res := <-f.ch
	return res.deps, res.err
}

// Executor is a bounded worker pool for child-dependency fetches. The
// driver thread submits tasks and consumes their futures in queue order;
// workers only perform I/O. The executor is not reentrant and is shut
// down on normal return and on failure.
type Executor struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	cond  *sync.Cond
	queue []func(context.Context)
	done  bool

	wg sync.WaitGroup
}

// NewExecutor starts a pool with the given number of workers. A
// non-positive count defaults to the number of available processors.
func NewExecutor(ctx context.Context, threads int) *Executor {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	ctx, cancel := context.WithCancel(ctx)
	e := &Executor{ctx: ctx, cancel: cancel}
	e.cond = sync.NewCond(&e.mu)

	e.wg.Add(threads)
	for range threads {
		go e.worker()
	}
	return e
}

func (e *Executor) worker() {
	defer e.wg.Done()
	for {
		e.mu.Lock()
		for len(e.queue) == 0 && !e.done {
			e.cond.Wait()
		}
		if e.done {
			e.mu.Unlock()
			return
		}
		task := e.queue[0]
		e.queue = e.queue[1:]
		e.mu.Unlock()

		task(e.ctx)
	}
}

// Submit schedules fn on the pool and returns its future. The future's
// channel is buffered so a worker never blocks delivering a result the
// driver abandoned.
func (e *Executor) Submit(fn func(ctx context.Context) ([]domain.Dep, error)) *Future {
	fut := &Future{ch: make(chan fetchResult, 1)}
	task := func(ctx context.Context) {
		if err := ctx.Err(); err != nil {
			fut.ch <- fetchResult{err: err}
			return
		}
		deps, err := fn(ctx)
		fut.ch <- fetchResult{deps: deps, err: err}
	}

	e.mu.Lock()
	if e.done {
		e.mu.Unlock()
		fut.ch <- fetchResult{err: e.ctx.Err()}
		return fut
	}
	e.queue = append(e.queue, task)
	e.mu.Unlock()
	e.cond.Signal()
	return fut
}

// Shutdown cancels in-flight work and stops the workers. Queued tasks are
// dropped; their futures resolve to the cancellation error.
func (e *Executor) Shutdown() {
	e.cancel()
	e.mu.Lock()
	if e.done {
		e.mu.Unlock()
		return
	}
	e.done = true
	dropped := e.queue
	e.queue = nil
	e.mu.Unlock()
	e.cond.Broadcast()

	// Queued tasks never started; running them under the canceled context
	// resolves their futures to the cancellation error without doing work.
	for _, task := range dropped {
		task(e.ctx)
	}
	e.wg.Wait()
}
