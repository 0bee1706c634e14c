package syncx

import (
	"errors"
	"github.com/alitto/pond"
	"sync"
)

var (
	ErrDispatcherStopped = errors.New("dispatcher stopped")
)

// Dispatcher schedules a unit of work to run independently of the caller.
type Dispatcher interface {
	// Dispatch schedules task.
	// If an error is returned, then task will never run.
	Dispatch(task func()) error
}

// DispatcherFunc is a function that implements [Dispatcher].
type DispatcherFunc func(task func()) error

func (f DispatcherFunc) Dispatch(task func()) error {
	return f(task)
}

// GoDispatcher runs every task on a new goroutine.
func GoDispatcher() Dispatcher {
	return DispatcherFunc(func(task func()) error {
		go task()
		return nil
	})
}

// PoolDispatcher runs tasks on a bounded pool of worker goroutines.
// Dispatch never blocks: when the pool is saturated the task runs on its own goroutine instead,
// so a task may dispatch more work to the same pool.
type PoolDispatcher struct {
	pool     *pond.WorkerPool
	mux      sync.Mutex
	stopped  bool
	overflow sync.WaitGroup
}

// NewPoolDispatcher creates a [PoolDispatcher] with up to maxWorkers goroutines and a queue of maxCapacity tasks.
func NewPoolDispatcher(maxWorkers, maxCapacity int) *PoolDispatcher {
	if maxWorkers < 1 {
		panic("max workers must be >= 1")
	}
	if maxCapacity < 0 {
		panic("max capacity must be >= 0")
	}
	return &PoolDispatcher{
		pool: pond.New(maxWorkers, maxCapacity),
	}
}

func (d *PoolDispatcher) Dispatch(task func()) error {
	d.mux.Lock()
	defer d.mux.Unlock()
	if d.stopped {
		return ErrDispatcherStopped
	}
	if d.pool.TrySubmit(task) {
		return nil
	}
	d.overflow.Add(1)
	go func() {
		defer d.overflow.Done()
		task()
	}()
	return nil
}

// StopAndWait stops accepting tasks and waits for dispatched tasks to finish.
func (d *PoolDispatcher) StopAndWait() {
	d.mux.Lock()
	d.stopped = true
	d.mux.Unlock()
	d.pool.StopAndWait()
	d.overflow.Wait()
}
