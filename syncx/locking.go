package syncx

import (
	"github.com/petermattis/goid"
	"sync"
	"sync/atomic"
)

// NoLock returns a [sync.Locker] that does nothing.
// It's only suitable for registries that are used from a single goroutine.
func NoLock() sync.Locker {
	return noLock{}
}

type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}

// IsNoLock reports whether mux was created with [NoLock].
func IsNoLock(mux sync.Locker) bool {
	_, ok := mux.(noLock)
	return ok
}

var globalMux reentrantMutex

// GlobalLock returns the process-wide lock shared by every caller.
// It's reentrant so that chained emitters that all use it don't deadlock.
func GlobalLock() sync.Locker {
	return &globalMux
}

// LocalLock returns a new mutex to be owned by a single instance.
func LocalLock() sync.Locker {
	return new(sync.Mutex)
}

// LockLike returns a new lock with the same policy as mux.
// The [GlobalLock] is shared, so it's returned as is.
func LockLike(mux sync.Locker) sync.Locker {
	switch m := mux.(type) {
	case nil, noLock:
		return NoLock()
	case *reentrantMutex:
		if m == &globalMux {
			return GlobalLock()
		}
		return ReentrantLock()
	case *Gate:
		return NewGate(LockLike(m.mux))
	default:
		return LocalLock()
	}
}

// ReentrantLock returns a new per-instance lock that may be locked again by the goroutine that already holds it.
// Each Lock must be matched by an Unlock from the same goroutine.
func ReentrantLock() sync.Locker {
	return new(reentrantMutex)
}

type reentrantMutex struct {
	mux   sync.Mutex
	owner atomic.Int64
	depth int
}

func (m *reentrantMutex) Lock() {
	id := goid.Get()
	if m.owner.Load() == id {
		m.depth++
		return
	}
	m.mux.Lock()
	m.owner.Store(id)
	m.depth = 1
}

func (m *reentrantMutex) Unlock() {
	if m.owner.Load() != goid.Get() {
		panic("syncx: unlock of reentrant lock not held by this goroutine")
	}
	m.depth--
	if m.depth == 0 {
		m.owner.Store(0)
		m.mux.Unlock()
	}
}

func LockFunc(mux sync.Locker, fn func()) {
	mux.Lock()
	defer mux.Unlock()
	fn()
}

func LockFuncT[T any](mux sync.Locker, fn func() T) T {
	mux.Lock()
	defer mux.Unlock()
	return fn()
}

type RLocker interface {
	RLock()
	RUnlock()
}

func RLockFunc(mux RLocker, fn func()) {
	mux.RLock()
	defer mux.RUnlock()
	fn()
}

func RLockFuncT[T any](mux RLocker, fn func() T) T {
	mux.RLock()
	defer mux.RUnlock()
	return fn()
}
