package syncx

import (
	"github.com/saylorsolutions/slots/assert"
	"sync"
)

// noCopy may be embedded in structs that must not be copied after first use.
// See https://golang.org/issues/8005#issuecomment-190753527
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Gate is a counting permit that allows a single critical section to be in flight at a time.
// Unlike a mutex, a Gate may be released by a different goroutine than the one that acquired it,
// which is what lets an emission be started on one goroutine and finished on another.
//
// The permit starts at 0. [Gate.Acquire] waits until it's >= 0 and then decrements it.
// [Gate.Release] increments it and wakes every waiter.
//
// A Gate also satisfies [sync.Locker] so that it can stand in for an instance lock.
type Gate struct {
	_      noCopy
	mux    sync.Locker
	cond   *sync.Cond
	permit int
}

// NewGate creates a [Gate] whose permit is guarded by mux.
// A [NoLock] or nil mux is replaced with a [LocalLock], since the condition needs real mutual exclusion.
func NewGate(mux sync.Locker) *Gate {
	if mux == nil || IsNoLock(mux) {
		mux = LocalLock()
	}
	return &Gate{
		mux:  mux,
		cond: sync.NewCond(mux),
	}
}

// Acquire blocks until no other critical section holds the [Gate].
func (g *Gate) Acquire() {
	g.mux.Lock()
	defer g.mux.Unlock()
	for g.permit < 0 {
		g.cond.Wait()
	}
	g.permit--
}

// Release ends the critical section started with [Gate.Acquire].
// Releasing more often than acquiring violates the Gate's invariant and panics.
func (g *Gate) Release() {
	LockFunc(g.mux, func() {
		g.permit++
		assert.That(g.permit <= 0, "gate released %d more time(s) than acquired", g.permit)
	})
	g.cond.Broadcast()
}

// Held reports whether a critical section is currently in flight.
func (g *Gate) Held() bool {
	return LockFuncT(g.mux, func() bool {
		return g.permit < 0
	})
}

func (g *Gate) Lock() {
	g.Acquire()
}

func (g *Gate) Unlock() {
	g.Release()
}
