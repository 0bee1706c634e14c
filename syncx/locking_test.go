package syncx

import (
	"github.com/stretchr/testify/assert"
	"sync"
	"testing"
)

func TestReentrantLock(t *testing.T) {
	mux := ReentrantLock()
	mux.Lock()
	mux.Lock()
	mux.Unlock()

	released := make(chan struct{})
	go func() {
		LockFunc(mux, func() {})
		close(released)
	}()
	mux.Unlock()
	<-released
}

func TestReentrantLock_UnlockFromOtherGoroutine(t *testing.T) {
	mux := ReentrantLock()
	mux.Lock()
	defer mux.Unlock()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.Panics(t, mux.Unlock)
	}()
	wg.Wait()
}

func TestGlobalLock(t *testing.T) {
	assert.Same(t, GlobalLock(), GlobalLock())
	LockFunc(GlobalLock(), func() {
		LockFunc(GlobalLock(), func() {})
	})
}

func TestLockPolicies(t *testing.T) {
	tests := map[string]sync.Locker{
		"no lock":   NoLock(),
		"global":    GlobalLock(),
		"local":     LocalLock(),
		"reentrant": ReentrantLock(),
		"gate":      NewGate(nil),
	}
	for name, mux := range tests {
		t.Run(name, func(t *testing.T) {
			val := LockFuncT(mux, func() int {
				return 5
			})
			assert.Equal(t, 5, val)
		})
	}
	assert.True(t, IsNoLock(NoLock()))
	assert.False(t, IsNoLock(LocalLock()))
}

func TestRLockFuncT(t *testing.T) {
	var mux sync.RWMutex
	assert.Equal(t, "read", RLockFuncT(&mux, func() string {
		return "read"
	}))
}

func TestLockLike(t *testing.T) {
	assert.True(t, IsNoLock(LockLike(NoLock())))
	assert.True(t, IsNoLock(LockLike(nil)))
	assert.Same(t, GlobalLock(), LockLike(GlobalLock()))

	reentrant := ReentrantLock()
	like := LockLike(reentrant)
	assert.IsType(t, reentrant, like)
	assert.NotSame(t, reentrant, like)

	local := LocalLock()
	assert.IsType(t, local, LockLike(local))
	assert.NotSame(t, local, LockLike(local))

	gate := NewGate(nil)
	gateLike, ok := LockLike(gate).(*Gate)
	assert.True(t, ok)
	assert.NotSame(t, gate, gateLike)
}
