package syncx

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync/atomic"
	"testing"
	"time"
)

func TestGoDispatcher(t *testing.T) {
	done := make(chan struct{})
	require.NoError(t, GoDispatcher().Dispatch(func() {
		close(done)
	}))
	<-done
}

func TestPoolDispatcher(t *testing.T) {
	var (
		disp  = NewPoolDispatcher(2, 4)
		count atomic.Int32
	)
	for i := 0; i < 10; i++ {
		require.NoError(t, disp.Dispatch(func() {
			count.Add(1)
		}))
	}
	disp.StopAndWait()
	assert.Equal(t, int32(10), count.Load())
	assert.ErrorIs(t, disp.Dispatch(func() {}), ErrDispatcherStopped)
}

func TestPoolDispatcher_Saturated(t *testing.T) {
	var (
		disp    = NewPoolDispatcher(1, 0)
		release = make(chan struct{})
		inner   = make(chan struct{})
	)
	require.NoError(t, disp.Dispatch(func() {
		// Work dispatched from a busy worker must still run.
		assert.NoError(t, disp.Dispatch(func() {
			close(inner)
		}))
		<-release
	}))
	select {
	case <-inner:
	case <-time.After(5 * time.Second):
		t.Fatal("Nested task never ran")
	}
	close(release)
	disp.StopAndWait()
}

func TestNewPoolDispatcher_Invalid(t *testing.T) {
	assert.Panics(t, func() {
		NewPoolDispatcher(0, 1)
	})
	assert.Panics(t, func() {
		NewPoolDispatcher(1, -1)
	})
}

func TestAwaitAll(t *testing.T) {
	futures := []FutureErr[int]{NewFutureErr[int](), NewFutureErr[int](), StaticFutureErr(3, nil)}
	go func() {
		time.Sleep(10 * time.Millisecond)
		futures[1].ResolveErr(2, nil)
		futures[0].ResolveErr(1, nil)
	}()
	vals, err := AwaitAll(context.Background(), futures...)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, vals)
}

func TestAwaitAll_Error(t *testing.T) {
	errTest := errors.New("test")
	pending := NewFutureErr[int]()
	_, err := AwaitAll(context.Background(), pending, StaticFutureErr(0, errTest))
	assert.ErrorIs(t, err, errTest, "The failure should cancel waiting on the pending future")
}
