package observer

import (
	"context"
	"github.com/saylorsolutions/slots/registry"
	"github.com/stretchr/testify/assert"
	"sync"
	"testing"
	"time"
)

type watcher struct {
	registry.Tracker
	seen []int
}

func (w *watcher) See(val int) {
	w.seen = append(w.seen, val)
}

func TestSubject_Set(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := NewSubject(ctx, 5)
	assert.Equal(t, 5, sub.Get())
	sub.Set(10)
	assert.Equal(t, 10, sub.Get())
}

func TestSubject_Observe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := NewSubject(ctx, 5)

	var receivedVal int
	stop := sub.Observe(func(newVal int) {
		receivedVal = newVal
	})
	assert.True(t, sub.Observed())
	sub.Set(10)
	assert.Equal(t, 10, receivedVal)
	sub.Set(15)
	assert.Equal(t, 15, receivedVal)

	stop()
	sub.Set(20)
	assert.Equal(t, 15, receivedVal)
	assert.False(t, sub.Observed())
}

func TestSubject_ConcurrentSet(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := NewSubject(ctx, 0)

	var (
		last       int
		mismatched int
	)
	sub.Observe(func(newVal int) {
		if sub.Get() != newVal {
			mismatched++
		}
		last = newVal
	})
	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(val int) {
			defer wg.Done()
			sub.Set(val)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 0, mismatched, "Observers see the stored value")
	assert.Equal(t, sub.Get(), last)
}

func TestSubject_ObserveSameFunc(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := NewSubject(ctx, "")

	var calls int
	obs := func(string) { calls++ }
	stopA := sub.Observe(obs)
	sub.Observe(obs)
	sub.Set("a")
	assert.Equal(t, 2, calls)

	stopA()
	sub.Set("b")
	assert.Equal(t, 3, calls, "Each subscription is stopped independently")
}

func TestSubject_StopWhileNotified(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := NewSubject(ctx, 0)

	var (
		calls int
		stop  func()
	)
	stop = sub.Observe(func(int) {
		calls++
		stop()
	})
	sub.Set(1)
	sub.Set(2)
	assert.Equal(t, 1, calls)
}

func TestObserveMethod_Tracked(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := NewSubject(ctx, 0)

	w := new(watcher)
	ObserveMethod(sub, w, (*watcher).See)
	sub.Set(1)
	w.Close()
	sub.Set(2)
	assert.Equal(t, []int{1}, w.seen)
	assert.False(t, sub.Observed())

	other := new(watcher)
	stop := ObserveMethod(sub, other, (*watcher).See)
	sub.Set(3)
	stop()
	sub.Set(4)
	assert.Equal(t, []int{3}, other.seen)
	assert.True(t, other.Registry().Empty())
}

func TestSubject_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sub := NewSubject(ctx, 0)
	var calls int
	sub.Observe(func(int) { calls++ })
	cancel()
	assert.Eventually(t, func() bool {
		return !sub.Observed()
	}, time.Second, 5*time.Millisecond)
	sub.Set(1)
	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, sub.Get())
}
