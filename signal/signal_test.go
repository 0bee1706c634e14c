package signal

import (
	"github.com/saylorsolutions/slots/registry"
	"github.com/saylorsolutions/slots/slot"
	"github.com/saylorsolutions/slots/syncx"
	"github.com/stretchr/testify/assert"
	"sync"
	"sync/atomic"
	"testing"
)

func TestSignal_Emit(t *testing.T) {
	var (
		calls []string
		ref   = func(s string) { calls = append(calls, "ref:"+s) }
		acc   = new(accumulator)
	)
	sig := NewSignal[string]()
	sig.ConnectRef(&ref).ConnectFunc(func(s string) {
		calls = append(calls, "func:"+s)
	})
	sig.Emit("a")
	assert.Equal(t, []string{"func:a", "ref:a"}, calls)

	sig.DisconnectRef(&ref)
	counts := NewSignal[int]()
	counts.Connect(slot.VoidMethod(acc, (*accumulator).Inc))
	counts.Emit(3)
	counts.Disconnect(slot.VoidMethod(acc, (*accumulator).Inc))
	counts.Emit(3)
	assert.Equal(t, 3, acc.total)
	assert.True(t, counts.Empty())
}

func TestSignal_Chained(t *testing.T) {
	var total int
	inner := NewSignal[int]()
	inner.ConnectFunc(func(n int) { total += n })
	results := New[int, int]()
	results.ConnectFunc(func(n int) int {
		total += 10 * n
		return 0
	})

	outer := NewSignal[int]()
	outer.ConnectObject(inner).ConnectObject(results)
	assert.NoError(t, registry.Verify(outer.Registry(), inner.Registry(), results.Registry()))
	outer.Emit(1)
	assert.Equal(t, 11, total)

	inner.Close()
	assert.Equal(t, 1, outer.Registry().Len(), "Closing a chained signal disconnects it")
	outer.Emit(1)
	assert.Equal(t, 21, total)

	outer.DisconnectObject(results)
	assert.True(t, outer.Empty())
	assert.True(t, results.Empty())
}

func TestSignal_CloneChained(t *testing.T) {
	var total int
	inner := NewSignal[int]()
	inner.ConnectFunc(func(n int) { total += n })
	outer := NewSignal[int]()
	outer.ConnectObject(inner)

	clone := inner.Clone()
	assert.NoError(t, registry.Verify(outer.Registry(), inner.Registry(), clone.Registry()))
	outer.Emit(1)
	assert.Equal(t, 2, total, "The clone is chained in its own right")
	clone.Emit(1)
	assert.Equal(t, 3, total)
}

func TestSignal_Concurrent(t *testing.T) {
	var (
		calls atomic.Int64
		wg    sync.WaitGroup
	)
	sig := NewSignal[int](registry.WithLocker(syncx.LocalLock()))
	for i := 0; i < 10; i++ {
		acc := new(accumulator)
		sig.Connect(slot.VoidMethod(acc, (*accumulator).Inc))
		sig.ConnectFunc(func(int) { calls.Add(1) })
	}
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sig.Emit(1)
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(20*10), calls.Load())
}

func TestSignal_GlobalLock(t *testing.T) {
	var total int
	inner := NewSignal[int](registry.WithLocker(syncx.GlobalLock()))
	inner.ConnectFunc(func(n int) { total += n })
	outer := NewSignal[int](registry.WithLocker(syncx.GlobalLock()))
	outer.ConnectObject(inner)
	outer.Emit(4)
	assert.Equal(t, 4, total)
	inner.Close()
	assert.True(t, outer.Empty())
}
