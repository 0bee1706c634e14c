package observer

import (
	"context"
	"github.com/saylorsolutions/slots/registry"
	"github.com/saylorsolutions/slots/signal"
	"github.com/saylorsolutions/slots/slot"
	"github.com/saylorsolutions/slots/syncx"
	"sync"
)

// Observer receives a new value from a [Subject] when it changes.
type Observer[T any] func(newVal T)

// Subject is a value that may be observed for changes.
// Observers are notified on the goroutine that calls [Subject.Set], most recent observer first.
type Subject[T any] struct {
	mux     sync.RWMutex
	value   T
	setMux  sync.Locker // serializes Set, held while observers are notified
	changes *signal.Signal[T]
}

// NewSubject creates a [Subject] with a context for cancellation.
// Once the context is cancelled, the [Subject] will no longer propagate changes, and every observer is disconnected.
func NewSubject[T any](ctx context.Context, val T) *Subject[T] {
	sub := &Subject[T]{
		value:  val,
		setMux: syncx.ReentrantLock(),
		// Observers may stop observing while being notified.
		changes: signal.NewSignal[T](registry.WithLocker(syncx.ReentrantLock())),
	}
	go func() {
		<-ctx.Done()
		sub.changes.Close()
	}()
	return sub
}

func (s *Subject[T]) Get() T {
	return syncx.RLockFuncT(&s.mux, func() T {
		return s.value
	})
}

// Set stores newVal and notifies every observer.
// Concurrent calls are serialized, so the last value observed is the value [Subject.Get] returns.
// Observers may call Get while being notified.
func (s *Subject[T]) Set(newVal T) {
	syncx.LockFunc(s.setMux, func() {
		syncx.LockFunc(&s.mux, func() {
			s.value = newVal
		})
		s.changes.Emit(newVal)
	})
}

// Observe calls obs with every new value until the returned function is called.
func (s *Subject[T]) Observe(obs Observer[T]) (stop func()) {
	ref := new(func(T))
	*ref = obs
	s.changes.ConnectRef(ref)
	return func() {
		s.changes.DisconnectRef(ref)
	}
}

// ObserveMethod calls method on obs with every new value.
// If obs is [registry.Trackable], then closing its registry stops the observation.
func ObserveMethod[T, O any](s *Subject[T], obs *O, method func(*O, T)) (stop func()) {
	target := slot.VoidMethod(obs, method)
	s.changes.Connect(target)
	return func() {
		s.changes.Disconnect(target)
	}
}

// Observed reports whether anything is observing the [Subject].
func (s *Subject[T]) Observed() bool {
	return !s.changes.Empty()
}
