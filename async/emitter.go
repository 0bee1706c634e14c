package async

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/slots/registry"
	"github.com/saylorsolutions/slots/slot"
	"github.com/saylorsolutions/slots/syncx"
	"slices"
)

var (
	ErrTargetPanic = errors.New("target panicked")
	ErrClosed      = errors.New("emitter closed")
)

// Emitter calls connected targets with the signature func(A) R on another goroutine.
type Emitter[A, R any] struct {
	reg      *registry.Registry
	dispatch syncx.Dispatcher
}

// New creates an [Emitter] that starts a new goroutine for each emission.
// The registry is always guarded by a [syncx.Gate], so a lock policy set with [registry.WithLocker] is ignored.
func New[A, R any](opts ...registry.Option) *Emitter[A, R] {
	return NewWithDispatcher[A, R](syncx.GoDispatcher(), opts...)
}

// NewWithDispatcher creates an [Emitter] that dispatches emissions with dispatch.
func NewWithDispatcher[A, R any](dispatch syncx.Dispatcher, opts ...registry.Option) *Emitter[A, R] {
	if dispatch == nil {
		panic("nil dispatcher")
	}
	return &Emitter[A, R]{
		reg:      registry.New(append(slices.Clip(opts), registry.WithGate())...),
		dispatch: dispatch,
	}
}

func (e *Emitter[A, R]) Registry() *registry.Registry {
	return e.reg
}

// Connect waits for any in-flight emission before adding target.
func (e *Emitter[A, R]) Connect(target slot.Target[A, R]) *Emitter[A, R] {
	e.reg.Connect(target.Binding())
	return e
}

// Disconnect waits for any in-flight emission before removing target.
// An emission that's already calling target is not interrupted.
func (e *Emitter[A, R]) Disconnect(target slot.Target[A, R]) *Emitter[A, R] {
	e.reg.Disconnect(target.Key())
	return e
}

func (e *Emitter[A, R]) ConnectFunc(fn func(A) R) *Emitter[A, R] {
	return e.Connect(slot.Func(fn))
}

func (e *Emitter[A, R]) DisconnectFunc(fn func(A) R) *Emitter[A, R] {
	return e.Disconnect(slot.Func(fn))
}

func (e *Emitter[A, R]) ConnectRef(fn *func(A) R) *Emitter[A, R] {
	return e.Connect(slot.Ref(fn))
}

func (e *Emitter[A, R]) DisconnectRef(fn *func(A) R) *Emitter[A, R] {
	return e.Disconnect(slot.Ref(fn))
}

func (e *Emitter[A, R]) ConnectObject(obj slot.Callable[A, R]) *Emitter[A, R] {
	return e.Connect(slot.Object(obj))
}

func (e *Emitter[A, R]) DisconnectObject(obj slot.Callable[A, R]) *Emitter[A, R] {
	return e.Disconnect(slot.Object(obj))
}

// Emit calls every target and discards the results.
// The returned future resolves once every target has been called.
func (e *Emitter[A, R]) Emit(args A) syncx.FutureErr[slot.Void] {
	return run(e, slot.Void{}, func(v slot.Void, _ R) slot.Void { return v }, args)
}

// Call starts an emission without waiting for it, which allows an Emitter to be chained into a signal.
func (e *Emitter[A, R]) Call(args A) {
	e.Emit(args)
}

// Empty waits for any in-flight emission before checking for connections.
func (e *Emitter[A, R]) Empty() bool {
	return e.reg.Empty()
}

// Clone creates a new Emitter with the same targets and dispatcher.
func (e *Emitter[A, R]) Clone() *Emitter[A, R] {
	clone := &Emitter[A, R]{
		reg:      registry.New(registry.WithGate(), registry.WithLogger(e.reg.Logger())),
		dispatch: e.dispatch,
	}
	clone.reg.CopyFrom(e.reg, clone)
	return clone
}

// Close waits for any in-flight emission, then disconnects everything.
// Later emissions resolve with [ErrClosed].
func (e *Emitter[A, R]) Close() {
	e.reg.Close()
}

func run[A, R, T any](e *Emitter[A, R], init T, fold func(T, R) T, args A) syncx.FutureErr[T] {
	var zero T
	if e.reg.Closed() {
		return syncx.StaticFutureErr(zero, ErrClosed)
	}
	walk := e.reg.Begin()
	// Close may have taken the gate first.
	if e.reg.Closed() {
		walk.End()
		return syncx.StaticFutureErr(zero, ErrClosed)
	}
	future := syncx.NewFutureErr[T]()
	err := e.dispatch.Dispatch(func() {
		var (
			result T
			err    error
		)
		defer func() {
			future.ResolveErr(result, err)
		}()
		defer walk.End()
		defer func() {
			if r := recover(); r != nil {
				result = zero
				err = fmt.Errorf("%w: %v", ErrTargetPanic, r)
				e.reg.Logger().Debug("Recovered from panicking target", "error", err)
			}
		}()
		result = init
		for b := range walk.Targets() {
			result = fold(result, slot.Invoke[A, R](b, args))
		}
	})
	if err != nil {
		walk.End()
		future.ResolveErr(zero, err)
	}
	return future
}
