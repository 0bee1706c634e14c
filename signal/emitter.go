package signal

import (
	"github.com/saylorsolutions/slots/registry"
	"github.com/saylorsolutions/slots/slot"
	"github.com/saylorsolutions/slots/syncx"
)

// Emitter calls connected targets with the signature func(A) R.
// Multiple arguments can be passed with a struct.
type Emitter[A, R any] struct {
	reg *registry.Registry
}

// New creates an empty [Emitter].
func New[A, R any](opts ...registry.Option) *Emitter[A, R] {
	return &Emitter[A, R]{reg: registry.New(opts...)}
}

func (e *Emitter[A, R]) Registry() *registry.Registry {
	return e.reg
}

func (e *Emitter[A, R]) Connect(target slot.Target[A, R]) *Emitter[A, R] {
	e.reg.Connect(target.Binding())
	return e
}

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

// ConnectRef connects the func stored at fn. Disconnect it with the same pointer.
func (e *Emitter[A, R]) ConnectRef(fn *func(A) R) *Emitter[A, R] {
	return e.Connect(slot.Ref(fn))
}

func (e *Emitter[A, R]) DisconnectRef(fn *func(A) R) *Emitter[A, R] {
	return e.Disconnect(slot.Ref(fn))
}

// ConnectObject connects a pointer to a [slot.Callable].
// The connection is tracked if obj is [registry.Trackable].
func (e *Emitter[A, R]) ConnectObject(obj slot.Callable[A, R]) *Emitter[A, R] {
	return e.Connect(slot.Object(obj))
}

func (e *Emitter[A, R]) DisconnectObject(obj slot.Callable[A, R]) *Emitter[A, R] {
	return e.Disconnect(slot.Object(obj))
}

// Emit calls every target and discards the results.
func (e *Emitter[A, R]) Emit(args A) {
	each(e.reg, args, func(R) {})
}

// Call is the same as [Emitter.Emit], which allows an Emitter to be chained into a [Signal].
func (e *Emitter[A, R]) Call(args A) {
	e.Emit(args)
}

// Empty reports whether there are no targets or back-references.
func (e *Emitter[A, R]) Empty() bool {
	return e.reg.Empty()
}

// Clone creates a new Emitter with the same targets and the same lock policy.
// If this Emitter is chained into another, then so is the clone.
func (e *Emitter[A, R]) Clone() *Emitter[A, R] {
	clone := &Emitter[A, R]{reg: registry.New(registry.WithLocker(syncx.LockLike(e.reg.Guard())), registry.WithLogger(e.reg.Logger()))}
	clone.reg.CopyFrom(e.reg, clone)
	return clone
}

// Close disconnects every target, and disconnects this Emitter from anything it's chained into.
func (e *Emitter[A, R]) Close() {
	e.reg.Close()
}

func each[A, R any](reg *registry.Registry, args A, fn func(R)) {
	walk := reg.Begin()
	defer walk.End()
	for b := range walk.Targets() {
		fn(slot.Invoke[A, R](b, args))
	}
}
