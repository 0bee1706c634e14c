package signal

import (
	"github.com/saylorsolutions/slots/registry"
	"github.com/saylorsolutions/slots/slot"
	"github.com/saylorsolutions/slots/syncx"
)

// Signal is an [Emitter] for targets that return nothing.
// It's a separate type so that results can't be combined, since there aren't any.
type Signal[A any] struct {
	reg *registry.Registry
}

// NewSignal creates an empty [Signal].
func NewSignal[A any](opts ...registry.Option) *Signal[A] {
	return &Signal[A]{reg: registry.New(opts...)}
}

func (s *Signal[A]) Registry() *registry.Registry {
	return s.reg
}

func (s *Signal[A]) Connect(target slot.Target[A, slot.Void]) *Signal[A] {
	s.reg.Connect(target.Binding())
	return s
}

func (s *Signal[A]) Disconnect(target slot.Target[A, slot.Void]) *Signal[A] {
	s.reg.Disconnect(target.Key())
	return s
}

func (s *Signal[A]) ConnectFunc(fn func(A)) *Signal[A] {
	return s.Connect(slot.VoidFunc(fn))
}

func (s *Signal[A]) DisconnectFunc(fn func(A)) *Signal[A] {
	return s.Disconnect(slot.VoidFunc(fn))
}

func (s *Signal[A]) ConnectRef(fn *func(A)) *Signal[A] {
	return s.Connect(slot.VoidRef(fn))
}

func (s *Signal[A]) DisconnectRef(fn *func(A)) *Signal[A] {
	return s.Disconnect(slot.VoidRef(fn))
}

// ConnectObject connects a pointer to a [slot.VoidCallable], which includes other emitters.
// The connection is tracked if obj is [registry.Trackable].
func (s *Signal[A]) ConnectObject(obj slot.VoidCallable[A]) *Signal[A] {
	return s.Connect(slot.VoidObject(obj))
}

func (s *Signal[A]) DisconnectObject(obj slot.VoidCallable[A]) *Signal[A] {
	return s.Disconnect(slot.VoidObject(obj))
}

func (s *Signal[A]) Emit(args A) {
	each(s.reg, args, func(slot.Void) {})
}

// Call is the same as [Signal.Emit], which allows a Signal to be chained into another.
func (s *Signal[A]) Call(args A) {
	s.Emit(args)
}

func (s *Signal[A]) Empty() bool {
	return s.reg.Empty()
}

// Clone creates a new Signal with the same targets and the same lock policy.
func (s *Signal[A]) Clone() *Signal[A] {
	clone := &Signal[A]{reg: registry.New(registry.WithLocker(syncx.LockLike(s.reg.Guard())), registry.WithLogger(s.reg.Logger()))}
	clone.reg.CopyFrom(s.reg, clone)
	return clone
}

func (s *Signal[A]) Close() {
	s.reg.Close()
}
