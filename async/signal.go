package async

import (
	"github.com/saylorsolutions/slots/registry"
	"github.com/saylorsolutions/slots/slot"
	"github.com/saylorsolutions/slots/syncx"
)

// Signal is an asynchronous emitter for targets that return nothing.
type Signal[A any] struct {
	e *Emitter[A, slot.Void]
}

func NewSignal[A any](opts ...registry.Option) *Signal[A] {
	return &Signal[A]{e: New[A, slot.Void](opts...)}
}

func NewSignalWithDispatcher[A any](dispatch syncx.Dispatcher, opts ...registry.Option) *Signal[A] {
	return &Signal[A]{e: NewWithDispatcher[A, slot.Void](dispatch, opts...)}
}

func (s *Signal[A]) Registry() *registry.Registry {
	return s.e.reg
}

func (s *Signal[A]) Connect(target slot.Target[A, slot.Void]) *Signal[A] {
	s.e.Connect(target)
	return s
}

func (s *Signal[A]) Disconnect(target slot.Target[A, slot.Void]) *Signal[A] {
	s.e.Disconnect(target)
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
func (s *Signal[A]) ConnectObject(obj slot.VoidCallable[A]) *Signal[A] {
	return s.Connect(slot.VoidObject(obj))
}

func (s *Signal[A]) DisconnectObject(obj slot.VoidCallable[A]) *Signal[A] {
	return s.Disconnect(slot.VoidObject(obj))
}

func (s *Signal[A]) Emit(args A) syncx.FutureErr[slot.Void] {
	return s.e.Emit(args)
}

func (s *Signal[A]) Call(args A) {
	s.e.Emit(args)
}

func (s *Signal[A]) Empty() bool {
	return s.e.Empty()
}

func (s *Signal[A]) Clone() *Signal[A] {
	clone := &Signal[A]{e: &Emitter[A, slot.Void]{
		reg:      registry.New(registry.WithGate(), registry.WithLogger(s.e.reg.Logger())),
		dispatch: s.e.dispatch,
	}}
	clone.e.reg.CopyFrom(s.e.reg, clone)
	return clone
}

func (s *Signal[A]) Close() {
	s.e.Close()
}
