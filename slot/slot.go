package slot

import (
	"fmt"
	"reflect"
)

// Void is the result type of targets that return nothing.
type Void = struct{}

// Key is the comparable identity of a bound callable.
// The receiver is nil for free functions.
type Key struct {
	recv any
	fn   uintptr
}

// Receiver returns the object the callable is bound to, or nil.
func (k Key) Receiver() any {
	return k.recv
}

func (k Key) String() string {
	if k.recv == nil {
		return fmt.Sprintf("func@%#x", k.fn)
	}
	return fmt.Sprintf("%T(%p)@%#x", k.recv, k.recv, k.fn)
}

// Binding is a [Key] together with the function it identifies.
// It's the untyped form of [Target] that registries store.
type Binding struct {
	Key    Key
	target any
	rebind func(recv any) (Binding, bool)
}

// Rebind returns a copy of the binding that calls the same function on recv instead of the original receiver.
// Bindings without a receiver, or with a receiver of a different type than recv, are returned unchanged.
func (b Binding) Rebind(recv any) Binding {
	if b.Key.recv == nil || b.rebind == nil || recv == nil {
		return b
	}
	if rebound, ok := b.rebind(recv); ok {
		return rebound
	}
	return b
}

// Invoke calls the bound function with args.
// It panics if the binding was not created for the signature func(A) R.
func Invoke[A, R any](b Binding, args A) R {
	fn, ok := b.target.(func(A) R)
	if !ok {
		panic(fmt.Sprintf("slot: binding %s has type %T, not %T", b.Key, b.target, fn))
	}
	return fn(args)
}

// Callable is an object that can be connected as a target by pointer.
type Callable[A, R any] interface {
	Call(args A) R
}

// VoidCallable is a [Callable] that returns nothing.
// Emitters implement this so they can be chained.
type VoidCallable[A any] interface {
	Call(args A)
}

// Target is a typed [Binding] for a callable with the signature func(A) R.
type Target[A, R any] struct {
	binding Binding
}

// Binding returns the untyped form of the target.
func (t Target[A, R]) Binding() Binding {
	return t.binding
}

// Key returns the identity of the target.
func (t Target[A, R]) Key() Key {
	return t.binding.Key
}

func codePointer(fn any) uintptr {
	val := reflect.ValueOf(fn)
	if val.Kind() != reflect.Func || val.IsNil() {
		panic(fmt.Sprintf("slot: expected a non-nil function, got %T", fn))
	}
	return val.Pointer()
}

func mustPointer(recv any) {
	val := reflect.ValueOf(recv)
	if val.Kind() != reflect.Pointer || val.IsNil() {
		panic(fmt.Sprintf("slot: receiver must be a non-nil pointer, got %T", recv))
	}
}

// Func binds a top-level function.
func Func[A, R any](fn func(A) R) Target[A, R] {
	return Target[A, R]{binding: Binding{
		Key:    Key{fn: codePointer(fn)},
		target: fn,
	}}
}

// VoidFunc is [Func] for a function that returns nothing.
func VoidFunc[A any](fn func(A)) Target[A, Void] {
	return Target[A, Void]{binding: Binding{
		Key:    Key{fn: codePointer(fn)},
		target: discard(fn),
	}}
}

// Ref binds the func value stored at fn.
// The identity is the address of the variable, so connecting and disconnecting must use the same pointer.
func Ref[A, R any](fn *func(A) R) Target[A, R] {
	mustPointer(fn)
	call := *fn
	return Target[A, R]{binding: Binding{
		Key:    Key{recv: fn},
		target: call,
	}}
}

// VoidRef is [Ref] for a function that returns nothing.
func VoidRef[A any](fn *func(A)) Target[A, Void] {
	mustPointer(fn)
	return Target[A, Void]{binding: Binding{
		Key:    Key{recv: fn},
		target: discard(*fn),
	}}
}

// Method binds the method expression m to obj, e.g. Method(counter, (*Counter).Add).
// If obj implements registry.Trackable, then the connection is tracked.
func Method[T, A, R any](obj *T, m func(*T, A) R) Target[A, R] {
	mustPointer(obj)
	ptr := codePointer(m)
	var bind func(recv *T) Binding
	bind = func(recv *T) Binding {
		return Binding{
			Key: Key{recv: recv, fn: ptr},
			target: func(args A) R {
				return m(recv, args)
			},
			rebind: func(other any) (Binding, bool) {
				o, ok := other.(*T)
				if !ok || o == nil {
					return Binding{}, false
				}
				return bind(o), true
			},
		}
	}
	return Target[A, R]{binding: bind(obj)}
}

// VoidMethod is [Method] for a method that returns nothing.
func VoidMethod[T, A any](obj *T, m func(*T, A)) Target[A, Void] {
	mustPointer(obj)
	ptr := codePointer(m)
	var bind func(recv *T) Binding
	bind = func(recv *T) Binding {
		return Binding{
			Key: Key{recv: recv, fn: ptr},
			target: func(args A) Void {
				m(recv, args)
				return Void{}
			},
			rebind: func(other any) (Binding, bool) {
				o, ok := other.(*T)
				if !ok || o == nil {
					return Binding{}, false
				}
				return bind(o), true
			},
		}
	}
	return Target[A, Void]{binding: bind(obj)}
}

// Object binds a pointer to a [Callable].
func Object[A, R any](obj Callable[A, R]) Target[A, R] {
	mustPointer(obj)
	return Target[A, R]{binding: objectBinding(obj)}
}

func objectBinding[A, R any](obj Callable[A, R]) Binding {
	return Binding{
		Key:    Key{recv: obj},
		target: obj.Call,
		rebind: func(other any) (Binding, bool) {
			o, ok := other.(Callable[A, R])
			if !ok {
				return Binding{}, false
			}
			return objectBinding(o), true
		},
	}
}

// VoidObject binds a pointer to a [VoidCallable].
// This is how one emitter is chained into another.
func VoidObject[A any](obj VoidCallable[A]) Target[A, Void] {
	mustPointer(obj)
	return Target[A, Void]{binding: voidObjectBinding(obj)}
}

func voidObjectBinding[A any](obj VoidCallable[A]) Binding {
	return Binding{
		Key:    Key{recv: obj},
		target: discard(obj.Call),
		rebind: func(other any) (Binding, bool) {
			o, ok := other.(VoidCallable[A])
			if !ok {
				return Binding{}, false
			}
			return voidObjectBinding(o), true
		},
	}
}

func discard[A any](fn func(A)) func(A) Void {
	return func(args A) Void {
		fn(args)
		return Void{}
	}
}
