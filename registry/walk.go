package registry

import (
	"github.com/saylorsolutions/slots/slot"
	"iter"
	"sync"
)

// Walk is a view of the invoking connections of a [Registry], taken while holding its guard.
// The guard stays held until [Walk.End] is called.
type Walk struct {
	conns []Connection
	end   sync.Once
	guard sync.Locker
}

// Begin locks the registry and returns a [Walk] over its current targets.
// [Walk.End] must be called exactly once, and may be called on another goroutine if the registry was created [WithGate].
func (r *Registry) Begin() *Walk {
	r.guard.Lock()
	w := &Walk{guard: r.guard}
	if !r.closed.Load() {
		w.conns = r.conns
	}
	return w
}

// Targets iterates the bindings to call, most recently connected first.
func (w *Walk) Targets() iter.Seq[slot.Binding] {
	return func(yield func(slot.Binding) bool) {
		for i := len(w.conns) - 1; i >= 0; i-- {
			if !w.conns[i].Invoke {
				continue
			}
			if !yield(w.conns[i].Binding) {
				return
			}
		}
	}
}

// End releases the registry's guard.
func (w *Walk) End() {
	w.end.Do(w.guard.Unlock)
}
