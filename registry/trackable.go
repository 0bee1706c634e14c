package registry

import "sync"

// Trackable is implemented by objects that have their own [Registry].
// Connections to a Trackable target are removed when its registry is closed.
type Trackable interface {
	Registry() *Registry
}

// Tracker can be embedded in a struct to make pointers to it [Trackable].
// The zero value is ready to use, and creates its registry when it's first needed.
//
//	type Observer struct {
//		registry.Tracker
//		total int
//	}
//
// A Tracker must not be copied after first use.
type Tracker struct {
	init sync.Once
	reg  *Registry
	opts []Option
}

// NewTracker creates a [Tracker] whose registry is created with opts.
func NewTracker(opts ...Option) Tracker {
	return Tracker{opts: opts}
}

func (t *Tracker) Registry() *Registry {
	t.init.Do(func() {
		t.reg = New(t.opts...)
	})
	return t.reg
}

// Close disconnects the owner from every emitter it's connected to.
func (t *Tracker) Close() {
	t.Registry().Close()
}

// CopyFrom subscribes owner everywhere other is subscribed.
// The owner should be the object that embeds this Tracker.
func (t *Tracker) CopyFrom(other Trackable, owner any) {
	t.Registry().CopyFrom(other.Registry(), owner)
}
