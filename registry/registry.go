package registry

import (
	"fmt"
	"github.com/saylorsolutions/slots/slogx"
	"github.com/saylorsolutions/slots/slot"
	"github.com/saylorsolutions/slots/syncx"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
)

// Handle identifies a [Registry] in log output.
type Handle uint64

var lastHandle atomic.Uint64

// Connection is one entry in a [Registry].
type Connection struct {
	Binding slot.Binding
	// Counterpart is the registry on the other side of the connection.
	// It's the owning registry itself for untracked targets.
	Counterpart *Registry
	// Invoke is true if the owner should call Binding when it emits.
	// Otherwise, this is a back-reference.
	Invoke bool
}

func (c Connection) matches(key slot.Key, counterpart *Registry) bool {
	return c.Counterpart == counterpart && c.Binding.Key == key
}

type options struct {
	guard sync.Locker
	log   *slog.Logger
}

// Option customizes a [Registry] created with [New].
type Option func(opts *options)

// WithLocker sets the lock policy used to guard the registry.
// A nil locker is the same as [syncx.NoLock].
func WithLocker(mux sync.Locker) Option {
	return func(opts *options) {
		if mux == nil {
			mux = syncx.NoLock()
		}
		opts.guard = mux
	}
}

// WithGate guards the registry with a [syncx.Gate], which allows a [Walk] to be ended on a different goroutine than it started.
func WithGate() Option {
	return func(opts *options) {
		opts.guard = syncx.NewGate(syncx.LocalLock())
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(opts *options) {
		opts.log = log
	}
}

// Registry is the set of connections for an emitter or a tracked object.
// A Registry must be created with [New], and must not be copied by value. Use [Registry.CopyFrom] instead.
type Registry struct {
	handle Handle
	guard  sync.Locker
	log    *slog.Logger
	closed atomic.Bool
	conns  []Connection // oldest first
}

// New creates a [Registry] guarded by a [syncx.LocalLock] unless an [Option] says otherwise.
func New(opts ...Option) *Registry {
	conf := &options{
		guard: syncx.LocalLock(),
	}
	for _, opt := range opts {
		opt(conf)
	}
	r := &Registry{
		handle: Handle(lastHandle.Add(1)),
		guard:  conf.guard,
	}
	r.log = slogx.Deduped(conf.log).With("registry", uint64(r.handle))
	return r
}

func (r *Registry) Handle() Handle {
	return r.handle
}

// Logger returns the logger the registry was created with.
func (r *Registry) Logger() *slog.Logger {
	return r.log
}

// Guard returns the lock policy of this registry.
func (r *Registry) Guard() sync.Locker {
	return r.guard
}

func (r *Registry) String() string {
	return fmt.Sprintf("registry#%d", r.handle)
}

// Closed reports whether [Registry.Close] has been called.
func (r *Registry) Closed() bool {
	return r.closed.Load()
}

func (r *Registry) add(conn Connection) bool {
	return syncx.LockFuncT(r.guard, func() bool {
		if r.closed.Load() {
			return false
		}
		r.conns = append(r.conns, conn)
		return true
	})
}

// Add inserts a connection as the most recent entry.
// Duplicates are allowed, and each one is visited separately.
// The caller is responsible for adding the matching entry to counterpart when counterpart is not this registry.
// Adding to a closed registry does nothing.
func (r *Registry) Add(binding slot.Binding, counterpart *Registry, invoke bool) {
	r.add(Connection{Binding: binding, Counterpart: counterpart, Invoke: invoke})
}

// Remove removes every entry with the given key and counterpart.
// It's not an error if there are none.
func (r *Registry) Remove(key slot.Key, counterpart *Registry) {
	syncx.LockFunc(r.guard, func() {
		r.remove(key, counterpart)
	})
}

func (r *Registry) remove(key slot.Key, counterpart *Registry) {
	idx := slices.IndexFunc(r.conns, func(c Connection) bool {
		return c.matches(key, counterpart)
	})
	if idx < 0 {
		return
	}
	// A walk in progress may still be reading the old slice.
	kept := make([]Connection, idx, len(r.conns)-1)
	copy(kept, r.conns[:idx])
	for _, c := range r.conns[idx+1:] {
		if !c.matches(key, counterpart) {
			kept = append(kept, c)
		}
	}
	r.conns = kept
}

// Clear removes every connection, and removes the matching entries from every counterpart.
func (r *Registry) Clear() {
	r.clear()
}

func (r *Registry) clear() {
	var conns []Connection
	syncx.LockFunc(r.guard, func() {
		conns = r.conns
		r.conns = nil
	})
	for _, c := range conns {
		if c.Counterpart != nil && c.Counterpart != r {
			c.Counterpart.Remove(c.Binding.Key, r)
		}
	}
	if len(conns) > 0 {
		r.log.Debug("Cleared connections", "count", len(conns))
	}
}

// Close clears the registry and prevents further connections.
// It's safe to call more than once.
func (r *Registry) Close() {
	if r.closed.Swap(true) {
		return
	}
	r.clear()
	r.log.Debug("Closed")
}

// Empty reports whether there are no connections.
func (r *Registry) Empty() bool {
	return r.Len() == 0
}

// Len returns the number of connections, including back-references.
func (r *Registry) Len() int {
	return syncx.LockFuncT(r.guard, func() int {
		return len(r.conns)
	})
}

// Connections returns a snapshot of the connections, most recent first.
func (r *Registry) Connections() []Connection {
	return syncx.LockFuncT(r.guard, func() []Connection {
		conns := slices.Clone(r.conns)
		slices.Reverse(conns)
		return conns
	})
}

// CopyFrom duplicates the connections of other into this registry.
//
//   - Entries that point to other itself will point to this registry.
//     Back-references among them are rebound to owner, which should be the object this registry belongs to.
//   - Entries that point to another registry X are kept pointing to X, and X gets a matching entry pointing to this registry.
//     Back-references are rebound to owner, so a copied observer is called in place of the original.
//   - Invoking entries are never rebound.
//
// Existing connections are kept, and the relative order of the copied connections is preserved.
func (r *Registry) CopyFrom(other *Registry, owner any) {
	if other == nil || other == r {
		return
	}
	src := other.Connections()
	slices.Reverse(src)
	var (
		copied  = make([]Connection, 0, len(src))
		mirrors []Connection
	)
	for _, c := range src {
		b := c.Binding
		if !c.Invoke {
			b = b.Rebind(owner)
		}
		switch {
		case c.Counterpart == other || c.Counterpart == nil:
			copied = append(copied, Connection{Binding: b, Counterpart: r, Invoke: c.Invoke})
		case c.Counterpart.Closed():
			continue
		default:
			copied = append(copied, Connection{Binding: b, Counterpart: c.Counterpart, Invoke: c.Invoke})
			mirrors = append(mirrors, Connection{Binding: b, Counterpart: c.Counterpart, Invoke: !c.Invoke})
		}
	}
	if !syncx.LockFuncT(r.guard, func() bool {
		if r.closed.Load() {
			return false
		}
		r.conns = append(r.conns, copied...)
		return true
	}) {
		return
	}
	for _, m := range mirrors {
		far := m.Counterpart
		if !far.add(Connection{Binding: m.Binding, Counterpart: r, Invoke: m.Invoke}) {
			r.Remove(m.Binding.Key, far)
		}
	}
	r.log.Debug("Copied connections", "from", uint64(other.handle), "count", len(copied))
}

func (r *Registry) trackedBy(key slot.Key) *Registry {
	t, ok := key.Receiver().(Trackable)
	if !ok {
		return nil
	}
	other := t.Registry()
	if other == nil || other == r {
		return nil
	}
	return other
}

// Connect adds an invoking entry for binding.
// If the receiver of binding implements [Trackable], then the receiver's registry gets the matching back-reference.
// Connecting to a closed registry, or connecting a receiver with a closed registry, does nothing.
func (r *Registry) Connect(binding slot.Binding) {
	other := r.trackedBy(binding.Key)
	if other == nil {
		if r.add(Connection{Binding: binding, Counterpart: r, Invoke: true}) {
			r.log.Debug("Connected", "key", binding.Key.String())
		}
		return
	}
	if !other.add(Connection{Binding: binding, Counterpart: r, Invoke: false}) {
		r.log.Debug("Target registry is closed", "key", binding.Key.String(), "target", uint64(other.handle))
		return
	}
	if !r.add(Connection{Binding: binding, Counterpart: other, Invoke: true}) {
		other.Remove(binding.Key, r)
		return
	}
	// other may have been cleared between the two adds.
	if other.Closed() {
		r.Remove(binding.Key, other)
		return
	}
	r.log.Debug("Connected tracked target", "key", binding.Key.String(), "target", uint64(other.handle))
}

// Disconnect removes the entries for key that were made with [Registry.Connect].
func (r *Registry) Disconnect(key slot.Key) {
	other := r.trackedBy(key)
	if other == nil {
		r.Remove(key, r)
		r.log.Debug("Disconnected", "key", key.String())
		return
	}
	r.Remove(key, other)
	other.Remove(key, r)
	r.log.Debug("Disconnected tracked target", "key", key.String(), "target", uint64(other.handle))
}
