/*
Package registry maintains the connections between an emitter and the targets it calls.

A [Registry] holds an ordered list of [Connection].
A connection either says "call this target when the owner emits" (Invoke is true), or it's a back-reference that only exists so the far side can be told to drop its entry when this side goes away.

# Tracking

When a target's receiver implements [Trackable], the connection is tracked.
The emitter's registry gets the invoking entry, and the receiver's registry gets the back-reference.
Closing either registry removes both sides, so neither side needs to remember to disconnect.
Embed [Tracker] in a struct to make it trackable.

Untracked targets (free functions, func variables, objects that don't implement [Trackable]) only get an entry on the emitter's side, pointing back at the emitter's own registry.
These must be disconnected explicitly when they're no longer valid.

# Locking

Every registry has a guard, which is a [sync.Locker] chosen with [WithLocker] or [WithGate].
The guard is held for every mutation and for the whole of a [Walk].
Calls to a counterpart registry are never made while holding the local guard, so a process-wide lock like [syncx.GlobalLock] can't deadlock with itself.

A target that mutates the registry that's currently calling it needs a reentrant guard like [syncx.ReentrantLock].
Mutations during a walk don't change what the walk visits.
*/
package registry
