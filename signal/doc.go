/*
Package signal provides synchronous, typed emitters.

An [Emitter] calls every connected target with the same arguments, most recently connected first.
Its results can be combined with [Accumulate], [AccumulateOp], [Aggregate], [AggregateSlice], or [Collect].
A [Signal] is an emitter whose targets return nothing, so it can only [Signal.Emit].

The whole emission runs on the calling goroutine while holding the emitter's guard.
Targets that connect or disconnect on the emitter that's calling them need a reentrant guard, like:

	sig := signal.NewSignal[int](registry.WithLocker(syncx.ReentrantLock()))

Emitters are [registry.Trackable], so one can be connected to another with ConnectObject.
*/
package signal
