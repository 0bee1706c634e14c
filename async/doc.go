/*
Package async provides emitters that call their targets on another goroutine.

Every emission returns a [syncx.FutureErr] right away.
The emitter's registry is guarded by a [syncx.Gate], which is acquired on the calling goroutine and released by the goroutine that calls the targets once it's done.
This means that connecting, disconnecting, or emitting again on the same emitter waits for the in-flight emission to finish, so two emissions never see a different set of targets part way through.
A target must not connect, disconnect, or emit on the emitter that's calling it, since that would wait on itself.

A target that panics doesn't take down the process.
The panic is recovered and reported through the future as an error wrapping [ErrTargetPanic].

Emissions are dispatched with a [syncx.Dispatcher], which is a new goroutine per emission by default.
Use [NewWithDispatcher] with a [syncx.PoolDispatcher] to bound the number of goroutines.
*/
package async
