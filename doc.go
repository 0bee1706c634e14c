/*
Package slots provides typed signals and slots for connecting emitters to the functions and objects that react to them.

The packages build on each other:

  - slot creates comparable identities for functions, methods, and objects, so a connection can be found again to disconnect it.
  - registry keeps the connections of one emitter or tracked object, and keeps both sides of a tracked connection consistent through connect, disconnect, copy, and close.
  - signal has the synchronous [signal.Emitter] and [signal.Signal], along with ways to combine target results.
  - async has emitters that call targets on another goroutine and return a future for the result.
  - syncx has the lock policies, the gate, futures, and dispatchers used by the rest.

The patterns/observer package shows how these fit together as an observable value.
*/
package slots
