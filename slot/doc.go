/*
Package slot produces comparable identities for callables so they can be connected to and disconnected from an emitter.

Go func values are not comparable, so a [Target] pairs the callable with a [Key] made from the receiver (if any) and the code pointer of the function.
Two targets built from the same function and receiver have equal keys, which is what allows a later disconnect to find the earlier connect.

There are four ways to bind a callable:

  - [Func] binds a top-level function. All closures created from the same function literal share a code pointer, so use [Ref] for closures.
  - [Ref] binds a func value by the address of the variable holding it.
  - [Method] binds a method expression, like (*Counter).Add, together with its receiver.
  - [Object] binds a pointer to a value implementing [Callable].

Each has a Void variant for targets that return nothing.
*/
package slot
