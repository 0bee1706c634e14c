/*
Package assert checks invariants at runtime and gathers errors from consistency checks.

[That] panics with a [*Violation] when a condition that only misuse can break doesn't hold.
Build with the 'noassert' tag to compile these checks out.

A [Collector] reports every problem found by a check at once, instead of stopping at the first.
*/
package assert
