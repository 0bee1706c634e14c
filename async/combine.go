package async

import (
	"github.com/saylorsolutions/slots/signal"
	"github.com/saylorsolutions/slots/slot"
	"github.com/saylorsolutions/slots/syncx"
)

// Accumulate emits args and resolves with the sum of init and every result.
func Accumulate[A any, R signal.Addable](e *Emitter[A, R], init R, args A) syncx.FutureErr[R] {
	return run(e, init, func(total, result R) R {
		return total + result
	}, args)
}

// AccumulateOp emits args and resolves with every result folded into init with op.
func AccumulateOp[A, R, T any](e *Emitter[A, R], init T, op func(T, R) T, args A) syncx.FutureErr[T] {
	return run(e, init, op, args)
}

// Aggregate emits args and resolves with a container created by newC, holding every result in the order the targets were called.
// The container is created on the calling goroutine.
func Aggregate[C, A, R any](e *Emitter[A, R], newC func() C, insert func(C, R) C, args A) syncx.FutureErr[C] {
	return run(e, newC(), insert, args)
}

func AggregateSlice[A, R any](e *Emitter[A, R], args A) syncx.FutureErr[[]R] {
	return run(e, []R(nil), func(results []R, result R) []R {
		return append(results, result)
	}, args)
}

// Collect emits args and passes every result to collector, which is called on the emitting goroutine.
func Collect[A, R any](e *Emitter[A, R], collector func(R), args A) syncx.FutureErr[slot.Void] {
	return run(e, slot.Void{}, func(v slot.Void, result R) slot.Void {
		collector(result)
		return v
	}, args)
}
