package signal

// Addable is the set of types that can be combined with +.
type Addable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128 |
		~string
}

// Accumulate emits args and adds every result to init.
func Accumulate[A any, R Addable](e *Emitter[A, R], init R, args A) R {
	each(e.reg, args, func(result R) {
		init += result
	})
	return init
}

// AccumulateOp emits args and folds every result into init with op, as in init = op(init, result).
func AccumulateOp[A, R, T any](e *Emitter[A, R], init T, op func(T, R) T, args A) T {
	each(e.reg, args, func(result R) {
		init = op(init, result)
	})
	return init
}

// Aggregate emits args and inserts every result into a container created with newC.
// Results are inserted in the order the targets were called.
//
//	set := signal.Aggregate(e, func() map[int]bool { return map[int]bool{} }, func(m map[int]bool, n int) map[int]bool {
//		m[n] = true
//		return m
//	}, args)
func Aggregate[C, A, R any](e *Emitter[A, R], newC func() C, insert func(C, R) C, args A) C {
	return AccumulateOp(e, newC(), insert, args)
}

// AggregateSlice emits args and returns the results in the order the targets were called.
func AggregateSlice[A, R any](e *Emitter[A, R], args A) []R {
	var results []R
	each(e.reg, args, func(result R) {
		results = append(results, result)
	})
	return results
}

// Collect emits args and passes every result to collector.
func Collect[A, R any](e *Emitter[A, R], collector func(R), args A) {
	each(e.reg, args, collector)
}
