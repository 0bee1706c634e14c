//go:build !noassert

package assert

import (
	"fmt"
	"runtime"
)

// Enabled is true unless the module is built with the 'noassert' tag.
const Enabled = true

// That panics with a [*Violation] if cond is false.
// It's used to guard invariants that can only be broken by misuse, like releasing a gate that wasn't acquired.
func That(cond bool, format string, args ...any) {
	if cond {
		return
	}
	v := &Violation{Msg: fmt.Sprintf(format, args...)}
	if _, file, line, ok := runtime.Caller(1); ok {
		v.File, v.Line = file, line
	}
	panic(v)
}
