//go:build noassert

package assert

const Enabled = false

func That(bool, string, ...any) {}
