package assert

import (
	"errors"
	"fmt"
)

var ErrViolation = errors.New("assertion failed")

// Violation is the panic value of a failed [That].
type Violation struct {
	Msg  string
	File string
	Line int
}

func (v *Violation) Error() string {
	if len(v.File) == 0 {
		return fmt.Sprintf("%s: %s", ErrViolation, v.Msg)
	}
	return fmt.Sprintf("%s: %s at %s:%d", ErrViolation, v.Msg, v.File, v.Line)
}

func (v *Violation) Unwrap() error {
	return ErrViolation
}
