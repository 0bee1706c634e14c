//go:build !noassert

package assert_test

import (
	"errors"
	"github.com/saylorsolutions/slots/assert"
	testify "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestThat(t *testing.T) {
	testify.NotPanics(t, func() {
		assert.That(true, "never shown")
	})

	var recovered any
	func() {
		defer func() {
			recovered = recover()
		}()
		assert.That(1 > 2, "expected %d > %d", 1, 2)
	}()
	v, ok := recovered.(*assert.Violation)
	require.True(t, ok, "Panic value should be a violation")
	testify.Equal(t, "expected 1 > 2", v.Msg)
	testify.Contains(t, v.File, "assert_test.go")
	testify.Positive(t, v.Line)
	testify.True(t, errors.Is(v, assert.ErrViolation))
	testify.Contains(t, v.Error(), "assert_test.go:")
}
