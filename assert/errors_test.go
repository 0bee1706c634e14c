package assert

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCollector_Unwrap(t *testing.T) {
	var (
		ErrA = errors.New("A")
		ErrB = errors.New("B")
		err  = CollectErrors().Add(ErrA).Add(nil).Add(ErrB).Result()
		as   = new(Collector)
	)

	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrA)
	assert.ErrorIs(t, err, ErrB)
	assert.ErrorAs(t, err, &as)
	assert.Equal(t, 2, as.Len())
}

func TestCollector_Error(t *testing.T) {
	var (
		ErrA = errors.New("A")
		ErrB = errors.New("B")
		err  = CollectErrors(" ").Add(ErrA).Add(ErrB).Addf("C: %w", ErrA).Result()
	)
	require.NotNil(t, err)
	assert.Equal(t, "A B C: A", err.Error())
}

func TestCollector_Empty(t *testing.T) {
	assert.NoError(t, CollectErrors().Result())
}
