package regen

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorFunction(t *testing.T) {
	count := 0
	gen := &GeneratorFunction[int]{
		Advance: func() (bool, int, error) {
			count++
			if count > 3 {
				return false, 0, nil
			}
			return true, count, nil
		},
	}

	got, err := ToSlice[int](gen)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestGeneratorFunctionStaysExhausted(t *testing.T) {
	calls := 0
	gen := &GeneratorFunction[int]{
		Advance: func() (bool, int, error) {
			calls++
			return false, 0, nil
		},
	}

	for i := 0; i < 4; i++ {
		assert.False(t, gen.Next())
	}
	assert.Equal(t, 1, calls, "the closure must not be called after exhaustion")
}

func TestGeneratorFunctionError(t *testing.T) {
	gen := &GeneratorFunction[int]{
		Advance: func() (bool, int, error) {
			return false, 0, errors.New("broken pipe dream")
		},
	}

	assert.False(t, gen.Next())
	require.Error(t, gen.Error())
	assert.False(t, gen.Next())
	assert.Error(t, gen.Error())
}

func TestFailed(t *testing.T) {
	gen := Failed[string](errors.New("nope"))
	assert.False(t, gen.Next())
	assert.Error(t, gen.Error())
	assert.Zero(t, gen.Value())
}
