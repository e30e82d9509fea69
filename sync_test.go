package regen

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedConcurrentPulls(t *testing.T) {
	const total = 100
	shared := Share[int](FromSlice(makeRange(total)))

	var mu sync.Mutex
	var got []int
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				v, ok := shared.Pull()
				if !ok {
					return
				}
				mu.Lock()
				got = append(got, v)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.NoError(t, shared.Error())
	require.Len(t, got, total)
	sort.Ints(got)
	assert.Equal(t, makeRange(total), got)
}

func TestSharedTerminalForAllPullers(t *testing.T) {
	shared := Share[int](FromSlice([]int{1}))

	_, ok := shared.Pull()
	require.True(t, ok)
	for i := 0; i < 3; i++ {
		_, ok := shared.Pull()
		assert.False(t, ok)
	}
}

func TestSharedExposesError(t *testing.T) {
	m := Must(func(b *Builder[int]) {
		b.Yield(1)
		b.Do(func() { panic("shared failure") })
	})
	shared := Share[int](m)

	_, ok := shared.Pull()
	assert.True(t, ok)
	_, ok = shared.Pull()
	assert.False(t, ok)
	assert.Error(t, shared.Error())
}

func makeRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
