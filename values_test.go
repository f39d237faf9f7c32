package maybe

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValues(t *testing.T) {
	t.Run("present yields exactly once", func(t *testing.T) {
		require.Equal(t, []int{7}, slices.Collect(Of(7).Values()))
	})

	t.Run("empty yields nothing", func(t *testing.T) {
		require.Empty(t, slices.Collect(Empty[int]().Values()))
	})

	t.Run("every call is a fresh sequence", func(t *testing.T) {
		m := Of(7)
		require.Equal(t, []int{7}, slices.Collect(m.Values()))
		require.Equal(t, []int{7}, slices.Collect(m.Values()))
	})

	t.Run("early break is honored", func(t *testing.T) {
		for range Of(7).Values() {
			break
		}
	})
}

func TestToSlice(t *testing.T) {
	require.Equal(t, []int{7}, Of(7).ToSlice())

	// empty, but not nil
	s := Empty[int]().ToSlice()
	require.NotNil(t, s)
	require.Empty(t, s)
}
