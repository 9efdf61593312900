package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortByTime(t *testing.T) {
	var entries = []IndexEntry{
		{At: 3, Value: 30},
		{At: 1, Value: 10},
		{At: 2, Value: 20},
	}

	sorted := SortByTime(entries)
	assert.Equal(t, []IndexEntry{{1, 10}, {2, 20}, {3, 30}}, sorted)

	// the input is not modified
	assert.Equal(t, uint64(3), entries[0].At)
}

func TestWindows(t *testing.T) {
	xs := []int{1, 2, 3, 4, 5}

	t.Run("size 3", func(t *testing.T) {
		windows := Windows(xs, 3)
		assert.Equal(t, [][]int{{1, 2, 3}, {2, 3, 4}, {3, 4, 5}}, windows)
	})

	t.Run("size equals length", func(t *testing.T) {
		windows := Windows(xs, 5)
		assert.Len(t, windows, 1)
	})

	t.Run("too short", func(t *testing.T) {
		assert.Empty(t, Windows(xs, 6))
	})

	t.Run("zero size", func(t *testing.T) {
		assert.Empty(t, Windows(xs, 0))
	})
}
