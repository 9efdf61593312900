package types

import (
	"sort"
)

// SortByTime returns a copy of the series sorted ascending by timestamp.
// The input slice is left untouched.
func SortByTime[T TimeValue](xs []T) []T {
	sorted := make([]T, len(xs))
	copy(sorted, xs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].GetAt() < sorted[j].GetAt()
	})
	return sorted
}

// Windows returns every contiguous sub-slice of the given size, oldest first.
// The windows share the backing array of xs; callers must not modify them.
func Windows[T any](xs []T, size int) [][]T {
	if size <= 0 || len(xs) < size {
		return nil
	}

	windows := make([][]T, 0, len(xs)-size+1)
	for i := 0; i+size <= len(xs); i++ {
		windows = append(windows, xs[i:i+size])
	}
	return windows
}
