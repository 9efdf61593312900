package indicator

import (
	"github.com/c9s/indicatorkit/pkg/datatype/floats"
	"github.com/c9s/indicatorkit/pkg/types"
)

// SMA is the simple moving average: the arithmetic mean of each window.
func SMA[T types.TimeValue](entries []T, window int) ([]types.IndexEntry, error) {
	if notEnoughData(len(entries), window) {
		return nil, nil
	}

	sorted, err := prepare(entries)
	if err != nil {
		return nil, err
	}

	return sma(sorted, window), nil
}

// sma expects a sorted series
func sma[T types.TimeValue](sorted []T, window int) []types.IndexEntry {
	if notEnoughData(len(sorted), window) {
		return nil
	}

	values := types.Values(sorted)
	out := make([]types.IndexEntry, 0, len(sorted)-window+1)
	for i, w := range types.Windows(values, window) {
		out = append(out, types.IndexEntry{
			At:    sorted[i+window-1].GetAt(),
			Value: floats.Average(w),
		})
	}
	return out
}
