package indicator

import (
	"github.com/c9s/indicatorkit/pkg/datatype/floats"
	"github.com/c9s/indicatorkit/pkg/types"
)

// WMA is the linearly weighted moving average, the weights are 1..window from the oldest
// to the newest element of the window.
func WMA[T types.TimeValue](entries []T, window int) ([]types.IndexEntry, error) {
	if notEnoughData(len(entries), window) {
		return nil, nil
	}

	sorted, err := prepare(entries)
	if err != nil {
		return nil, err
	}

	return wma(sorted, window), nil
}

func wma[T types.TimeValue](sorted []T, window int) []types.IndexEntry {
	if notEnoughData(len(sorted), window) {
		return nil
	}

	weights := floats.LinearWeights(window)
	values := types.Values(sorted)
	out := make([]types.IndexEntry, 0, len(sorted)-window+1)
	for i, w := range types.Windows(values, window) {
		out = append(out, types.IndexEntry{
			At:    sorted[i+window-1].GetAt(),
			Value: floats.WeightedMean(w, weights),
		})
	}
	return out
}
