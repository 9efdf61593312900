package indicator

import (
	"github.com/c9s/indicatorkit/pkg/datatype/floats"
	"github.com/c9s/indicatorkit/pkg/types"
)

// StandardDeviation is the population standard deviation (divided by window, not window-1) of each window.
func StandardDeviation[T types.TimeValue](entries []T, window int) ([]types.IndexEntry, error) {
	if notEnoughData(len(entries), window) {
		return nil, nil
	}

	sorted, err := prepare(entries)
	if err != nil {
		return nil, err
	}

	values := types.Values(sorted)
	out := make([]types.IndexEntry, 0, len(sorted)-window+1)
	for i, w := range types.Windows(values, window) {
		_, std := floats.PopStdDev(w)
		out = append(out, types.IndexEntry{At: sorted[i+window-1].GetAt(), Value: std})
	}
	return out, nil
}
