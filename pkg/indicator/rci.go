package indicator

import (
	"sort"

	"github.com/c9s/indicatorkit/pkg/types"
)

// RCI is the rank correlation index: the Spearman correlation between the
// chronological rank and the price rank of each window, scaled to -100..100.
//
// The most recent element has date rank 0 and the highest value has price rank 0;
// equal values keep their chronological order.
//
// A window of a single element has no correlation, its RCI is 0.
func RCI[T types.TimeValue](entries []T, window int) ([]types.IndexEntry, error) {
	if notEnoughData(len(entries), window) {
		return nil, nil
	}

	sorted, err := prepare(entries)
	if err != nil {
		return nil, err
	}

	n := float64(window)
	denominator := n*n*n - n

	priceRank := make([]int, window)
	order := make([]int, window)

	out := make([]types.IndexEntry, 0, len(sorted)-window+1)
	for i, w := range types.Windows(sorted, window) {
		last := sorted[i+window-1]
		if denominator == 0 {
			out = append(out, types.IndexEntry{At: last.GetAt(), Value: 0})
			continue
		}

		for k := range order {
			order[k] = k
		}
		sort.SliceStable(order, func(a, b int) bool {
			return w[order[a]].GetValue() > w[order[b]].GetValue()
		})
		for rank, k := range order {
			priceRank[k] = rank
		}

		var d float64
		for k := 0; k < window; k++ {
			dateRank := window - 1 - k
			diff := float64(dateRank - priceRank[k])
			d += diff * diff
		}

		out = append(out, types.IndexEntry{
			At:    last.GetAt(),
			Value: (1.0 - 6.0*d/denominator) * 100.0,
		})
	}
	return out, nil
}
