package indicator

import (
	"github.com/c9s/indicatorkit/pkg/types"
)

// Momentum is the change of the value over window elements:
//
//	momentum[i] = value[i+window] - value[i]
//
// anchored at the later element. It needs at least window+1 elements.
func Momentum[T types.TimeValue](entries []T, window int) ([]types.IndexEntry, error) {
	if window <= 0 || notEnoughData(len(entries), window+1) {
		return nil, nil
	}

	sorted, err := prepare(entries)
	if err != nil {
		return nil, err
	}

	out := make([]types.IndexEntry, 0, len(sorted)-window)
	for i := 0; i+window < len(sorted); i++ {
		later := sorted[i+window]
		out = append(out, types.IndexEntry{
			At:    later.GetAt(),
			Value: later.GetValue() - sorted[i].GetValue(),
		})
	}
	return out, nil
}
