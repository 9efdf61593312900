package indicator

import (
	"github.com/c9s/indicatorkit/pkg/datatype/floats"
	"github.com/c9s/indicatorkit/pkg/types"
)

// EMA is the exponential moving average with the smoothing factor 2 / (window + 1).
//
// The first value is the SMA of the first window elements, anchored at the window end;
// every following element updates the average with ema = ema + alpha * (x - ema).
func EMA[T types.TimeValue](entries []T, window int) ([]types.IndexEntry, error) {
	return EMAWithAlpha(entries, window, emaAlpha(window))
}

// EMAWithAlpha is the EMA engine with an arbitrary smoothing factor.
func EMAWithAlpha[T types.TimeValue](entries []T, window int, alpha float64) ([]types.IndexEntry, error) {
	if notEnoughData(len(entries), window) {
		return nil, nil
	}

	sorted, err := prepare(entries)
	if err != nil {
		return nil, err
	}

	return ema(sorted, window, alpha), nil
}

func emaAlpha(window int) float64 {
	return 2.0 / float64(window+1)
}

// ema expects a sorted series, the recurrence state lives only in this call
func ema[T types.TimeValue](sorted []T, window int, alpha float64) []types.IndexEntry {
	if notEnoughData(len(sorted), window) {
		return nil
	}

	// the first EMA is actually SMA
	prev := floats.Average(types.Values(sorted[:window]))

	out := make([]types.IndexEntry, 0, len(sorted)-window+1)
	out = append(out, types.IndexEntry{At: sorted[window-1].GetAt(), Value: prev})
	for _, x := range sorted[window:] {
		prev = prev + alpha*(x.GetValue()-prev)
		out = append(out, types.IndexEntry{At: x.GetAt(), Value: prev})
	}
	return out
}
