package indicator

import (
	"github.com/c9s/indicatorkit/pkg/types"
)

// Refer: Double Exponential Moving Average
// Refer URL: https://investopedia.com/terms/d/double-exponential-moving-average.asp
//
// DEMA = 2 * EMA1 - EMA2, where EMA1 = EMA(x, window) and EMA2 = EMA(EMA1, window).
func DEMA[T types.TimeValue](entries []T, window int) ([]types.IndexEntry, error) {
	if notEnoughData(len(entries), window) {
		return nil, nil
	}

	sorted, err := prepare(entries)
	if err != nil {
		return nil, err
	}

	alpha := emaAlpha(window)
	ema1 := ema(sorted, window, alpha)
	ema2 := ema(ema1, window, alpha)

	// ema2[i] is anchored at ema1[i+window-1]
	out := make([]types.IndexEntry, len(ema2))
	for i, e2 := range ema2 {
		e1 := ema1[i+window-1]
		out[i] = types.IndexEntry{At: e2.At, Value: 2*e1.Value - e2.Value}
	}
	return out, nil
}
