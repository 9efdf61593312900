package indicator

import (
	"github.com/c9s/indicatorkit/pkg/types"
)

// Refer: Triple Exponential Moving Average (TEMA)
// URL: https://investopedia.com/terms/t/triple-exponential-moving-average.asp
//
// The Triple Exponential Moving Average (TEMA) is a technical analysis indicator that is used to smooth price data and reduce the lag
// associated with traditional moving averages. It takes the EMA of the input, the EMA of that result and the EMA of that result again,
// and combines them as TEMA = 3 * EMA1 - 3 * EMA2 + EMA3.
func TEMA[T types.TimeValue](entries []T, window int) ([]types.IndexEntry, error) {
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
	ema3 := ema(ema2, window, alpha)

	out := make([]types.IndexEntry, len(ema3))
	for i, e3 := range ema3 {
		e2 := ema2[i+window-1]
		e1 := ema1[i+2*(window-1)]
		out[i] = types.IndexEntry{
			At:    e3.At,
			Value: 3*e1.Value - 3*e2.Value + e3.Value,
		}
	}
	return out, nil
}
