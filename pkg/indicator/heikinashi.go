package indicator

import (
	"github.com/c9s/indicatorkit/pkg/types"
)

// HeikinAshi rebuilds the bars as Heikin-Ashi candles:
//
//	open  = (previous HA open + previous HA close) / 2
//	close = (open + high + low + close) / 4 of the source bar
//
// high, low and volume are copied from the source bar and the first bar is kept unchanged.
func HeikinAshi(entries []types.Candlestick) ([]types.Candlestick, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	sorted, err := prepareCandlesticks(entries)
	if err != nil {
		return nil, err
	}

	out := make([]types.Candlestick, len(sorted))
	out[0] = sorted[0]
	for i := 1; i < len(sorted); i++ {
		k := sorted[i]
		prev := out[i-1]
		out[i] = types.Candlestick{
			At:     k.At,
			Open:   (prev.Open + prev.Close) / 2.0,
			High:   k.High,
			Low:    k.Low,
			Close:  (k.Open + k.High + k.Low + k.Close) / 4.0,
			Volume: k.Volume,
		}
	}
	return out, nil
}
