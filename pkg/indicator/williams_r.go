package indicator

import (
	"github.com/c9s/indicatorkit/pkg/types"
)

// WilliamsPercentR computes Williams %R over each window of bars:
//
//	%R = (close - highestHigh) / (highestHigh - lowestLow) * 100
//
// The values range from -100 to 0. A window without any range gives 0.
//
// https://www.investopedia.com/terms/w/williamsr.asp
func WilliamsPercentR(entries []types.Candlestick, window int) ([]types.IndexEntry, error) {
	if notEnoughData(len(entries), window) {
		return nil, nil
	}

	sorted, err := prepareCandlesticks(entries)
	if err != nil {
		return nil, err
	}

	out := make([]types.IndexEntry, 0, len(sorted)-window+1)
	for _, w := range types.Windows(sorted, window) {
		last := w[len(w)-1]
		highest := highestHigh(w)
		lowest := lowestLow(w)

		var r float64
		if highest != lowest {
			r = (last.Close - highest) / (highest - lowest) * 100.0
		}
		out = append(out, types.IndexEntry{At: last.At, Value: r})
	}
	return out, nil
}
