package indicator

import (
	"github.com/c9s/indicatorkit/pkg/types"
)

// VWMA is the volume weighted moving average of the close price:
//
// VWMA = Sum(Close * Volume) / Sum(Volume) for each window.
//
// A window without any volume fails the call with a *types.DividedByZeroError
// carrying the anchor timestamp of that window.
func VWMA(entries []types.Candlestick, window int) ([]types.IndexEntry, error) {
	if notEnoughData(len(entries), window) {
		return nil, nil
	}

	sorted, err := prepareCandlesticks(entries)
	if err != nil {
		return nil, err
	}

	out := make([]types.IndexEntry, 0, len(sorted)-window+1)
	for _, w := range types.Windows(sorted, window) {
		var closeVolume, volume float64
		for _, k := range w {
			closeVolume += k.Close * k.Volume
			volume += k.Volume
		}

		last := w[len(w)-1]
		if volume == 0 {
			return nil, &types.DividedByZeroError{At: last.At, Field: "sum of volume"}
		}

		out = append(out, types.IndexEntry{At: last.At, Value: closeVolume / volume})
	}
	return out, nil
}
