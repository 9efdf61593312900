// Package indicator implements batch technical-analysis indicators over candlestick
// and timestamped value series.
//
// Every function copies and sorts its input by timestamp, computes the whole result
// series and returns it. Window based results are anchored at the timestamp of the
// last element of their window. A zero window or an input shorter than the window
// returns an empty result and a nil error; NaN or infinite input values fail the
// whole call with a *types.ContainsNaNError or *types.ContainsInfiniteError.
package indicator

import (
	"github.com/c9s/indicatorkit/pkg/datatype/floats"
	"github.com/c9s/indicatorkit/pkg/types"
)

// notEnoughData reports whether a window of the given size can not be computed over n elements
func notEnoughData(n, window int) bool {
	return window <= 0 || n < window
}

// prepare validates the raw series and returns a sorted copy
func prepare[T types.TimeValue](entries []T) ([]T, error) {
	if err := types.ValidateList(entries); err != nil {
		return nil, err
	}

	return types.SortByTime(entries), nil
}

// prepareCandlesticks validates the bars and returns a sorted copy
func prepareCandlesticks(entries []types.Candlestick) ([]types.Candlestick, error) {
	if err := types.ValidateCandlesticks(entries); err != nil {
		return nil, err
	}

	return types.SortByTime(entries), nil
}

// highestHigh and lowestLow scan a window of bars
func highestHigh(ks []types.Candlestick) float64 {
	highs := make([]float64, len(ks))
	for i, k := range ks {
		highs[i] = k.High
	}
	return floats.Highest(highs)
}

func lowestLow(ks []types.Candlestick) float64 {
	lows := make([]float64, len(ks))
	for i, k := range ks {
		lows[i] = k.Low
	}
	return floats.Lowest(lows)
}
