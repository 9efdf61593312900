package indicator

import (
	"math"

	"github.com/c9s/indicatorkit/pkg/types"
)

// Refer: Hull Moving Average
// Refer URL: https://fidelity.com/learning-center/trading-investing/technical-analysis/technical-indicator-guide/hull-moving-average
//
// HMA = WMA(2 * WMA(x, window/2) - WMA(x, window), sqrt(window))
//
// window/2 and sqrt(window) are truncated to integers, so a window of 1 has no result.
func HMA[T types.TimeValue](entries []T, window int) ([]types.IndexEntry, error) {
	if notEnoughData(len(entries), window) {
		return nil, nil
	}

	sorted, err := prepare(entries)
	if err != nil {
		return nil, err
	}

	half := window / 2
	halfWMA := wma(sorted, half)
	fullWMA := wma(sorted, window)
	if len(halfWMA) == 0 || len(fullWMA) == 0 {
		return nil, nil
	}

	// fullWMA[i] and halfWMA[i+offset] share the same anchor bar
	offset := window - half
	raw := make([]types.IndexEntry, len(fullWMA))
	for i, full := range fullWMA {
		raw[i] = types.IndexEntry{
			At:    full.At,
			Value: 2*halfWMA[i+offset].Value - full.Value,
		}
	}

	return wma(raw, int(math.Sqrt(float64(window)))), nil
}
