package indicator

import (
	"math"

	"github.com/c9s/indicatorkit/pkg/types"
)

// ATR is the average true range: the RMA of the true range series.
//
// The true range of a bar is max(high - prevClose, |low - prevClose|, |high - low|);
// the first bar has no previous close and is excluded.
func ATR(entries []types.Candlestick, window int) ([]types.IndexEntry, error) {
	if notEnoughData(len(entries), window) {
		return nil, nil
	}

	sorted, err := prepareCandlesticks(entries)
	if err != nil {
		return nil, err
	}

	return rma(trueRanges(sorted), window), nil
}

// trueRanges returns len(sorted)-1 entries, one for each bar that has a previous bar
func trueRanges(sorted []types.Candlestick) []types.IndexEntry {
	if len(sorted) < 2 {
		return nil
	}

	out := make([]types.IndexEntry, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		k := sorted[i]
		prevClose := sorted[i-1].Close

		trueRange := k.High - prevClose
		trueRange = math.Max(trueRange, math.Abs(k.Low-prevClose))
		trueRange = math.Max(trueRange, math.Abs(k.High-k.Low))

		out = append(out, types.IndexEntry{At: k.At, Value: trueRange})
	}
	return out
}
