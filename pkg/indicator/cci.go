package indicator

import (
	"github.com/c9s/indicatorkit/pkg/datatype/floats"
	"github.com/c9s/indicatorkit/pkg/types"
)

/*
cci implements commodity channel index indicator

Commodity Channel Index (CCI)
- https://www.investopedia.com/terms/c/commoditychannelindex.asp

	cci = (typicalPrice - SMA(typicalPrice)) / (meanDeviation * 0.015)

A window whose typical prices are all equal has no deviation, its CCI is 0.
*/
func CCI(entries []types.Candlestick, window int) ([]types.IndexEntry, error) {
	if notEnoughData(len(entries), window) {
		return nil, nil
	}

	sorted, err := prepareCandlesticks(entries)
	if err != nil {
		return nil, err
	}

	tp := types.TypicalPrices(sorted)
	ma := sma(tp, window)
	values := types.Values(tp)

	out := make([]types.IndexEntry, 0, len(ma))
	for i, w := range types.Windows(values, window) {
		last := tp[i+window-1]
		md := floats.MeanAbsDeviation(w)
		if md == 0 {
			out = append(out, types.IndexEntry{At: last.At, Value: 0})
			continue
		}

		out = append(out, types.IndexEntry{
			At:    last.At,
			Value: (last.Value - ma[i].Value) / (md * 0.015),
		})
	}
	return out, nil
}
