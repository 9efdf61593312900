package batch

import (
	"github.com/pkg/errors"

	"github.com/c9s/indicatorkit/pkg/types"
)

// sourceSeries projects the bars onto the value selected by the job source
func sourceSeries(ks []types.Candlestick, source string) ([]types.IndexEntry, error) {
	var f func(k types.Candlestick) float64
	switch source {
	case "", "close":
		f = func(k types.Candlestick) float64 { return k.Close }
	case "open":
		f = func(k types.Candlestick) float64 { return k.Open }
	case "high":
		f = func(k types.Candlestick) float64 { return k.High }
	case "low":
		f = func(k types.Candlestick) float64 { return k.Low }
	case "typical":
		f = types.Candlestick.TypicalPrice
	case "median":
		f = types.Candlestick.MedianPrice
	case "volume":
		f = func(k types.Candlestick) float64 { return k.Volume }
	default:
		return nil, errors.Errorf("unsupported source: %q", source)
	}

	out := make([]types.IndexEntry, len(ks))
	for i, k := range ks {
		out[i] = types.IndexEntry{At: k.At, Value: f(k)}
	}
	return out, nil
}
