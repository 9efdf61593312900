package indicator

import (
	"fmt"

	"github.com/c9s/indicatorkit/pkg/types"
)

/*
macd implements moving average convergence divergence indicator

Moving Average Convergence Divergence (MACD)
- https://www.investopedia.com/terms/m/macd.asp
*/
type MACDEntry struct {
	At        uint64  `json:"at"`
	MACD      float64 `json:"macd"`
	Signal    float64 `json:"signal"`
	Histogram float64 `json:"histogram"`
}

func (e MACDEntry) GetAt() uint64 {
	return e.At
}

func (e MACDEntry) GetValue() float64 {
	return e.MACD
}

func (e MACDEntry) String() string {
	return fmt.Sprintf("MACD(at=%d macd=%f signal=%f histogram=%f)", e.At, e.MACD, e.Signal, e.Histogram)
}

// MACD computes EMA(short) - EMA(long), the signal line EMA(macd, signal) and their difference.
//
// The long window must be strictly greater than the short window, otherwise the call
// fails with a *types.LongDurationNotGreaterError.
func MACD[T types.TimeValue](entries []T, short, long, signal int) ([]MACDEntry, error) {
	if len(entries) == 0 || short <= 0 || long <= 0 || signal <= 0 {
		return nil, nil
	}

	if long <= short {
		return nil, &types.LongDurationNotGreaterError{Short: short, Long: long}
	}

	if len(entries) < long {
		return nil, nil
	}

	sorted, err := prepare(entries)
	if err != nil {
		return nil, err
	}

	emaShort := ema(sorted, short, emaAlpha(short))
	emaLong := ema(sorted, long, emaAlpha(long))

	// emaLong[i] and emaShort[i+offset] share the same anchor
	offset := long - short
	macds := make([]types.IndexEntry, len(emaLong))
	for i, l := range emaLong {
		macds[i] = types.IndexEntry{At: l.At, Value: emaShort[i+offset].Value - l.Value}
	}

	signals := ema(macds, signal, emaAlpha(signal))
	out := make([]MACDEntry, len(signals))
	for j, s := range signals {
		m := macds[j+signal-1]
		out[j] = MACDEntry{
			At:        s.At,
			MACD:      m.Value,
			Signal:    s.Value,
			Histogram: m.Value - s.Value,
		}
	}
	return out, nil
}

var _ types.TimeValue = MACDEntry{}
