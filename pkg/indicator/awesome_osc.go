package indicator

import (
	"github.com/c9s/indicatorkit/pkg/types"
)

// AwesomeOscillator is SMA(short) - SMA(long) of the median price (high + low) / 2.
//
// https://www.tradingview.com/support/solutions/43000501826-awesome-oscillator-ao/
func AwesomeOscillator(entries []types.Candlestick, short, long int) ([]types.IndexEntry, error) {
	if len(entries) == 0 || short <= 0 || long <= 0 {
		return nil, nil
	}

	if long <= short {
		return nil, &types.LongDurationNotGreaterError{Short: short, Long: long}
	}

	if len(entries) < long {
		return nil, nil
	}

	sorted, err := prepareCandlesticks(entries)
	if err != nil {
		return nil, err
	}

	medians := types.MedianPrices(sorted)
	smaShort := sma(medians, short)
	smaLong := sma(medians, long)

	offset := long - short
	out := make([]types.IndexEntry, len(smaLong))
	for i, l := range smaLong {
		out[i] = types.IndexEntry{At: l.At, Value: smaShort[i+offset].Value - l.Value}
	}
	return out, nil
}
