package indicator

import (
	"fmt"

	"github.com/c9s/indicatorkit/pkg/types"
)

/*
stoch implements stochastic oscillator indicator

Stochastic Oscillator
- https://www.investopedia.com/terms/s/stochasticoscillator.asp

	%K = (close - lowestLow) / (highestHigh - lowestLow) * 100
	%D = SMA(%K, windowD)
	Slow%D = SMA(%D, windowSD)
*/
type StochasticsEntry struct {
	At uint64  `json:"at"`
	K  float64 `json:"k"`
	D  float64 `json:"d"`
}

func (e StochasticsEntry) GetAt() uint64 {
	return e.At
}

func (e StochasticsEntry) GetValue() float64 {
	return e.K
}

func (e StochasticsEntry) String() string {
	return fmt.Sprintf("Stochastics(at=%d k=%f d=%f)", e.At, e.K, e.D)
}

type SlowStochasticsEntry struct {
	At uint64  `json:"at"`
	K  float64 `json:"k"`
	D  float64 `json:"d"`
	SD float64 `json:"sd"`
}

func (e SlowStochasticsEntry) GetAt() uint64 {
	return e.At
}

func (e SlowStochasticsEntry) GetValue() float64 {
	return e.D
}

func (e SlowStochasticsEntry) String() string {
	return fmt.Sprintf("SlowStochastics(at=%d k=%f d=%f sd=%f)", e.At, e.K, e.D, e.SD)
}

func Stochastics(entries []types.Candlestick, windowK, windowD int) ([]StochasticsEntry, error) {
	if windowD <= 0 || notEnoughData(len(entries), windowK) {
		return nil, nil
	}

	sorted, err := prepareCandlesticks(entries)
	if err != nil {
		return nil, err
	}

	ks := stochK(sorted, windowK)
	ds := sma(ks, windowD)

	out := make([]StochasticsEntry, len(ds))
	for j, d := range ds {
		out[j] = StochasticsEntry{
			At: d.At,
			K:  ks[j+windowD-1].Value,
			D:  d.Value,
		}
	}
	return out, nil
}

func SlowStochastics(entries []types.Candlestick, windowK, windowD, windowSD int) ([]SlowStochasticsEntry, error) {
	if windowD <= 0 || windowSD <= 0 || notEnoughData(len(entries), windowK) {
		return nil, nil
	}

	sorted, err := prepareCandlesticks(entries)
	if err != nil {
		return nil, err
	}

	ks := stochK(sorted, windowK)
	ds := sma(ks, windowD)
	sds := sma(ds, windowSD)

	out := make([]SlowStochasticsEntry, len(sds))
	for j, sd := range sds {
		out[j] = SlowStochasticsEntry{
			At: sd.At,
			K:  ks[j+windowSD-1+windowD-1].Value,
			D:  ds[j+windowSD-1].Value,
			SD: sd.Value,
		}
	}
	return out, nil
}

func stochK(sorted []types.Candlestick, window int) []types.IndexEntry {
	out := make([]types.IndexEntry, 0, len(sorted)-window+1)
	for _, w := range types.Windows(sorted, window) {
		last := w[len(w)-1]
		lowest := lowestLow(w)
		highest := highestHigh(w)

		var k float64
		if highest != lowest {
			k = (last.Close - lowest) / (highest - lowest) * 100.0
		}
		out = append(out, types.IndexEntry{At: last.At, Value: k})
	}
	return out
}

var _ types.TimeValue = StochasticsEntry{}
var _ types.TimeValue = SlowStochasticsEntry{}
