package indicator

import (
	"math"

	"github.com/c9s/indicatorkit/pkg/types"
)

/*
rsi implements Relative Strength Index (RSI)

https://www.investopedia.com/terms/r/rsi.asp

The first value averages the gains and the losses of the first window+1 elements,
every following value applies Wilder's smoothing:

	avgGain = (prevAvgGain * (window - 1) + gain) / window
	rsi     = avgGain / (avgGain + avgLoss) * 100

A series that does not move at all has no gains and no losses, its RSI is 50.
*/
func RSI[T types.TimeValue](entries []T, window int) ([]types.IndexEntry, error) {
	if window <= 0 || notEnoughData(len(entries), window+1) {
		return nil, nil
	}

	sorted, err := prepare(entries)
	if err != nil {
		return nil, err
	}

	w := float64(window)

	var avgGain, avgLoss float64
	for i := 1; i <= window; i++ {
		diff := sorted[i].GetValue() - sorted[i-1].GetValue()
		avgGain += math.Max(diff, 0)
		avgLoss += math.Max(-diff, 0)
	}
	avgGain /= w
	avgLoss /= w

	out := make([]types.IndexEntry, 0, len(sorted)-window)
	out = append(out, types.IndexEntry{At: sorted[window].GetAt(), Value: rsiValue(avgGain, avgLoss)})

	for i := window + 1; i < len(sorted); i++ {
		diff := sorted[i].GetValue() - sorted[i-1].GetValue()
		avgGain = (avgGain*(w-1) + math.Max(diff, 0)) / w
		avgLoss = (avgLoss*(w-1) + math.Max(-diff, 0)) / w
		out = append(out, types.IndexEntry{At: sorted[i].GetAt(), Value: rsiValue(avgGain, avgLoss)})
	}

	return out, nil
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgGain+avgLoss == 0 {
		return 50.0
	}

	return avgGain / (avgGain + avgLoss) * 100.0
}
