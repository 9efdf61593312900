package indicator

import (
	"fmt"

	"github.com/c9s/indicatorkit/pkg/datatype/floats"
	"github.com/c9s/indicatorkit/pkg/types"
)

/*
boll implements the bollinger indicator:

The Basics of Bollinger Bands
- https://www.investopedia.com/articles/technical/102201.asp

Bollinger Bands
- https://www.investopedia.com/terms/b/bollingerbands.asp

Each entry carries the window mean and the population standard deviation; the bands
are derived with UpperSigma / LowerSigma.
*/
type BollingerBandEntry struct {
	At    uint64  `json:"at"`
	Avg   float64 `json:"avg"`
	Sigma float64 `json:"sigma"`
}

func (e BollingerBandEntry) GetAt() uint64 {
	return e.At
}

func (e BollingerBandEntry) GetValue() float64 {
	return e.Avg
}

// UpperSigma returns avg + sigma * k
func (e BollingerBandEntry) UpperSigma(k float64) float64 {
	return e.Avg + e.Sigma*k
}

// LowerSigma returns avg - sigma * k
func (e BollingerBandEntry) LowerSigma(k float64) float64 {
	return e.Avg - e.Sigma*k
}

func (e BollingerBandEntry) UpperSigma1() float64 { return e.UpperSigma(1.0) }
func (e BollingerBandEntry) UpperSigma2() float64 { return e.UpperSigma(2.0) }
func (e BollingerBandEntry) UpperSigma3() float64 { return e.UpperSigma(3.0) }
func (e BollingerBandEntry) LowerSigma1() float64 { return e.LowerSigma(1.0) }
func (e BollingerBandEntry) LowerSigma2() float64 { return e.LowerSigma(2.0) }
func (e BollingerBandEntry) LowerSigma3() float64 { return e.LowerSigma(3.0) }

func (e BollingerBandEntry) String() string {
	return fmt.Sprintf("BollingerBand(at=%d avg=%f sigma=%f)", e.At, e.Avg, e.Sigma)
}

func BollingerBand[T types.TimeValue](entries []T, window int) ([]BollingerBandEntry, error) {
	if notEnoughData(len(entries), window) {
		return nil, nil
	}

	sorted, err := prepare(entries)
	if err != nil {
		return nil, err
	}

	values := types.Values(sorted)
	out := make([]BollingerBandEntry, 0, len(sorted)-window+1)
	for i, w := range types.Windows(values, window) {
		avg, sigma := floats.PopStdDev(w)
		out = append(out, BollingerBandEntry{
			At:    sorted[i+window-1].GetAt(),
			Avg:   avg,
			Sigma: sigma,
		})
	}
	return out, nil
}

var _ types.TimeValue = BollingerBandEntry{}
