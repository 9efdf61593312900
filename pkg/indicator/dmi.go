package indicator

import (
	"fmt"
	"math"

	"github.com/c9s/indicatorkit/pkg/types"
)

// Refer: https://www.investopedia.com/terms/d/dmi.asp
//
// Directional Movement Index
//
// The Directional Movement Index (DMI) is a technical analysis indicator that is used to identify the direction and strength of a trend
// in a security's price. It was developed by J. Welles Wilder and is based on the concept of the +DI and -DI lines, which measure the strength
// of upward and downward price movements, respectively. The difference of the two lines normalized by their sum is DX, and the smoothed
// DX is the Average Directional Index (ADX).
//
// All the smoothing here is Wilder's smoothing expressed as an EMA over 2 * window - 1 elements,
// which has the smoothing factor 1 / window. DI and DX are ratios, not percentages.
type DMIEntry struct {
	At      uint64  `json:"at"`
	PlusDI  float64 `json:"plusDI"`
	MinusDI float64 `json:"minusDI"`
	DX      float64 `json:"dx"`
	ADX     float64 `json:"adx"`
}

func (e DMIEntry) GetAt() uint64 {
	return e.At
}

func (e DMIEntry) GetValue() float64 {
	return e.ADX
}

func (e DMIEntry) String() string {
	return fmt.Sprintf("DMI(at=%d +di=%f -di=%f dx=%f adx=%f)", e.At, e.PlusDI, e.MinusDI, e.DX, e.ADX)
}

func DMI(entries []types.Candlestick, window int) ([]DMIEntry, error) {
	if notEnoughData(len(entries), window) {
		return nil, nil
	}

	sorted, err := prepareCandlesticks(entries)
	if err != nil {
		return nil, err
	}

	if len(sorted) < 2 {
		return nil, nil
	}

	n := len(sorted) - 1
	plusDM := make([]types.IndexEntry, n)
	minusDM := make([]types.IndexEntry, n)
	trs := make([]types.IndexEntry, n)
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]

		up := math.Max(cur.High-prev.High, 0)
		dn := math.Max(prev.Low-cur.Low, 0)

		pos, neg := up, dn
		if up < dn {
			pos = 0
		}
		if up > dn {
			neg = 0
		}

		tr := math.Max(cur.High-cur.Low, math.Abs(cur.High-prev.Close))
		tr = math.Max(tr, math.Abs(prev.Close-cur.Low))

		plusDM[i-1] = types.IndexEntry{At: cur.At, Value: pos}
		minusDM[i-1] = types.IndexEntry{At: cur.At, Value: neg}
		trs[i-1] = types.IndexEntry{At: cur.At, Value: tr}
	}

	smoothing := 2*window - 1
	plusMA := wilderMA(plusDM, window)
	minusMA := wilderMA(minusDM, window)
	trMA := wilderMA(trs, window)

	dmis := make([]DMIEntry, len(trMA))
	dxs := make([]types.IndexEntry, len(trMA))
	for i, tr := range trMA {
		var plusDI, minusDI, dx float64
		if tr.Value != 0 {
			plusDI = plusMA[i].Value / tr.Value
			minusDI = minusMA[i].Value / tr.Value
		}
		if plusDI+minusDI != 0 {
			dx = math.Abs(plusDI-minusDI) / (plusDI + minusDI)
		}

		dmis[i] = DMIEntry{At: tr.At, PlusDI: plusDI, MinusDI: minusDI, DX: dx}
		dxs[i] = types.IndexEntry{At: tr.At, Value: dx}
	}

	adxs := wilderMA(dxs, window)
	out := make([]DMIEntry, len(adxs))
	for j, adx := range adxs {
		e := dmis[j+smoothing-1]
		e.ADX = adx.Value
		out[j] = e
	}
	return out, nil
}

// wilderMA smooths with the factor 1 / window over 2 * window - 1 elements
func wilderMA(sorted []types.IndexEntry, window int) []types.IndexEntry {
	return ema(sorted, 2*window-1, rmaAlpha(window))
}

var _ types.TimeValue = DMIEntry{}
