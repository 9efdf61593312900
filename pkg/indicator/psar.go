package indicator

import (
	"github.com/c9s/indicatorkit/pkg/types"
)

// Parabolic SAR(Stop and Reverse) / SAR
// Refer: https://www.investopedia.com/terms/p/parabolicindicator.asp
// The parabolic SAR indicator, developed by J. Wells Wilder, is used by traders to determine
// trend direction and potential reversals in price. The indicator uses a trailing stop and
// reverse method called "SAR," or stop and reverse, to identify suitable exit and entry points.
//
// The trend starts with the direction of the first bar. Every following bar gets the SAR
// computed from the bars before it; the first bar itself has no value.
//
// afInit, afStep and afMax are the initial acceleration factor, its increment on each new
// extreme point and its cap. Negative factors fail with a *types.MustBePositiveError.
func ParabolicSAR(entries []types.Candlestick, afInit, afStep, afMax float64) ([]types.IndexEntry, error) {
	for _, arg := range []struct {
		value float64
		field string
	}{
		{afInit, "afInit"},
		{afStep, "afStep"},
		{afMax, "afMax"},
	} {
		if arg.value < 0 {
			return nil, &types.MustBePositiveError{Value: arg.value, Field: arg.field}
		}
	}

	if len(entries) == 0 {
		return nil, nil
	}

	sorted, err := prepareCandlesticks(entries)
	if err != nil {
		return nil, err
	}

	head := sorted[0]
	rising := head.IsBullish()
	af := afInit

	var ep, sar float64
	if rising {
		ep, sar = head.High, head.Low
	} else {
		ep, sar = head.Low, head.High
	}

	out := make([]types.IndexEntry, 0, len(sorted)-1)
	for _, k := range sorted[1:] {
		out = append(out, types.IndexEntry{At: k.At, Value: sar})

		switch {
		case rising && sar > k.Low:
			// reverse to falling
			rising = false
			af = afInit
			sar, ep = ep, k.Low

		case !rising && sar < k.High:
			// reverse to rising
			rising = true
			af = afInit
			sar, ep = ep, k.High

		default:
			if rising && ep < k.High {
				af += afStep
				ep = k.High
			} else if !rising && ep > k.Low {
				af += afStep
				ep = k.Low
			}

			if af > afMax {
				af = afMax
			}
		}

		sar = sar + af*(ep-sar)
	}

	return out, nil
}
