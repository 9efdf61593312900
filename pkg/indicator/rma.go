package indicator

import (
	"github.com/c9s/indicatorkit/pkg/types"
)

// Running Moving Average
// Refer: https://github.com/twopirllc/pandas-ta/blob/main/pandas_ta/overlap/rma.py#L5
//
// The Running Moving Average (RMA), also known as Wilder's smoothing, is the EMA with
// the smoothing factor 1 / window. It is used by ATR, RSI and DMI.
func RMA[T types.TimeValue](entries []T, window int) ([]types.IndexEntry, error) {
	return EMAWithAlpha(entries, window, rmaAlpha(window))
}

func rmaAlpha(window int) float64 {
	return 1.0 / float64(window)
}

func rma[T types.TimeValue](sorted []T, window int) []types.IndexEntry {
	return ema(sorted, window, rmaAlpha(window))
}
