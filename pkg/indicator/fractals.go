package indicator

import (
	"fmt"

	"github.com/c9s/indicatorkit/pkg/types"
)

// WilliamsFractalsEntry marks the bar at At as an up fractal (a local high) and / or a
// down fractal (a local low).
type WilliamsFractalsEntry struct {
	At   uint64 `json:"at"`
	Up   bool   `json:"up"`
	Down bool   `json:"down"`
}

func (e WilliamsFractalsEntry) String() string {
	return fmt.Sprintf("Fractals(at=%d up=%t down=%t)", e.At, e.Up, e.Down)
}

// WilliamsFractals checks every bar that has window bars on both sides: the bar is an up
// fractal when its high is strictly greater than every high on each side, and a down
// fractal when its low is strictly lower than every low on each side.
//
// The last window bars can not be confirmed yet and are emitted with both flags unset.
// The first window bars have no entry.
func WilliamsFractals(entries []types.Candlestick, window int) ([]WilliamsFractalsEntry, error) {
	if window <= 0 || notEnoughData(len(entries), 2*window+1) {
		return nil, nil
	}

	sorted, err := prepareCandlesticks(entries)
	if err != nil {
		return nil, err
	}

	out := make([]WilliamsFractalsEntry, 0, len(sorted)-window)
	for _, w := range types.Windows(sorted, 2*window+1) {
		mid := w[window]
		before := w[:window]
		after := w[window+1:]

		out = append(out, WilliamsFractalsEntry{
			At:   mid.At,
			Up:   highestHigh(before) < mid.High && highestHigh(after) < mid.High,
			Down: lowestLow(before) > mid.Low && lowestLow(after) > mid.Low,
		})
	}

	for _, k := range sorted[len(sorted)-window:] {
		out = append(out, WilliamsFractalsEntry{At: k.At})
	}
	return out, nil
}
