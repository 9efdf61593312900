package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/indicatorkit/pkg/types"
)

func TestWilliamsFractals(t *testing.T) {
	got, err := WilliamsFractals(testCandlesticks(), 1)
	require.NoError(t, err)
	assert.Equal(t, []WilliamsFractalsEntry{
		{At: 1719400002, Up: true},
		{At: 1719400003},
		{At: 1719400004},
		{At: 1719400005},
	}, got)
}

func TestWilliamsFractals_Trend(t *testing.T) {
	ks := trendCandlesticks()
	got, err := WilliamsFractals(ks, 2)
	require.NoError(t, err)
	require.Len(t, got, len(ks)-2)

	var marked []WilliamsFractalsEntry
	for _, e := range got {
		if e.Up || e.Down {
			marked = append(marked, e)
		}
	}
	assert.Equal(t, []WilliamsFractalsEntry{
		{At: 1719400420, Down: true},
		{At: 1719400480, Up: true},
		{At: 1719400660, Down: true},
		{At: 1719400900, Down: true},
	}, marked)

	// the last bars are not confirmed
	assert.Equal(t, WilliamsFractalsEntry{At: ks[19].At}, got[len(got)-1])
}

func TestWilliamsFractals_NotEnoughData(t *testing.T) {
	got, err := WilliamsFractals(testCandlesticks(), 3)
	assert.NoError(t, err)
	assert.Empty(t, got)

	got, err = WilliamsFractals([]types.Candlestick{}, 0)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestHeikinAshi(t *testing.T) {
	got, err := HeikinAshi(testCandlesticks())
	require.NoError(t, err)
	assert.Equal(t, []types.Candlestick{
		types.NewCandlestick(1719400001, 100, 130, 90, 110, 1000),
		types.NewCandlestick(1719400002, 105, 140, 100, 120, 1000),
		types.NewCandlestick(1719400003, 112.5, 135, 120, 126.25, 1000),
		types.NewCandlestick(1719400004, 119.375, 130, 80, 106.25, 1000),
		types.NewCandlestick(1719400005, 112.8125, 100, 70, 85.5, 1000),
	}, got)

	got, err = HeikinAshi(nil)
	assert.NoError(t, err)
	assert.Empty(t, got)
}
