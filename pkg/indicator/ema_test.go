package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/indicatorkit/pkg/types"
)

/*
closes: 110, 130, 120, 95, 82
alpha = 2 / (3 + 1) = 0.5

seed = (110 + 130 + 120) / 3 = 120
120 + 0.5 * (95 - 120) = 107.5
107.5 + 0.5 * (82 - 107.5) = 94.75
*/
func TestEMA(t *testing.T) {
	got, err := EMA(testCandlesticks(), 3)
	require.NoError(t, err)
	assert.Equal(t, []types.IndexEntry{
		{At: 1719400003, Value: 120.0},
		{At: 1719400004, Value: 107.5},
		{At: 1719400005, Value: 94.75},
	}, got)
}

func TestEMA_SeedIsSMA(t *testing.T) {
	ks := trendCandlesticks()
	for _, window := range []int{1, 2, 5, 20} {
		e, err := EMA(ks, window)
		require.NoError(t, err)
		s, err := SMA(ks, window)
		require.NoError(t, err)

		require.Len(t, e, len(ks)-window+1)
		assert.Equal(t, s[0], e[0], "window %d", window)
	}
}

func TestEMA_NotEnoughData(t *testing.T) {
	got, err := EMA(testCandlesticks(), 0)
	assert.NoError(t, err)
	assert.Empty(t, got)

	got, err = EMA(testCandlesticks(), 6)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestEMAWithAlpha(t *testing.T) {
	// alpha = 1 follows the input after the seed
	got, err := EMAWithAlpha(testCandlesticks(), 2, 1.0)
	require.NoError(t, err)
	assertEntries(t, []types.IndexEntry{
		{At: 1719400002, Value: 120.0},
		{At: 1719400003, Value: 120.0},
		{At: 1719400004, Value: 95.0},
		{At: 1719400005, Value: 82.0},
	}, got)
}

func TestRMA(t *testing.T) {
	got, err := RMA(testCandlesticks(), 3)
	require.NoError(t, err)
	assertEntries(t, []types.IndexEntry{
		{At: 1719400003, Value: 120.0},
		{At: 1719400004, Value: 111.66666666666667},
		{At: 1719400005, Value: 101.77777777777779},
	}, got)
}
