package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStochastics(t *testing.T) {
	got, err := Stochastics(testCandlesticks(), 3, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// %K at 1719400004: (95 - 80) / (140 - 80) * 100 = 25
	assert.Equal(t, uint64(1719400004), got[0].At)
	assert.InDelta(t, 25.0, got[0].K, Delta)
	assert.InDelta(t, 42.5, got[0].D, Delta)
	assert.InDelta(t, 25.0, got[0].GetValue(), Delta)

	assert.Equal(t, uint64(1719400005), got[1].At)
	assert.InDelta(t, 18.461538461538463, got[1].K, Delta)
	assert.InDelta(t, 21.730769230769234, got[1].D, Delta)

	got, err = Stochastics(trendCandlesticks(), 5, 3)
	require.NoError(t, err)
	require.Len(t, got, 14)
	assert.Equal(t, uint64(1719400360), got[0].At)
	assert.InDelta(t, 41.66666666666667, got[0].K, Delta)
	assert.InDelta(t, 59.40170940170941, got[0].D, Delta)
}

func TestSlowStochastics(t *testing.T) {
	got, err := SlowStochastics(testCandlesticks(), 2, 2, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, uint64(1719400004), got[0].At)
	assert.InDelta(t, 27.27272727272727, got[0].K, Delta)
	assert.InDelta(t, 38.63636363636363, got[0].D, Delta)
	assert.InDelta(t, 51.81818181818181, got[0].SD, Delta)
	assert.InDelta(t, got[0].D, got[0].GetValue(), Delta)

	got, err = SlowStochastics(trendCandlesticks(), 5, 3, 3)
	require.NoError(t, err)
	require.Len(t, got, 12)
	assert.Equal(t, uint64(1719400480), got[0].At)
	assert.InDelta(t, 71.42857142857143, got[0].K, Delta)
	assert.InDelta(t, 62.6984126984127, got[0].D, Delta)
	assert.InDelta(t, 60.50061050061051, got[0].SD, Delta)
}

func TestStochastics_NotEnoughData(t *testing.T) {
	got, err := Stochastics(testCandlesticks(), 3, 0)
	assert.NoError(t, err)
	assert.Empty(t, got)

	slow, err := SlowStochastics(testCandlesticks(), 6, 2, 2)
	assert.NoError(t, err)
	assert.Empty(t, slow)
}
