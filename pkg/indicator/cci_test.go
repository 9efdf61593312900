package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/indicatorkit/pkg/types"
)

func TestCCI(t *testing.T) {
	got, err := CCI(testCandlesticks(), 3)
	require.NoError(t, err)
	assertEntries(t, []types.IndexEntry{
		{At: 1719400003, Value: 58.82352941176474},
		{At: 1719400004, Value: -100.00000000000006},
		{At: 1719400005, Value: -91.1917098445596},
	}, got)

	got, err = CCI(trendCandlesticks(), 5)
	require.NoError(t, err)
	require.Len(t, got, 16)
	assert.InDelta(t, 141.20370370370273, got[0].Value, 1e-6)
	assert.InDelta(t, 72.91666666666649, got[15].Value, 1e-6)
}

func TestCCI_ZeroDeviation(t *testing.T) {
	ks := []types.Candlestick{
		types.NewCandlestick(1, 10, 12, 8, 10, 100),
		types.NewCandlestick(2, 10, 12, 8, 10, 100),
		types.NewCandlestick(3, 10, 12, 8, 10, 100),
	}
	got, err := CCI(ks, 2)
	require.NoError(t, err)
	assert.Equal(t, []types.IndexEntry{{At: 2, Value: 0}, {At: 3, Value: 0}}, got)
}

func TestMomentum(t *testing.T) {
	got, err := Momentum(testCandlesticks(), 2)
	require.NoError(t, err)
	assert.Equal(t, []types.IndexEntry{
		{At: 1719400003, Value: 10},
		{At: 1719400004, Value: -35},
		{At: 1719400005, Value: -38},
	}, got)

	neg, err := Momentum(negateCloses(testCandlesticks()), 2)
	require.NoError(t, err)
	for i := range got {
		assert.Equal(t, -got[i].Value, neg[i].Value)
	}

	got, err = Momentum(testCandlesticks(), 5)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestWilliamsPercentR(t *testing.T) {
	got, err := WilliamsPercentR(testCandlesticks(), 3)
	require.NoError(t, err)
	// (120 - 140) / (140 - 90) * 100 = -40
	assertEntries(t, []types.IndexEntry{
		{At: 1719400003, Value: -40.0},
		{At: 1719400004, Value: -75.0},
		{At: 1719400005, Value: -81.53846153846153},
	}, got)

	got, err = WilliamsPercentR(trendCandlesticks(), 5)
	require.NoError(t, err)
	assert.InDelta(t, -26.666666666666668, got[len(got)-1].Value, Delta)
	for _, e := range got {
		assert.GreaterOrEqual(t, e.Value, -100.0)
		assert.LessOrEqual(t, e.Value, 0.0)
	}
}

func TestRCI(t *testing.T) {
	got, err := RCI(testCandlesticks(), 3)
	require.NoError(t, err)
	assertEntries(t, []types.IndexEntry{
		{At: 1719400003, Value: 50.0},
		{At: 1719400004, Value: -100.0},
		{At: 1719400005, Value: -100.0},
	}, got)

	got, err = RCI(trendCandlesticks(), 5)
	require.NoError(t, err)
	assertEntries(t, []types.IndexEntry{
		{At: 1719400240, Value: 90.0},
		{At: 1719400300, Value: 80.0},
		{At: 1719400360, Value: 30.000000000000004},
	}, got[:3])

	rising := []types.IndexEntry{{At: 1, Value: 1}, {At: 2, Value: 2}, {At: 3, Value: 3}, {At: 4, Value: 4}}
	got, err = RCI(rising, 4)
	require.NoError(t, err)
	assert.Equal(t, []types.IndexEntry{{At: 4, Value: 100}}, got)
}
