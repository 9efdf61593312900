package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/indicatorkit/pkg/types"
)

func TestTEMA(t *testing.T) {
	got, err := TEMA(testCandlesticks(), 2)
	require.NoError(t, err)
	assertEntries(t, []types.IndexEntry{
		{At: 1719400004, Value: 97.77777777777777},
		{At: 1719400005, Value: 82.17283950617285},
	}, got)

	got, err = TEMA(trendCandlesticks(), 3)
	require.NoError(t, err)
	require.Len(t, got, 14)
	assert.Equal(t, uint64(1719400360), got[0].At)
	assert.InDelta(t, 104.66666666666667, got[0].Value, Delta)
	assert.InDelta(t, 107.48958333333334, got[1].Value, Delta)
}

func TestTEMA_SignSymmetry(t *testing.T) {
	ks := trendCandlesticks()
	pos, err := TEMA(ks, 3)
	require.NoError(t, err)
	neg, err := TEMA(negateCloses(ks), 3)
	require.NoError(t, err)

	require.Len(t, neg, len(pos))
	for i := range pos {
		assert.InDelta(t, -pos[i].Value, neg[i].Value, Delta)
	}
}
