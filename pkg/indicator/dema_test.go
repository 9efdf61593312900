package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/indicatorkit/pkg/types"
)

func TestDEMA(t *testing.T) {
	got, err := DEMA(testCandlesticks(), 2)
	require.NoError(t, err)
	assertEntries(t, []types.IndexEntry{
		{At: 1719400003, Value: 120.0},
		{At: 1719400004, Value: 97.77777777777779},
		{At: 1719400005, Value: 82.51851851851852},
	}, got)
}

func TestDEMA_SignSymmetry(t *testing.T) {
	ks := trendCandlesticks()
	pos, err := DEMA(ks, 4)
	require.NoError(t, err)
	neg, err := DEMA(negateCloses(ks), 4)
	require.NoError(t, err)

	require.Len(t, neg, len(pos))
	require.NotEmpty(t, pos)
	for i := range pos {
		assert.Equal(t, pos[i].At, neg[i].At)
		assert.InDelta(t, -pos[i].Value, neg[i].Value, Delta)
	}
}
