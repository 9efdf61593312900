package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/indicatorkit/pkg/types"
)

const Delta = 1e-9

// testCandlesticks returns five bars in shuffled order
func testCandlesticks() []types.Candlestick {
	return []types.Candlestick{
		types.NewCandlestick(1719400003, 130.0, 135.0, 120.0, 120.0, 1000.0),
		types.NewCandlestick(1719400001, 100.0, 130.0, 90.0, 110.0, 1000.0),
		types.NewCandlestick(1719400005, 90.0, 100.0, 70.0, 82.0, 1000.0),
		types.NewCandlestick(1719400002, 110.0, 140.0, 100.0, 130.0, 1000.0),
		types.NewCandlestick(1719400004, 120.0, 130.0, 80.0, 95.0, 1000.0),
	}
}

var trendCloses = []float64{100, 102, 101, 105, 107, 106, 104, 108, 112, 111, 109, 113, 115, 114, 110, 108, 111, 116, 118, 117}

// trendCandlesticks returns 20 one-minute bars, each bar opens at the previous close
func trendCandlesticks() []types.Candlestick {
	ks := make([]types.Candlestick, len(trendCloses))
	for i, c := range trendCloses {
		o := 99.0
		if i > 0 {
			o = trendCloses[i-1]
		}
		ks[i] = types.Candlestick{
			At:     1719400000 + uint64(i)*60,
			Open:   o,
			High:   max(o, c) + 2 + float64(i%3),
			Low:    min(o, c) - 1 - float64(i%2),
			Close:  c,
			Volume: 1000 + 10*float64(i),
		}
	}
	return ks
}

func negateCloses(ks []types.Candlestick) []types.IndexEntry {
	out := make([]types.IndexEntry, len(ks))
	for i, k := range ks {
		out[i] = types.IndexEntry{At: k.At, Value: -k.Close}
	}
	return out
}

func assertEntries(t *testing.T, want, got []types.IndexEntry) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].At, got[i].At, "entry %d", i)
		assert.InDelta(t, want[i].Value, got[i].Value, Delta, "entry %d", i)
	}
}
