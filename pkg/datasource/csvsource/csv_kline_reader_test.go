package csvsource

import (
	"encoding/csv"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/indicatorkit/pkg/types"
)

func TestCSVCandlestickReader_ReadWithPlainDecoder(t *testing.T) {
	tests := []struct {
		name string
		give string
		want types.Candlestick
		err  error
	}{
		{
			name: "Read TOHLCV",
			give: "1719400001,100,130,90,110,1000",
			want: types.NewCandlestick(1719400001, 100, 130, 90, 110, 1000),
		},
		{
			name: "Read TOHLC",
			give: "1719400001,100,130,90,110",
			want: types.NewCandlestick(1719400001, 100, 130, 90, 110, 0),
		},
		{
			name: "Skip header",
			give: "at,open,high,low,close,volume\n1719400001,100,130,90,110,1000",
			want: types.NewCandlestick(1719400001, 100, 130, 90, 110, 1000),
		},
		{
			name: "Not enough columns",
			give: "1719400001,100,130",
			err:  ErrNotEnoughColumns,
		},
		{
			name: "Invalid price format",
			give: "1719400001,sixty,130,90,110,1000",
			err:  ErrInvalidPriceFormat,
		},
		{
			name: "Invalid volume format",
			give: "1719400001,100,130,90,110,vol",
			err:  ErrInvalidVolumeFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewPlainCSVCandlestickReader(csv.NewReader(strings.NewReader(tt.give)))
			k, err := reader.Read()
			assert.Equal(t, tt.err, err)
			assert.Equal(t, tt.want, k)
		})
	}
}

func TestCSVCandlestickReader_InvalidTimeAfterFirstLine(t *testing.T) {
	records := []string{
		"1719400001,100,130,90,110,1000",
		"yesterday,100,130,90,110,1000",
	}
	reader := NewPlainCSVCandlestickReader(csv.NewReader(strings.NewReader(strings.Join(records, "\n"))))

	_, err := reader.Read()
	require.NoError(t, err)

	_, err = reader.Read()
	assert.Equal(t, ErrInvalidTimeFormat, err)

	_, err = reader.Read()
	assert.Equal(t, io.EOF, err)
}

func TestCSVCandlestickReader_ReadWithBinanceDecoder(t *testing.T) {
	tests := []struct {
		name string
		give string
		want types.Candlestick
		err  error
	}{
		{
			name: "Read DOHLCV",
			give: "1609459200000,28923.63000000,29031.34000000,28690.17000000,28995.13000000,2311.81144500",
			want: types.NewCandlestick(1609459200, 28923.63, 29031.34, 28690.17, 28995.13, 2311.811445),
		},
		{
			name: "Read DOHLC",
			give: "1609459200000,28923.63000000,29031.34000000,28690.17000000,28995.13000000",
			want: types.NewCandlestick(1609459200, 28923.63, 29031.34, 28690.17, 28995.13, 0),
		},
		{
			name: "Not enough columns",
			give: "1609459200000,28923.63000000,29031.34000000",
			err:  ErrNotEnoughColumns,
		},
		{
			name: "Invalid price format",
			give: "1609459200000,sixty,29031.34000000,28690.17000000,28995.13000000",
			err:  ErrInvalidPriceFormat,
		},
		{
			name: "Invalid volume format",
			give: "1609459200000,28923.63000000,29031.34000000,28690.17000000,28995.13000000,vol",
			err:  ErrInvalidVolumeFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewBinanceCSVCandlestickReader(csv.NewReader(strings.NewReader(tt.give)))
			k, err := reader.Read()
			assert.Equal(t, tt.err, err)
			assert.Equal(t, tt.want, k)
		})
	}
}

func TestCSVCandlestickReader_ReadWithMetaTraderDecoder(t *testing.T) {
	tests := []struct {
		name string
		give string
		want types.Candlestick
		err  error
	}{
		{
			name: "Read DOHLCV",
			give: "11/12/2008;16:00;779.527679;780.964756;777.527679;779.964756;5",
			want: types.NewCandlestick(uint64(time.Date(2008, 12, 11, 16, 0, 0, 0, time.UTC).Unix()),
				779.527679, 780.964756, 777.527679, 779.964756, 5),
		},
		{
			name: "Not enough columns",
			give: "1609459200000;28923.63000000;29031.34000000",
			err:  ErrNotEnoughColumns,
		},
		{
			name: "Invalid price format",
			give: "11/12/2008;00:00;sixty;29031.34000000;28690.17000000;28995.13000000",
			err:  ErrInvalidPriceFormat,
		},
		{
			name: "Invalid volume format",
			give: "11/12/2008;00:00;779.527679;780.964756;777.527679;779.964756;vol",
			err:  ErrInvalidVolumeFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewMetaTraderCSVCandlestickReader(csv.NewReader(strings.NewReader(tt.give)))
			k, err := reader.Read()
			assert.Equal(t, tt.err, err)
			assert.Equal(t, tt.want, k)
		})
	}
}

func TestCSVCandlestickReader_ReadAll(t *testing.T) {
	records := []string{
		"1609459200000,28923.63000000,29031.34000000,28690.17000000,28995.13000000,2311.81144500",
		"1609459300000,28928.63000000,30031.34000000,22690.17000000,28495.13000000,3000.00",
	}
	reader := NewBinanceCSVCandlestickReader(csv.NewReader(strings.NewReader(strings.Join(records, "\n"))))
	ks, err := reader.ReadAll()
	assert.NoError(t, err)
	assert.Len(t, ks, 2)

	reader = NewBinanceCSVCandlestickReader(csv.NewReader(strings.NewReader(records[0] + "\n1609459300000,1,2")))
	_, err = reader.ReadAll()
	assert.ErrorIs(t, err, ErrNotEnoughColumns)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReaderMakerByFormat(t *testing.T) {
	for _, format := range []string{"", FormatPlain, FormatBinance, FormatMetaTrader} {
		maker, err := ReaderMakerByFormat(format)
		assert.NoError(t, err, format)
		assert.NotNil(t, maker, format)
	}

	_, err := ReaderMakerByFormat("xlsx")
	assert.Error(t, err)
}
