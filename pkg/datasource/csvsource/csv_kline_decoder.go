package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/c9s/indicatorkit/pkg/types"
)

// MetaTraderTimeFormat is the time format expected by the MetaTrader decoder when cols [0] and [1] are used.
const MetaTraderTimeFormat = "02/01/2006 15:04"

var (
	// ErrNotEnoughColumns is returned when the CSV price record does not have enough columns.
	ErrNotEnoughColumns = errors.New("not enough columns")

	// ErrInvalidTimeFormat is returned when the CSV price record does not have a valid timestamp.
	ErrInvalidTimeFormat = errors.New("cannot parse time string")

	// ErrInvalidPriceFormat is returned when the CSV price record does not prices in expected format.
	ErrInvalidPriceFormat = errors.New("OHLC prices must be in valid decimal format")

	// ErrInvalidVolumeFormat is returned when the CSV price record does not have a valid volume format.
	ErrInvalidVolumeFormat = errors.New("volume must be in valid float format")
)

// CSVCandlestickDecoder is an extension point for CSVCandlestickReader to support custom file formats.
type CSVCandlestickDecoder func(record []string) (types.Candlestick, error)

// NewPlainCSVCandlestickReader creates a new CSVCandlestickReader for at,open,high,low,close[,volume] files
// where at is a unix timestamp in seconds.
func NewPlainCSVCandlestickReader(csv *csv.Reader) *CSVCandlestickReader {
	return NewCSVCandlestickReaderWithDecoder(csv, PlainCSVCandlestickDecoder)
}

// PlainCSVCandlestickDecoder decodes at,open,high,low,close[,volume] with at in unix seconds.
func PlainCSVCandlestickDecoder(record []string) (types.Candlestick, error) {
	if len(record) < 5 {
		return types.Candlestick{}, ErrNotEnoughColumns
	}

	at, err := strconv.ParseUint(record[0], 10, 64)
	if err != nil {
		return types.Candlestick{}, ErrInvalidTimeFormat
	}

	return decodeOHLCV(at, record[1:])
}

// NewBinanceCSVCandlestickReader creates a new CSVCandlestickReader for Binance CSV files.
func NewBinanceCSVCandlestickReader(csv *csv.Reader) *CSVCandlestickReader {
	return NewCSVCandlestickReaderWithDecoder(csv, BinanceCSVCandlestickDecoder)
}

// BinanceCSVCandlestickDecoder decodes a CSV record from the Binance or Bybit kline dumps,
// the open time in milliseconds is converted to unix seconds.
func BinanceCSVCandlestickDecoder(record []string) (types.Candlestick, error) {
	if len(record) < 5 {
		return types.Candlestick{}, ErrNotEnoughColumns
	}

	msec, err := strconv.ParseInt(record[0], 10, 64)
	if err != nil || msec < 0 {
		return types.Candlestick{}, ErrInvalidTimeFormat
	}

	return decodeOHLCV(uint64(time.UnixMilli(msec).Unix()), record[1:])
}

// NewMetaTraderCSVCandlestickReader creates a new CSVCandlestickReader for MetaTrader CSV files.
func NewMetaTraderCSVCandlestickReader(csv *csv.Reader) *CSVCandlestickReader {
	csv.Comma = ';'
	return NewCSVCandlestickReaderWithDecoder(csv, MetaTraderCSVCandlestickDecoder)
}

// MetaTraderCSVCandlestickDecoder decodes a CSV record from MetaTrader into a Candlestick.
func MetaTraderCSVCandlestickDecoder(record []string) (types.Candlestick, error) {
	if len(record) < 6 {
		return types.Candlestick{}, ErrNotEnoughColumns
	}

	tStr := fmt.Sprintf("%s %s", record[0], record[1])
	t, err := time.Parse(MetaTraderTimeFormat, tStr)
	if err != nil || t.Unix() < 0 {
		return types.Candlestick{}, ErrInvalidTimeFormat
	}

	return decodeOHLCV(uint64(t.Unix()), record[2:])
}

// decodeOHLCV parses open, high, low, close and the optional volume
func decodeOHLCV(at uint64, cols []string) (types.Candlestick, error) {
	var prices [4]float64
	for i := range prices {
		v, err := strconv.ParseFloat(cols[i], 64)
		if err != nil {
			return types.Candlestick{}, ErrInvalidPriceFormat
		}
		prices[i] = v
	}

	var volume float64
	if len(cols) > 4 {
		v, err := strconv.ParseFloat(cols[4], 64)
		if err != nil {
			return types.Candlestick{}, ErrInvalidVolumeFormat
		}
		volume = v
	}

	return types.NewCandlestick(at, prices[0], prices[1], prices[2], prices[3], volume), nil
}
