package csvsource

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"

	"github.com/c9s/indicatorkit/pkg/types"
)

var _ CandlestickReader = (*CSVCandlestickReader)(nil)

// CSVCandlestickReader is a CandlestickReader that reads from a CSV file.
//
// A first record that fails on its time column is taken as a header row and skipped.
type CSVCandlestickReader struct {
	csv     *csv.Reader
	decoder CSVCandlestickDecoder
	line    int
}

// MakeCSVCandlestickReader is a factory method type that creates a new CSVCandlestickReader.
type MakeCSVCandlestickReader func(csv *csv.Reader) *CSVCandlestickReader

// NewCSVCandlestickReader creates a new CSVCandlestickReader with the default plain decoder.
func NewCSVCandlestickReader(csv *csv.Reader) *CSVCandlestickReader {
	return NewPlainCSVCandlestickReader(csv)
}

// NewCSVCandlestickReaderWithDecoder creates a new CSVCandlestickReader with the given decoder.
func NewCSVCandlestickReaderWithDecoder(csv *csv.Reader, decoder CSVCandlestickDecoder) *CSVCandlestickReader {
	// the optional volume column makes the record length vary
	csv.FieldsPerRecord = -1
	return &CSVCandlestickReader{
		csv:     csv,
		decoder: decoder,
	}
}

// Read reads the next Candlestick from the underlying CSV data.
func (r *CSVCandlestickReader) Read() (types.Candlestick, error) {
	for {
		rec, err := r.csv.Read()
		if err != nil {
			return types.Candlestick{}, err
		}

		r.line++
		k, err := r.decoder(rec)
		if err == ErrInvalidTimeFormat && r.line == 1 {
			continue
		}
		return k, err
	}
}

// ReadAll reads all the Candlesticks from the underlying CSV data.
func (r *CSVCandlestickReader) ReadAll() ([]types.Candlestick, error) {
	var ks []types.Candlestick
	for {
		k, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", r.line)
		}
		ks = append(ks, k)
	}

	return ks, nil
}

// ReaderMakerByFormat returns the reader factory of a named format: plain, binance or metatrader.
func ReaderMakerByFormat(format string) (MakeCSVCandlestickReader, error) {
	switch format {
	case "", FormatPlain:
		return NewPlainCSVCandlestickReader, nil
	case FormatBinance:
		return NewBinanceCSVCandlestickReader, nil
	case FormatMetaTrader:
		return NewMetaTraderCSVCandlestickReader, nil
	}

	return nil, errors.Errorf("unsupported csv format: %q", format)
}

const (
	FormatPlain      = "plain"
	FormatBinance    = "binance"
	FormatMetaTrader = "metatrader"
)
