package csvsource

import (
	"encoding/csv"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/c9s/indicatorkit/pkg/types"
)

var log = logrus.WithField("component", "csvsource")

// CandlestickReader is an interface for reading candlesticks.
type CandlestickReader interface {
	Read() (types.Candlestick, error)
	ReadAll() ([]types.Candlestick, error)
}

// ReadCandlesticksFromCSV reads all the .csv files in a given directory or a single file into a slice of Candlesticks.
// Wraps a default CSVCandlestickReader with the plain decoder for convenience.
func ReadCandlesticksFromCSV(path string) ([]types.Candlestick, error) {
	return ReadCandlesticksFromCSVWithDecoder(path, NewPlainCSVCandlestickReader)
}

// ReadCandlesticksFromCSVWithDecoder permits using a custom CSVCandlestickReader.
// The files are read in lexical order; the bars are returned in file order, unsorted.
func ReadCandlesticksFromCSVWithDecoder(path string, maker MakeCSVCandlestickReader) ([]types.Candlestick, error) {
	var candlesticks []types.Candlestick

	err := filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".csv" {
			return nil
		}
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		//nolint:errcheck // Read ops only so safe to ignore err return
		defer file.Close()
		reader := maker(csv.NewReader(file))
		ks, err := reader.ReadAll()
		if err != nil {
			return errors.Wrapf(err, "read %s", path)
		}

		log.Debugf("read %d candlesticks from %s", len(ks), path)
		candlesticks = append(candlesticks, ks...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return candlesticks, nil
}
