package csvsource

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/c9s/indicatorkit/pkg/types"
)

// WriteEntries writes the header and the records of the formatter as csv.
func WriteEntries(w io.Writer, f types.CsvFormatter) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(f.CsvHeader()); err != nil {
		return errors.Wrap(err, "writing header")
	}

	for _, rec := range f.CsvRecords() {
		if err := cw.Write(rec); err != nil {
			return errors.Wrap(err, "writing record")
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCandlesticks writes the bars into a plain csv file, creating the parent directory if needed.
func WriteCandlesticks(path string, ks []types.Candlestick) (err error) {
	if len(ks) == 0 {
		return errors.New("no candlesticks to write")
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return errors.Wrapf(err, "mkdir %s", dir)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to open file")
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return WriteEntries(file, types.CandlestickSlice(ks))
}
