package types

import (
	"strconv"
)

// CsvFormatter is an interface used for dumping object into csv file
type CsvFormatter interface {
	CsvHeader() []string
	CsvRecords() [][]string
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatAt(at uint64) string {
	return strconv.FormatUint(at, 10)
}

// CandlestickSlice attaches the csv formatting to a list of bars
type CandlestickSlice []Candlestick

func (s CandlestickSlice) CsvHeader() []string {
	return []string{"at", "open", "high", "low", "close", "volume"}
}

func (s CandlestickSlice) CsvRecords() [][]string {
	records := make([][]string, 0, len(s))
	for _, k := range s {
		records = append(records, []string{
			formatAt(k.At),
			formatFloat(k.Open),
			formatFloat(k.High),
			formatFloat(k.Low),
			formatFloat(k.Close),
			formatFloat(k.Volume),
		})
	}
	return records
}

// IndexEntrySlice attaches the csv formatting to a single-valued series
type IndexEntrySlice []IndexEntry

func (s IndexEntrySlice) CsvHeader() []string {
	return []string{"at", "value"}
}

func (s IndexEntrySlice) CsvRecords() [][]string {
	records := make([][]string, 0, len(s))
	for _, e := range s {
		records = append(records, []string{formatAt(e.At), formatFloat(e.Value)})
	}
	return records
}

// FormatFloat is the float formatting shared by the csv and table outputs
func FormatFloat(v float64) string {
	return formatFloat(v)
}

// FormatAt formats a unix timestamp the way the csv outputs do
func FormatAt(at uint64) string {
	return formatAt(at)
}
