package types

import "fmt"

// TimeValue is implemented by every series element the indicators can consume.
// It exposes the timestamp of the element and the scalar the indicators operate on.
type TimeValue interface {
	GetAt() uint64
	GetValue() float64
}

// IndexEntry is the plain (timestamp, value) pair returned by the single-valued indicators.
type IndexEntry struct {
	At    uint64  `json:"at"`
	Value float64 `json:"value"`
}

func NewIndexEntry(at uint64, value float64) IndexEntry {
	return IndexEntry{At: at, Value: value}
}

// ToIndexEntry projects any TimeValue into a plain IndexEntry
func ToIndexEntry(v TimeValue) IndexEntry {
	return IndexEntry{At: v.GetAt(), Value: v.GetValue()}
}

// ToIndexEntries projects a whole series, keeping the input order.
func ToIndexEntries[T TimeValue](xs []T) []IndexEntry {
	entries := make([]IndexEntry, len(xs))
	for i, x := range xs {
		entries[i] = ToIndexEntry(x)
	}
	return entries
}

func (e IndexEntry) GetAt() uint64 {
	return e.At
}

func (e IndexEntry) GetValue() float64 {
	return e.Value
}

func (e IndexEntry) String() string {
	return fmt.Sprintf("IndexEntry(at=%d value=%f)", e.At, e.Value)
}

// Values extracts the scalar values of a series
func Values[T TimeValue](xs []T) []float64 {
	values := make([]float64, len(xs))
	for i, x := range xs {
		values[i] = x.GetValue()
	}
	return values
}

var _ TimeValue = IndexEntry{}
