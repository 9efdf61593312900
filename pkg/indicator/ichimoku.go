package indicator

import (
	"sort"

	"github.com/c9s/indicatorkit/pkg/types"
)

// IchimokuEntry is the snapshot of every Ichimoku line at a timestamp; a nil field means
// the line has no value there.
type IchimokuEntry struct {
	At             uint64   `json:"at"`
	ConversionLine *float64 `json:"conversionLine,omitempty"`
	BaseLine       *float64 `json:"baseLine,omitempty"`
	LeadingSpanA   *float64 `json:"leadingSpanA,omitempty"`
	LeadingSpanB   *float64 `json:"leadingSpanB,omitempty"`
	LaggingSpan    *float64 `json:"laggingSpan,omitempty"`
}

// IchimokuData holds the five Ichimoku lines, each sorted by timestamp.
type IchimokuData struct {
	ConversionLine []types.IndexEntry `json:"conversionLine"`
	BaseLine       []types.IndexEntry `json:"baseLine"`
	LeadingSpanA   []types.IndexEntry `json:"leadingSpanA"`
	LeadingSpanB   []types.IndexEntry `json:"leadingSpanB"`
	LaggingSpan    []types.IndexEntry `json:"laggingSpan"`
}

// Get returns the values of all the lines at the given timestamp.
// ok is false when none of the lines has a value there.
func (d *IchimokuData) Get(at uint64) (entry IchimokuEntry, ok bool) {
	entry.At = at
	entry.ConversionLine = lookupAt(d.ConversionLine, at)
	entry.BaseLine = lookupAt(d.BaseLine, at)
	entry.LeadingSpanA = lookupAt(d.LeadingSpanA, at)
	entry.LeadingSpanB = lookupAt(d.LeadingSpanB, at)
	entry.LaggingSpan = lookupAt(d.LaggingSpan, at)

	ok = entry.ConversionLine != nil ||
		entry.BaseLine != nil ||
		entry.LeadingSpanA != nil ||
		entry.LeadingSpanB != nil ||
		entry.LaggingSpan != nil
	return entry, ok
}

func lookupAt(xs []types.IndexEntry, at uint64) *float64 {
	i := sort.Search(len(xs), func(i int) bool { return xs[i].At >= at })
	if i < len(xs) && xs[i].At == at {
		v := xs[i].Value
		return &v
	}
	return nil
}

// IchimokuDefault uses the conventional 9 / 26 / 52 / 26 parameters.
func IchimokuDefault(entries []types.Candlestick) (*IchimokuData, error) {
	return Ichimoku(entries, 9, 26, 52, 26)
}

// Ichimoku computes the Ichimoku Kinko Hyo lines:
//
//	conversion line = (highestHigh + lowestLow) / 2 over conversionLen bars
//	base line       = (highestHigh + lowestLow) / 2 over baseLen bars
//	leading span A  = (conversion + base) / 2, shifted forward
//	leading span B  = (highestHigh + lowestLow) / 2 over leadingSpanBLen bars, shifted forward
//	lagging span    = close, shifted backward
//
// The shift is (span - 1) bar intervals, where the bar interval is the distance between
// the last two bars. The input is expected to be evenly spaced; on irregular input the
// shifted timestamps do not fall on bar timestamps. Lagging entries that would move
// before the zero timestamp are dropped.
func Ichimoku(entries []types.Candlestick, conversionLen, baseLen, leadingSpanBLen, span int) (*IchimokuData, error) {
	sorted, err := prepareCandlesticks(entries)
	if err != nil {
		return nil, err
	}

	var shift uint64
	if n := len(sorted); n >= 2 && span > 0 {
		shift = (sorted[n-1].At - sorted[n-2].At) * uint64(span-1)
	}

	conversion := midpointLine(sorted, conversionLen)
	base := midpointLine(sorted, baseLen)

	return &IchimokuData{
		ConversionLine: conversion,
		BaseLine:       base,
		LeadingSpanA:   shiftForward(leadingSpanA(conversion, conversionLen, base, baseLen), shift),
		LeadingSpanB:   shiftForward(midpointLine(sorted, leadingSpanBLen), shift),
		LaggingSpan:    shiftBackward(types.ToIndexEntries(sorted), shift),
	}, nil
}

// midpointLine is (highestHigh + lowestLow) / 2 of each window
func midpointLine(sorted []types.Candlestick, window int) []types.IndexEntry {
	if notEnoughData(len(sorted), window) {
		return nil
	}

	out := make([]types.IndexEntry, 0, len(sorted)-window+1)
	for _, w := range types.Windows(sorted, window) {
		out = append(out, types.IndexEntry{
			At:    w[len(w)-1].At,
			Value: (highestHigh(w) + lowestLow(w)) / 2.0,
		})
	}
	return out
}

// leadingSpanA averages the two lines over their common anchors; a line computed with
// a longer window starts later by the difference of the windows.
func leadingSpanA(conversion []types.IndexEntry, conversionLen int, base []types.IndexEntry, baseLen int) []types.IndexEntry {
	shorter, longer := conversion, base
	offset := baseLen - conversionLen
	if offset < 0 {
		shorter, longer = base, conversion
		offset = -offset
	}

	out := make([]types.IndexEntry, 0, len(longer))
	for i, l := range longer {
		if i+offset >= len(shorter) {
			break
		}
		out = append(out, types.IndexEntry{
			At:    l.At,
			Value: (l.Value + shorter[i+offset].Value) / 2.0,
		})
	}
	return out
}

func shiftForward(xs []types.IndexEntry, shift uint64) []types.IndexEntry {
	out := make([]types.IndexEntry, len(xs))
	for i, x := range xs {
		out[i] = types.IndexEntry{At: x.At + shift, Value: x.Value}
	}
	return out
}

func shiftBackward(xs []types.IndexEntry, shift uint64) []types.IndexEntry {
	out := make([]types.IndexEntry, 0, len(xs))
	for _, x := range xs {
		if x.At < shift {
			continue
		}
		out = append(out, types.IndexEntry{At: x.At - shift, Value: x.Value})
	}
	return out
}
