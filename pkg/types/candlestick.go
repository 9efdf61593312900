package types

import (
	"fmt"
	"math"
)

type Direction int

const DirectionUp = 1
const DirectionNone = 0
const DirectionDown = -1

// Candlestick is one OHLCV bar. At is the bar timestamp, usually a unix time in seconds.
//
// A Candlestick is also a TimeValue: its value is the close price, so candlesticks can be
// passed directly to the averaging and oscillator functions.
type Candlestick struct {
	At     uint64  `json:"at"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

func NewCandlestick(at uint64, open, high, low, close, volume float64) Candlestick {
	return Candlestick{
		At:     at,
		Open:   open,
		High:   high,
		Low:    low,
		Close:  close,
		Volume: volume,
	}
}

func (k Candlestick) GetAt() uint64 {
	return k.At
}

func (k Candlestick) GetValue() float64 {
	return k.Close
}

// TypicalPrice is (high + low + close) / 3
func (k Candlestick) TypicalPrice() float64 {
	return (k.High + k.Low + k.Close) / 3.0
}

// MedianPrice is (high + low) / 2
func (k Candlestick) MedianPrice() float64 {
	return (k.High + k.Low) * 0.5
}

func (k Candlestick) TypicalPriceEntry() IndexEntry {
	return IndexEntry{At: k.At, Value: k.TypicalPrice()}
}

func (k Candlestick) MedianPriceEntry() IndexEntry {
	return IndexEntry{At: k.At, Value: k.MedianPrice()}
}

func (k Candlestick) VolumeEntry() IndexEntry {
	return IndexEntry{At: k.At, Value: k.Volume}
}

// IsBullish returns true for a white candle (open < close)
func (k Candlestick) IsBullish() bool {
	return k.Open < k.Close
}

// IsBearish returns true for a black candle (open > close)
func (k Candlestick) IsBearish() bool {
	return k.Open > k.Close
}

func (k Candlestick) Direction() Direction {
	switch {
	case k.IsBullish():
		return DirectionUp
	case k.IsBearish():
		return DirectionDown
	}
	return DirectionNone
}

func (k Candlestick) BodySize() float64 {
	return math.Abs(k.Open - k.Close)
}

func (k Candlestick) BodyHigh() float64 {
	return math.Max(k.Open, k.Close)
}

func (k Candlestick) BodyLow() float64 {
	return math.Min(k.Open, k.Close)
}

func (k Candlestick) UpperShadowSize() float64 {
	return k.High - k.BodyHigh()
}

func (k Candlestick) LowerShadowSize() float64 {
	return k.BodyLow() - k.Low
}

func (k Candlestick) String() string {
	return fmt.Sprintf("Candlestick(at=%d o=%f h=%f l=%f c=%f v=%f)",
		k.At, k.Open, k.High, k.Low, k.Close, k.Volume)
}

// TypicalPrices projects the bars into typical price entries
func TypicalPrices(ks []Candlestick) []IndexEntry {
	entries := make([]IndexEntry, len(ks))
	for i, k := range ks {
		entries[i] = k.TypicalPriceEntry()
	}
	return entries
}

// MedianPrices projects the bars into median price entries
func MedianPrices(ks []Candlestick) []IndexEntry {
	entries := make([]IndexEntry, len(ks))
	for i, k := range ks {
		entries[i] = k.MedianPriceEntry()
	}
	return entries
}

// Volumes projects the bars into volume entries
func Volumes(ks []Candlestick) []IndexEntry {
	entries := make([]IndexEntry, len(ks))
	for i, k := range ks {
		entries[i] = k.VolumeEntry()
	}
	return entries
}

var _ TimeValue = Candlestick{}
