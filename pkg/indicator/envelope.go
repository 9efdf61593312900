package indicator

import (
	"fmt"

	"github.com/c9s/indicatorkit/pkg/types"
)

type EnvelopeEntry struct {
	At    uint64  `json:"at"`
	Basis float64 `json:"basis"`
	Upper float64 `json:"upper"`
	Lower float64 `json:"lower"`
}

func (e EnvelopeEntry) GetAt() uint64 {
	return e.At
}

func (e EnvelopeEntry) GetValue() float64 {
	return e.Basis
}

func (e EnvelopeEntry) String() string {
	return fmt.Sprintf("Envelope(at=%d basis=%f upper=%f lower=%f)", e.At, e.Basis, e.Upper, e.Lower)
}

// Envelope builds the bands basis * (1 ± percent/100) around an already computed basis
// series, usually an SMA.
func Envelope[T types.TimeValue](basis []T, percent float64) ([]EnvelopeEntry, error) {
	if len(basis) == 0 {
		return nil, nil
	}

	sorted, err := prepare(basis)
	if err != nil {
		return nil, err
	}

	return envelope(sorted, percent), nil
}

// EnvelopeSMA computes the SMA of the entries and builds the envelope around it.
func EnvelopeSMA[T types.TimeValue](entries []T, window int, percent float64) ([]EnvelopeEntry, error) {
	ma, err := SMA(entries, window)
	if err != nil {
		return nil, err
	}

	return envelope(ma, percent), nil
}

func envelope[T types.TimeValue](basis []T, percent float64) []EnvelopeEntry {
	if len(basis) == 0 {
		return nil
	}

	pct := percent / 100.0
	out := make([]EnvelopeEntry, len(basis))
	for i, x := range basis {
		b := x.GetValue()
		out[i] = EnvelopeEntry{
			At:    x.GetAt(),
			Basis: b,
			Upper: b * (1.0 + pct),
			Lower: b * (1.0 - pct),
		}
	}
	return out
}

var _ types.TimeValue = EnvelopeEntry{}
