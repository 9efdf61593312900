package types

import "math"

// ValidateField rejects NaN and infinite values, reporting the timestamp and the field name.
func ValidateField(at uint64, v float64, field string) error {
	if math.IsNaN(v) {
		return &ContainsNaNError{At: at, Field: field}
	}

	if math.IsInf(v, 0) {
		return &ContainsInfiniteError{At: at, Field: field}
	}

	return nil
}

// Validator is implemented by elements that carry more than one numeric field
type Validator interface {
	Validate() error
}

// ValidateList validates every element, stopping at the first invalid one.
// Elements implementing Validator check all their fields, the others check GetValue.
func ValidateList[T TimeValue](xs []T) error {
	for _, x := range xs {
		if v, ok := any(x).(Validator); ok {
			if err := v.Validate(); err != nil {
				return err
			}
			continue
		}

		if err := ValidateField(x.GetAt(), x.GetValue(), "value"); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the five numeric fields of the bar
func (k Candlestick) Validate() error {
	fields := [...]struct {
		name  string
		value float64
	}{
		{"open", k.Open},
		{"high", k.High},
		{"low", k.Low},
		{"close", k.Close},
		{"volume", k.Volume},
	}

	for _, f := range fields {
		if err := ValidateField(k.At, f.value, f.name); err != nil {
			return err
		}
	}
	return nil
}

// ValidateCandlesticks validates every bar, stopping at the first invalid one.
func ValidateCandlesticks(ks []Candlestick) error {
	for _, k := range ks {
		if err := k.Validate(); err != nil {
			return err
		}
	}
	return nil
}
