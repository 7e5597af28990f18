package timeseries

import (
	"fmt"

	"github.com/spf13/cast"
)

// FromAny builds a TimeSeries from loosely typed sequences, accepting
// any entry convertible to a float64 such as ints, floats and numeric
// strings. Entries that cannot be converted fail with ErrInvalidData.
// A nil times slice defaults to the indices 0..len(values)-1.
func FromAny(values, times []any) (*TimeSeries, error) {
	v, err := toFloats(values)
	if err != nil {
		return nil, fmt.Errorf("values: %w", err)
	}
	var t []float64
	if times != nil {
		if t, err = toFloats(times); err != nil {
			return nil, fmt.Errorf("times: %w", err)
		}
	}
	return New(v, t)
}

func toFloats(seq []any) ([]float64, error) {
	out := make([]float64, len(seq))
	for i, x := range seq {
		f, err := cast.ToFloat64E(x)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%v): %w", i, x, ErrInvalidData)
		}
		out[i] = f
	}
	return out, nil
}
