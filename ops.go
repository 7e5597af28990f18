package timeseries

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Magnitude returns the Euclidean norm of the value sequence.
func (ts *TimeSeries) Magnitude() float64 {
	return floats.Norm(ts.values, 2)
}

// NonZero reports whether the series has a nonzero magnitude.
func (ts *TimeSeries) NonZero() bool {
	return ts.Magnitude() != 0
}

// Copy returns a deep copy of the series.
func (ts *TimeSeries) Copy() *TimeSeries {
	out := &TimeSeries{
		times:  make([]float64, len(ts.times)),
		values: make([]float64, len(ts.values)),
	}
	copy(out.times, ts.times)
	copy(out.values, ts.values)
	out.points = zipPoints(out.times, out.values)
	return out
}

// Neg returns a new series with every value negated and times preserved.
func (ts *TimeSeries) Neg() *TimeSeries {
	out := ts.Copy()
	floats.Scale(-1, out.values)
	out.points = zipPoints(out.times, out.values)
	return out
}

// seriesOperand extracts the parallel slices behind rhs. Only the two
// concrete series variants in this package are valid operands.
func seriesOperand(rhs Series) ([]float64, []float64, error) {
	switch c := rhs.(type) {
	case *TimeSeries:
		if c != nil {
			return c.times, c.values, nil
		}
	case *ArrayTimeSeries:
		if c != nil {
			return c.cols.Times(), c.cols.Values(), nil
		}
	}
	return nil, nil, ErrNonSeriesOperand
}

// checkMatch validates rhs as an operand and returns its value slice.
// The time sequences must match elementwise, not just in length.
func (ts *TimeSeries) checkMatch(rhs Series) ([]float64, error) {
	rhsTimes, rhsValues, err := seriesOperand(rhs)
	if err != nil {
		return nil, err
	}
	if !floats.Equal(ts.times, rhsTimes) {
		return nil, fmt.Errorf("%v and %v: %w", ts, rhs, ErrTimeMismatch)
	}
	return rhsValues, nil
}

// Add returns a new series with values summed elementwise. Times are
// taken from the receiver.
func (ts *TimeSeries) Add(rhs Series) (*TimeSeries, error) {
	rhsValues, err := ts.checkMatch(rhs)
	if err != nil {
		return nil, err
	}
	out := ts.Copy()
	floats.Add(out.values, rhsValues)
	out.points = zipPoints(out.times, out.values)
	return out, nil
}

// Sub returns a new series with the rhs values subtracted elementwise.
func (ts *TimeSeries) Sub(rhs Series) (*TimeSeries, error) {
	rhsValues, err := ts.checkMatch(rhs)
	if err != nil {
		return nil, err
	}
	out := ts.Copy()
	floats.Sub(out.values, rhsValues)
	out.points = zipPoints(out.times, out.values)
	return out, nil
}

// Mul returns a new series with values multiplied elementwise.
func (ts *TimeSeries) Mul(rhs Series) (*TimeSeries, error) {
	rhsValues, err := ts.checkMatch(rhs)
	if err != nil {
		return nil, err
	}
	out := ts.Copy()
	floats.Mul(out.values, rhsValues)
	out.points = zipPoints(out.times, out.values)
	return out, nil
}

// Equal reports whether both series hold the same values. It fails the
// same way the arithmetic operators do for a non-series operand or a
// differing time sequence rather than returning false.
func (ts *TimeSeries) Equal(rhs Series) (bool, error) {
	rhsValues, err := ts.checkMatch(rhs)
	if err != nil {
		return false, err
	}
	return floats.Equal(ts.values, rhsValues), nil
}

// Mean returns the arithmetic mean of the values, NaN when empty.
func (ts *TimeSeries) Mean() float64 {
	if len(ts.values) == 0 {
		return math.NaN()
	}
	return stat.Mean(ts.values, nil)
}

// Variance returns the unbiased sample variance of the values.
func (ts *TimeSeries) Variance() float64 {
	if len(ts.values) < 2 {
		return 0
	}
	return stat.Variance(ts.values, nil)
}

// Std returns the sample standard deviation of the values.
func (ts *TimeSeries) Std() float64 {
	return math.Sqrt(ts.Variance())
}

// Min returns the smallest value, NaN when empty.
func (ts *TimeSeries) Min() float64 {
	if len(ts.values) == 0 {
		return math.NaN()
	}
	return floats.Min(ts.values)
}

// Max returns the largest value, NaN when empty.
func (ts *TimeSeries) Max() float64 {
	if len(ts.values) == 0 {
		return math.NaN()
	}
	return floats.Max(ts.values)
}
