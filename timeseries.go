// Package timeseries provides a small in-memory ordered time series
// value type with elementwise arithmetic, plus an array-backed variant
// supporting linear interpolation.
package timeseries

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strings"
)

var (
	ErrInvalidData      = errors.New("non-numeric entry in sequence")
	ErrUnorderedTimes   = errors.New("time sequence must be non-decreasing")
	ErrLengthMismatch   = errors.New("time and value sequences must have the same lengths")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrTimeMismatch     = errors.New("series must have the same time points")
	ErrNonSeriesOperand = errors.New("operand must be a time series")
	ErrInsufficientData = errors.New("requires at least one time-value pair")
)

// Point is a single (time, value) pair of a series.
type Point struct {
	Time  float64 `json:"time"`
	Value float64 `json:"value"`
}

// Series is the read contract shared by TimeSeries and ArrayTimeSeries.
// Binary operations are defined only between the two concrete
// implementations in this package.
type Series interface {
	Len() int
	Times() []float64
	Values() []float64
	Items() []Point
}

// TimeSeries stores a single ordered set of numerical data as parallel
// time and value slices of equal length. Times are non-decreasing.
// Instances own their storage exclusively; inputs are copied on
// construction and snapshots are copied on the way out.
type TimeSeries struct {
	times  []float64
	values []float64
	points []Point
}

// New returns a TimeSeries from a value slice and an optional time
// slice. A nil or empty times slice defaults to the indices
// 0..len(values)-1. Empty values produce an empty series regardless of
// times.
//
// The argument order is (values, times); NewArray takes (times, values).
func New(values, times []float64) (*TimeSeries, error) {
	if len(values) == 0 {
		return &TimeSeries{}, nil
	}
	if !validNumeric(values) {
		return nil, fmt.Errorf("values: %w", ErrInvalidData)
	}
	if len(times) > 0 {
		if !validNumeric(times) {
			return nil, fmt.Errorf("times: %w", ErrInvalidData)
		}
		if !nonDecreasing(times) {
			return nil, ErrUnorderedTimes
		}
		if len(times) != len(values) {
			return nil, fmt.Errorf(
				"times has length %d, but values has length %d: %w",
				len(times), len(values), ErrLengthMismatch,
			)
		}
	}

	ts := &TimeSeries{
		times:  make([]float64, len(values)),
		values: make([]float64, len(values)),
	}
	copy(ts.values, values)
	if len(times) > 0 {
		copy(ts.times, times)
	} else {
		for i := range ts.times {
			ts.times[i] = float64(i)
		}
	}
	ts.points = zipPoints(ts.times, ts.values)
	return ts, nil
}

// validNumeric reports whether every entry in seq is a number. NaN is
// the one non-number a float64 can hold.
func validNumeric(seq []float64) bool {
	for _, x := range seq {
		if math.IsNaN(x) {
			return false
		}
	}
	return true
}

func nonDecreasing(seq []float64) bool {
	for i := 1; i < len(seq); i++ {
		if seq[i] < seq[i-1] {
			return false
		}
	}
	return true
}

func zipPoints(times, values []float64) []Point {
	points := make([]Point, len(times))
	for i := range points {
		points[i] = Point{Time: times[i], Value: values[i]}
	}
	return points
}

// Len returns the number of (time, value) pairs.
func (ts *TimeSeries) Len() int {
	return len(ts.points)
}

// At returns the value at index i.
func (ts *TimeSeries) At(i int) (float64, error) {
	if i < 0 || i >= len(ts.values) {
		return 0, fmt.Errorf("index %d with length %d: %w", i, len(ts.values), ErrIndexOutOfRange)
	}
	return ts.values[i], nil
}

// SetAt replaces the value at index i. The time at index i is unchanged.
func (ts *TimeSeries) SetAt(i int, value float64) error {
	if i < 0 || i >= len(ts.values) {
		return fmt.Errorf("index %d with length %d: %w", i, len(ts.values), ErrIndexOutOfRange)
	}
	ts.values[i] = value
	ts.points[i] = Point{Time: ts.times[i], Value: value}
	return nil
}

// Contains reports whether any value in the series equals v.
func (ts *TimeSeries) Contains(v float64) bool {
	for _, x := range ts.values {
		if x == v {
			return true
		}
	}
	return false
}

// Values returns a copy of the value sequence.
func (ts *TimeSeries) Values() []float64 {
	out := make([]float64, len(ts.values))
	copy(out, ts.values)
	return out
}

// Times returns a copy of the time sequence.
func (ts *TimeSeries) Times() []float64 {
	out := make([]float64, len(ts.times))
	copy(out, ts.times)
	return out
}

// Items returns the paired sequence kept in sync with SetAt.
func (ts *TimeSeries) Items() []Point {
	return ts.points
}

// IterValues returns a lazy sequence over the values. The sequence is
// restartable and multiple iterations do not interfere.
func (ts *TimeSeries) IterValues() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, v := range ts.values {
			if !yield(v) {
				return
			}
		}
	}
}

// IterTimes returns a lazy sequence over the times.
func (ts *TimeSeries) IterTimes() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, t := range ts.times {
			if !yield(t) {
				return
			}
		}
	}
}

// IterItems returns a lazy sequence over (time, value) pairs.
func (ts *TimeSeries) IterItems() iter.Seq2[float64, float64] {
	return func(yield func(float64, float64) bool) {
		for _, p := range ts.points {
			if !yield(p.Time, p.Value) {
				return
			}
		}
	}
}

func (ts *TimeSeries) String() string {
	return formatSeries("TimeSeries", ts.points)
}

const maxStringPoints = 5

// formatSeries prints at most the first five pairs followed by an
// ellipsis, always reporting the true length.
func formatSeries(name string, points []Point) string {
	n := len(points)
	shown := points
	if n > maxStringPoints {
		shown = points[:maxStringPoints]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s(len=%d; points=[", name, n)
	for i, p := range shown {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "(%g, %g)", p.Time, p.Value)
	}
	if n > maxStringPoints {
		sb.WriteString(" ...")
	}
	sb.WriteString("])")
	return sb.String()
}
