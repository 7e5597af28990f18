package array

import (
	"errors"
	"fmt"
)

var (
	ErrLengthMismatch = errors.New("column length mismatch")
	ErrRowOutOfBounds = errors.New("row is out of bounds")
)

// Columns stores a times column and a values column in a single
// contiguous block in column major order. For m rows the first m
// entries of the backing slice are the times and the next m entries
// are the values.
type Columns struct {
	arr []float64
	m   int
}

// New copies the two equal-length columns into one backing slice.
func New(times, values []float64) (*Columns, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf(
			"times column has length %d, but values column has length %d: %w",
			len(times), len(values), ErrLengthMismatch,
		)
	}
	m := len(times)
	arr := make([]float64, 2*m)
	copy(arr[:m], times)
	copy(arr[m:], values)
	return &Columns{arr: arr, m: m}, nil
}

// Len returns the number of rows.
func (c *Columns) Len() int {
	return c.m
}

// Times returns a slice view of the times column, not a copy.
func (c *Columns) Times() []float64 {
	return c.arr[:c.m]
}

// Values returns a slice view of the values column, not a copy.
func (c *Columns) Values() []float64 {
	return c.arr[c.m:]
}

// Value retrieves the values column entry at row r.
func (c *Columns) Value(r int) (float64, error) {
	if r < 0 || r >= c.m {
		return 0, fmt.Errorf("row %d with %d rows: %w", r, c.m, ErrRowOutOfBounds)
	}
	return c.arr[c.m+r], nil
}

// SetValue replaces the values column entry at row r. The times column
// is never written after construction.
func (c *Columns) SetValue(r int, v float64) error {
	if r < 0 || r >= c.m {
		return fmt.Errorf("row %d with %d rows: %w", r, c.m, ErrRowOutOfBounds)
	}
	c.arr[c.m+r] = v
	return nil
}

// Copy returns a deep copy sharing no storage with the receiver.
func (c *Columns) Copy() *Columns {
	arr := make([]float64, len(c.arr))
	copy(arr, c.arr)
	return &Columns{arr: arr, m: c.m}
}
