package timeseries

import (
	"math"
	"sort"
	"testing"

	"pgregory.net/rapid"
)

func genValues(rt *rapid.T, label string) []float64 {
	return rapid.SliceOfN(rapid.Float64Range(-1e6, 1e6), 1, 50).Draw(rt, label).([]float64)
}

// non-decreasing times of length n built from non-negative deltas
func genTimes(rt *rapid.T, n int, label string) []float64 {
	start := rapid.Float64Range(-1e6, 1e6).Draw(rt, label+"_start").(float64)
	times := make([]float64, n)
	cur := start
	for i := 0; i < n; i++ {
		cur += rapid.Float64Range(0, 100).Draw(rt, label+"_delta").(float64)
		times[i] = cur
	}
	return times
}

func TestPropDefaultTimesAreIndices(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		values := genValues(rt, "values")
		ts, err := New(values, nil)
		if err != nil {
			rt.Fatalf("New: %v", err)
		}
		for i, p := range ts.Items() {
			if p.Time != float64(i) || p.Value != values[i] {
				rt.Fatalf("pair %d = (%v, %v), want (%d, %v)", i, p.Time, p.Value, i, values[i])
			}
		}
	})
}

func TestPropPairsZipTimesValues(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		values := genValues(rt, "values")
		times := genTimes(rt, len(values), "times")
		ts, err := New(values, times)
		if err != nil {
			rt.Fatalf("New: %v", err)
		}
		items := ts.Items()
		if len(items) != len(values) {
			rt.Fatalf("got %d pairs, want %d", len(items), len(values))
		}
		for i, p := range items {
			if p.Time != times[i] || p.Value != values[i] {
				rt.Fatalf("pair %d = (%v, %v), want (%v, %v)", i, p.Time, p.Value, times[i], values[i])
			}
		}
	})
}

func TestPropSetAtKeepsTime(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		values := genValues(rt, "values")
		ts, err := New(values, nil)
		if err != nil {
			rt.Fatalf("New: %v", err)
		}
		i := rapid.IntRange(0, len(values)-1).Draw(rt, "i").(int)
		v := rapid.Float64Range(-1e6, 1e6).Draw(rt, "v").(float64)

		timesBefore := ts.Times()
		if err := ts.SetAt(i, v); err != nil {
			rt.Fatalf("SetAt: %v", err)
		}
		got, err := ts.At(i)
		if err != nil {
			rt.Fatalf("At: %v", err)
		}
		if got != v {
			rt.Fatalf("At(%d) = %v after SetAt(%d, %v)", i, got, i, v)
		}
		if ts.Times()[i] != timesBefore[i] {
			rt.Fatalf("time at %d changed from %v to %v", i, timesBefore[i], ts.Times()[i])
		}
	})
}

func TestPropNegCancels(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		values := genValues(rt, "values")
		ts, err := New(values, nil)
		if err != nil {
			rt.Fatalf("New: %v", err)
		}
		sum, err := ts.Add(ts.Neg())
		if err != nil {
			rt.Fatalf("Add: %v", err)
		}
		if sum.NonZero() {
			rt.Fatalf("series plus its negation has magnitude %v", sum.Magnitude())
		}
	})
}

func TestPropAddCommutes(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := genValues(rt, "a")
		b := make([]float64, len(a))
		for i := range b {
			b[i] = rapid.Float64Range(-1e6, 1e6).Draw(rt, "b").(float64)
		}
		lhs, err := New(a, nil)
		if err != nil {
			rt.Fatalf("New: %v", err)
		}
		rhs, err := New(b, nil)
		if err != nil {
			rt.Fatalf("New: %v", err)
		}

		ab, err := lhs.Add(rhs)
		if err != nil {
			rt.Fatalf("Add: %v", err)
		}
		ba, err := rhs.Add(lhs)
		if err != nil {
			rt.Fatalf("Add: %v", err)
		}
		eq, err := ab.Equal(ba)
		if err != nil {
			rt.Fatalf("Equal: %v", err)
		}
		if !eq {
			rt.Fatalf("a+b != b+a: %v vs %v", ab, ba)
		}
	})
}

func TestPropInterpolateAtStoredTimes(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		values := rapid.SliceOfN(rapid.Float64Range(-1000, 1000), 3, 30).Draw(rt, "values").([]float64)
		// strictly increasing times keep every interior point inside a bracket
		times := make([]float64, len(values))
		cur := 0.0
		for i := range times {
			cur += rapid.Float64Range(0.5, 10).Draw(rt, "delta").(float64)
			times[i] = cur
		}
		ats, err := NewArray(times, values)
		if err != nil {
			rt.Fatalf("NewArray: %v", err)
		}

		i := rapid.IntRange(1, len(values)-2).Draw(rt, "i").(int)
		got, err := ats.Interpolate([]float64{times[i]})
		if err != nil {
			rt.Fatalf("Interpolate: %v", err)
		}
		if math.Abs(got[0]-values[i]) > 1e-6 {
			rt.Fatalf("interpolating at stored time %v gave %v, want %v", times[i], got[0], values[i])
		}
	})
}

func TestPropInterpolateInsideBracketBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		values := rapid.SliceOfN(rapid.Float64Range(-1000, 1000), 2, 30).Draw(rt, "values").([]float64)
		times := make([]float64, len(values))
		cur := 0.0
		for i := range times {
			cur += rapid.Float64Range(0.5, 10).Draw(rt, "delta").(float64)
			times[i] = cur
		}
		ats, err := NewArray(times, values)
		if err != nil {
			rt.Fatalf("NewArray: %v", err)
		}

		q := rapid.Float64Range(times[0], times[len(times)-1]).Draw(rt, "q").(float64)
		got, err := ats.Interpolate([]float64{q})
		if err != nil {
			rt.Fatalf("Interpolate: %v", err)
		}
		if q <= times[0] || q >= times[len(times)-1] {
			// boundary queries return the boundary stored time
			return
		}
		k := sort.SearchFloat64s(times, q)
		lo := math.Min(values[k-1], values[k])
		hi := math.Max(values[k-1], values[k])
		if got[0] < lo-1e-6 || got[0] > hi+1e-6 {
			rt.Fatalf("interpolated %v at %v outside bracket [%v, %v]", got[0], q, lo, hi)
		}
	})
}
