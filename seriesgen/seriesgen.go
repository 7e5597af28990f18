// Package seriesgen builds synthetic series for tests and demos. Time
// axes are plain float64 sequences; the masking helpers interpret them
// as Unix seconds.
package seriesgen

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
	"gonum.org/v1/gonum/floats"

	timeseries "github.com/chronoseq/go-timeseries"
)

// Times returns n non-decreasing time points starting at start and
// spaced by step.
func Times(n int, start, step float64) []float64 {
	t := make([]float64, n)
	for i := range t {
		t[i] = start + float64(i)*step
	}
	return t
}

type Values []float64

func (v Values) Add(src Values) Values {
	floats.Add(v, src)
	return v
}

// SetConst overwrites entries whose time falls in [start, end).
func (v Values) SetConst(t []float64, val, start, end float64) Values {
	for i := range v {
		if t[i] >= start && t[i] < end {
			v[i] = val
		}
	}
	return v
}

// MaskWithWeekend zeroes every entry whose time does not fall on a
// weekend, treating times as Unix seconds in UTC.
func (v Values) MaskWithWeekend(t []float64) Values {
	for i := range v {
		switch unixTime(t[i]).Weekday() {
		case time.Saturday, time.Sunday:
			continue
		default:
			v[i] = 0.0
		}
	}
	return v
}

// MaskWithWorkdays zeroes every entry whose time does not fall on a
// business day of the given calendar, treating times as Unix seconds
// in UTC.
func (v Values) MaskWithWorkdays(t []float64, c *cal.BusinessCalendar) Values {
	for i := range v {
		if !c.IsWorkday(unixTime(t[i])) {
			v[i] = 0.0
		}
	}
	return v
}

func unixTime(t float64) time.Time {
	return time.Unix(int64(t), 0).UTC()
}

// USBusinessCalendar returns a business calendar observing US holidays.
func USBusinessCalendar() *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(us.Holidays...)
	return c
}

func Const(n int, val float64) Values {
	y := make([]float64, n)
	for i := range y {
		y[i] = val
	}
	return Values(y)
}

func Wave(t []float64, amp, period, order, timeOffset float64) Values {
	y := make([]float64, len(t))
	for i := range t {
		y[i] = amp * math.Sin(2.0*math.Pi*order/period*(t[i]+timeOffset))
	}
	return Values(y)
}

func Noise(t []float64, noiseScale, amp, period, order, timeOffset float64) Values {
	y := make([]float64, len(t))
	for i := range t {
		scale := noiseScale + amp*math.Sin(2.0*math.Pi*order/period*(t[i]+timeOffset))
		y[i] = rand.NormFloat64() * scale
	}
	return Values(y)
}

// Change adds a level shift of bias plus a ramp of slope per time unit
// starting at the changepoint chpt.
func Change(t []float64, chpt, bias, slope float64) Values {
	y := make([]float64, len(t))
	for i := range t {
		if t[i] >= chpt {
			y[i] = bias + slope*(t[i]-chpt)
		}
	}
	return Values(y)
}

// Series pairs the values with the time axis as a TimeSeries.
func (v Values) Series(t []float64) (*timeseries.TimeSeries, error) {
	return timeseries.New(v, t)
}

// ArraySeries pairs the values with the time axis as an ArrayTimeSeries.
func (v Values) ArraySeries(t []float64) (*timeseries.ArrayTimeSeries, error) {
	return timeseries.NewArray(t, v)
}
