package timeseries

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineSeries generates an echart line chart overlaying the given
// series. The x-axis is taken from the first series; each name pairs
// with the series at the same position.
func LineSeries(title string, names []string, series ...Series) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)
	if len(series) == 0 {
		return line
	}

	line = line.SetXAxis(series[0].Times())
	for i, s := range series {
		var name string
		if i < len(names) {
			name = names[i]
		}
		data := make([]opts.LineData, 0, s.Len())
		for _, v := range s.Values() {
			data = append(data, opts.LineData{Value: v})
		}
		line = line.AddSeries(name, data)
	}
	return line
}

// LineInterpolation generates an echart line chart of the stored points
// alongside the interpolated results at the query times.
func LineInterpolation(title string, ats *ArrayTimeSeries, queryTimes []float64) (*charts.Line, error) {
	interpolated, err := ats.Interpolate(queryTimes)
	if err != nil {
		return nil, err
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	storedData := make([]opts.LineData, 0, ats.Len())
	for _, v := range ats.Values() {
		storedData = append(storedData, opts.LineData{Value: v})
	}
	queryData := make([]opts.LineData, 0, len(interpolated))
	for _, v := range interpolated {
		queryData = append(queryData, opts.LineData{Value: v})
	}

	line.SetXAxis(queryTimes).
		AddSeries("Stored", storedData).
		AddSeries("Interpolated", queryData)
	return line, nil
}
