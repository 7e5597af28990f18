// tsdemo generates a synthetic series, interpolates it onto a denser
// time axis and writes both as an html chart page.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/pkg/profile"

	timeseries "github.com/chronoseq/go-timeseries"
	"github.com/chronoseq/go-timeseries/seriesgen"
)

func main() {
	out := flag.String("out", "tsdemo.html", "output html path")
	n := flag.Int("n", 7*24*60, "number of stored points")
	prof := flag.Bool("profile", false, "write a cpu profile to the current directory")
	flag.Parse()

	if *prof {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(logger, *out, *n); err != nil {
		logger.Error("tsdemo failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, out string, n int) error {
	period := 86400.0
	t := seriesgen.Times(n, 0, 60)
	y := make(seriesgen.Values, n)
	y.Add(seriesgen.Const(n, 98.3)).
		Add(seriesgen.Wave(t, 10.5, period, 1.0, 2*60*60)).
		Add(seriesgen.Wave(t, 23.4, period, 7.0, 6*60*60)).
		Add(seriesgen.Noise(t, 3.2, 3.2, period, 5.0, 0.0)).
		Add(seriesgen.Change(t, t[n/2], 10.0, 0.0))

	stored, err := y.ArraySeries(t)
	if err != nil {
		return err
	}

	queryTimes := seriesgen.Times(2*n, 0, 30)
	interpolated, err := stored.Interpolate(queryTimes)
	if err != nil {
		return err
	}
	dense, err := timeseries.New(interpolated, queryTimes)
	if err != nil {
		return err
	}
	logger.Info("interpolated series",
		"stored", stored.Len(),
		"dense", dense.Len(),
		"magnitude", dense.Magnitude(),
	)

	interpChart, err := timeseries.LineInterpolation("Interpolation", stored, queryTimes)
	if err != nil {
		return err
	}
	page := components.NewPage()
	page.AddCharts(
		timeseries.LineSeries("Stored Series", []string{"Stored"}, stored),
		interpChart,
	)

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return err
	}
	logger.Info("wrote chart page", "path", out)
	return nil
}
