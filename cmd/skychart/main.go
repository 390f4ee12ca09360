// Command skychart renders a weather forecast JSON file to a PNG chart.
//
// The input is a JSON array of forecast points in the wire format read by
// the forecast package. Sun times are computed from the location when
// latitude and longitude are given, otherwise the sky falls back to fixed
// daylight hours.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/skychart/skychart"
	"github.com/skychart/skychart/astro"
	"github.com/skychart/skychart/forecast"
)

func main() {
	var (
		input   = flag.String("in", "forecast.json", "forecast JSON file")
		output  = flag.String("out", "chart.png", "output PNG file")
		mode    = flag.String("mode", "hourly", "chart mode: hourly or daily")
		width   = flag.Int("width", 800, "image width in pixels")
		height  = flag.Int("height", 0, "image height in pixels (0 keeps the chart aspect)")
		lat     = flag.Float64("lat", 0, "latitude in degrees, positive north")
		lon     = flag.Float64("lon", 0, "longitude in degrees, positive east")
		hasLoc  = flag.Bool("loc", false, "treat -lat/-lon as a real location")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		skychart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	pts, err := loadForecast(*input)
	if err != nil {
		log.Fatalf("load forecast: %v", err)
	}

	now := time.Now()
	var sun forecast.SunTimes
	if *hasLoc {
		sun = astro.SunTimes(now, *lat, *lon)
	}

	var (
		logicalW, logicalH float64
		render             func(skychart.Canvas)
	)
	switch *mode {
	case "hourly":
		chart := skychart.NewHourlyChart()
		logicalW, logicalH = skychart.DefaultHourlyWidth, skychart.DefaultHourlyHeight
		hourly := forecast.Hourly(pts, now, skychart.DefaultHourlyMaxItems)
		render = func(dst skychart.Canvas) { chart.Render(dst, hourly, sun) }
	case "daily":
		opts := []skychart.Option{}
		if *hasLoc {
			opts = append(opts, skychart.WithLatitude(*lat))
		}
		chart := skychart.NewDailyChart(opts...)
		logicalW, logicalH = skychart.DefaultDailyWidth, skychart.DefaultDailyHeight
		daily := forecast.Daily(pts, now, skychart.DefaultDailyMaxItems)
		render = func(dst skychart.Canvas) { chart.Render(dst, daily, sun) }
	default:
		log.Fatalf("unknown mode %q", *mode)
	}

	h := *height
	if h == 0 {
		h = int(float64(*width) * logicalH / logicalW)
	}
	canvas := skychart.NewRaster(*width, h)
	canvas.SetViewport(logicalW, logicalH)
	render(canvas)

	if err := canvas.SavePNG(*output); err != nil {
		log.Fatalf("save: %v", err)
	}
	log.Printf("chart saved to %s (%dx%d)\n", *output, *width, h)
}

func loadForecast(path string) ([]forecast.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var pts []forecast.Point
	if err := json.Unmarshal(data, &pts); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return pts, nil
}
