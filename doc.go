// Package skychart renders hourly and daily weather forecast charts as
// layered procedural graphics: sky gradients, temperature curves and
// bars, wind arrows, and precipitation particle fields.
//
// # Overview
//
// The pipeline is a pure, synchronous transform: forecast points plus
// sun times go in, primitive draw operations come out. Given the same
// inputs, a chart renders identically every time, so resizes and
// refreshes never visually reshuffle particles.
//
// # Quick Start
//
//	pts := forecast.Hourly(raw, time.Now(), 12)
//	sun := astro.SunTimes(time.Now(), lat, lon)
//
//	chart := skychart.NewHourlyChart()
//	list := skychart.NewDrawList()
//	chart.Render(list, pts, sun)
//	// list.Ops() now holds the scene, back to front.
//
// To rasterize directly instead, render into a Raster and save a PNG:
//
//	r := skychart.NewRaster(800, 320)
//	r.SetViewport(skychart.DefaultHourlyWidth, skychart.DefaultHourlyHeight)
//	chart.Render(r, pts, sun)
//	r.SavePNG("hourly.png")
//
// # Architecture
//
// The library is organized into:
//   - Root: Canvas contract, DrawList and Raster backends, the hourly
//     and daily scene composers and their layers
//   - forecast: input data model, condition variants, sky phases
//   - palette: temperature/sky color mapping and visual-density policy
//   - scatter: seeded RNG and even point distribution (jittered grid,
//     Poisson-disk, Lloyd relaxation)
//   - astro: local sunrise/sunset computation
//
// # Coordinate System
//
// Charts compose against a fixed logical viewport (400x160 hourly,
// 400x150 daily by default) with the origin at the top-left, X right,
// Y down. Backends scale to device pixels.
package skychart
