package skychart

import (
	"bytes"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/skychart/skychart/forecast"
)

func testStart() time.Time {
	return time.Date(2026, time.July, 1, 8, 0, 0, 0, time.UTC)
}

func testSun() forecast.SunTimes {
	return forecast.SunTimes{
		Sunrise: tptr(time.Date(2026, time.July, 1, 6, 0, 0, 0, time.UTC)),
		Sunset:  tptr(time.Date(2026, time.July, 1, 20, 0, 0, 0, time.UTC)),
	}
}

func TestRasterFillRect(t *testing.T) {
	r := NewRaster(100, 100)
	r.FillRect(10, 10, 50, 50, colorful.Color{R: 1}, 1)

	img := r.Image()
	c := img.RGBAAt(30, 30)
	if c.R < 200 {
		t.Errorf("pixel inside rect = %+v, want red", c)
	}
	if c := img.RGBAAt(5, 5); c.A != 0 {
		t.Errorf("pixel outside rect = %+v, want untouched", c)
	}
}

func TestRasterFillCircle(t *testing.T) {
	r := NewRaster(100, 100)
	r.FillCircle(50, 50, 20, colorful.Color{B: 1}, 1)

	img := r.Image()
	if c := img.RGBAAt(50, 50); c.B < 200 {
		t.Errorf("pixel at center = %+v, want blue", c)
	}
	if c := img.RGBAAt(10, 10); c.A != 0 {
		t.Errorf("pixel outside circle = %+v, want untouched", c)
	}
}

func TestRasterClip(t *testing.T) {
	r := NewRaster(100, 100)
	r.PushClip(0, 0, 40, 100)
	r.FillRect(0, 0, 100, 100, colorful.Color{G: 1}, 1)
	r.PopClip()

	img := r.Image()
	if c := img.RGBAAt(20, 50); c.G < 200 {
		t.Errorf("pixel inside clip = %+v, want green", c)
	}
	if c := img.RGBAAt(80, 50); c.A != 0 {
		t.Errorf("pixel outside clip = %+v, want untouched", c)
	}
}

func TestRasterViewportScale(t *testing.T) {
	r := NewRaster(200, 100)
	r.SetViewport(20, 10)
	r.FillRect(0, 0, 20, 10, colorful.Color{R: 1}, 1)

	img := r.Image()
	for _, p := range [][2]int{{5, 5}, {190, 90}, {100, 50}} {
		if c := img.RGBAAt(p[0], p[1]); c.R < 200 {
			t.Errorf("pixel (%d,%d) = %+v, want full-viewport fill", p[0], p[1], c)
		}
	}
}

func TestRasterGradientRect(t *testing.T) {
	r := NewRaster(10, 100)
	r.GradientRect(0, 0, 10, 100, GradientVertical, []ColorStop{
		{Offset: 0, Color: colorful.Color{}},
		{Offset: 1, Color: colorful.Color{R: 1, G: 1, B: 1}},
	})

	img := r.Image()
	top := img.RGBAAt(5, 2)
	bottom := img.RGBAAt(5, 97)
	if top.R >= bottom.R {
		t.Errorf("gradient not darker at top: top=%+v bottom=%+v", top, bottom)
	}
	if bottom.R < 200 {
		t.Errorf("gradient bottom = %+v, want near white", bottom)
	}
}

func TestRasterLine(t *testing.T) {
	r := NewRaster(100, 100)
	r.Line(0, 50, 100, 50, 4, colorful.Color{R: 1}, 1)

	img := r.Image()
	if c := img.RGBAAt(50, 50); c.R < 200 {
		t.Errorf("pixel on line = %+v, want red", c)
	}
	if c := img.RGBAAt(50, 10); c.A != 0 {
		t.Errorf("pixel off line = %+v, want untouched", c)
	}
}

func TestRasterText(t *testing.T) {
	r := NewRaster(100, 40)
	r.Text(10, 20, 8, "42", colorful.Color{R: 1, G: 1, B: 1}, AlignStart)

	set := 0
	img := r.Image()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A > 0 {
				set++
			}
		}
	}
	if set == 0 {
		t.Error("text drew no pixels")
	}
}

func TestRasterEncodePNG(t *testing.T) {
	r := NewRaster(20, 20)
	r.FillRect(0, 0, 20, 20, colorful.Color{B: 1}, 1)

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	sig := []byte{0x89, 'P', 'N', 'G'}
	if !bytes.HasPrefix(buf.Bytes(), sig) {
		t.Errorf("output missing PNG signature")
	}
}

func TestRasterRendersHourlyChart(t *testing.T) {
	r := NewRaster(400, 160)
	r.SetViewport(DefaultHourlyWidth, DefaultHourlyHeight)

	pts := hourlyPoints(8, testStart(), nil)
	NewHourlyChart().Render(r, pts, testSun())

	// The sky gradient alone must leave no transparent pixels.
	img := r.Image()
	for _, p := range [][2]int{{0, 0}, {399, 0}, {200, 159}} {
		if c := img.RGBAAt(p[0], p[1]); c.A != 255 {
			t.Errorf("pixel (%d,%d) alpha = %d, want opaque sky", p[0], p[1], c.A)
		}
	}
}
