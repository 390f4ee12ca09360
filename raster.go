package skychart

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/skychart/skychart/scatter"
)

// Raster is an immediate-mode Canvas that paints into an RGBA image.
// Logical chart coordinates map to device pixels through the viewport
// scale, so one chart definition renders crisply at any output size.
//
// Icons are drawn as ring placeholders: real icon assets belong to the
// embedding layer, which would render from a DrawList instead.
type Raster struct {
	img    *image.RGBA
	scaleX float64
	scaleY float64
	clips  []image.Rectangle
}

// NewRaster creates a raster canvas of the given pixel size with an
// identity viewport.
func NewRaster(pxWidth, pxHeight int) *Raster {
	if pxWidth < 1 {
		pxWidth = 1
	}
	if pxHeight < 1 {
		pxHeight = 1
	}
	return &Raster{
		img:    image.NewRGBA(image.Rect(0, 0, pxWidth, pxHeight)),
		scaleX: 1,
		scaleY: 1,
	}
}

// SetViewport maps a logical viewport onto the full pixel area. Call it
// with the chart's logical size before rendering; the effective scale is
// the device-pixel ratio.
func (r *Raster) SetViewport(logicalW, logicalH float64) {
	if logicalW <= 0 || logicalH <= 0 {
		Logger().Warn("raster: ignoring degenerate viewport", "w", logicalW, "h", logicalH)
		return
	}
	b := r.img.Bounds()
	r.scaleX = float64(b.Dx()) / logicalW
	r.scaleY = float64(b.Dy()) / logicalH
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

// SavePNG writes the image to a PNG file.
func (r *Raster) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	defer f.Close()
	if err := r.EncodePNG(f); err != nil {
		return err
	}
	return f.Close()
}

// EncodePNG writes the image as PNG to w.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

func (r *Raster) clipRect() image.Rectangle {
	rect := r.img.Bounds()
	for _, c := range r.clips {
		rect = rect.Intersect(c)
	}
	return rect
}

func toNRGBA(c colorful.Color, opacity float64) color.NRGBA {
	clamp := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.NRGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(opacity)}
}

// fillPolygon rasterizes a closed polygon given in device coordinates.
func (r *Raster) fillPolygon(xs, ys []float64, c colorful.Color, opacity float64) {
	if len(xs) < 3 || opacity <= 0 {
		return
	}
	b := r.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(xs[0]), float32(ys[0]))
	for i := 1; i < len(xs); i++ {
		z.LineTo(float32(xs[i]), float32(ys[i]))
	}
	z.ClosePath()
	src := image.NewUniform(toNRGBA(c, opacity))
	z.Draw(r.img, r.clipRect(), src, image.Point{})
}

func (r *Raster) FillRect(x, y, w, h float64, c colorful.Color, opacity float64) {
	x0, y0 := x*r.scaleX, y*r.scaleY
	x1, y1 := (x+w)*r.scaleX, (y+h)*r.scaleY
	r.fillPolygon([]float64{x0, x1, x1, x0}, []float64{y0, y0, y1, y1}, c, opacity)
}

func (r *Raster) GradientRect(x, y, w, h float64, dir GradientDir, stops []ColorStop) {
	if w <= 0 || h <= 0 || len(stops) == 0 {
		return
	}
	sorted := sortStops(stops)
	rect := image.Rect(
		int(math.Floor(x*r.scaleX)), int(math.Floor(y*r.scaleY)),
		int(math.Ceil((x+w)*r.scaleX)), int(math.Ceil((y+h)*r.scaleY)),
	).Intersect(r.clipRect())
	if rect.Empty() {
		return
	}

	if dir == GradientHorizontal {
		x0 := x * r.scaleX
		span := w * r.scaleX
		for px := rect.Min.X; px < rect.Max.X; px++ {
			t := (float64(px) + 0.5 - x0) / span
			col := toNRGBA(colorAt(sorted, t), 1)
			strip := image.Rect(px, rect.Min.Y, px+1, rect.Max.Y)
			draw.Draw(r.img, strip, image.NewUniform(col), image.Point{}, draw.Over)
		}
		return
	}
	y0 := y * r.scaleY
	span := h * r.scaleY
	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		t := (float64(py) + 0.5 - y0) / span
		col := toNRGBA(colorAt(sorted, t), 1)
		strip := image.Rect(rect.Min.X, py, rect.Max.X, py+1)
		draw.Draw(r.img, strip, image.NewUniform(col), image.Point{}, draw.Over)
	}
}

const circleSegments = 32

func (r *Raster) FillCircle(cx, cy, radius float64, c colorful.Color, opacity float64) {
	if radius <= 0 {
		return
	}
	dcx, dcy := cx*r.scaleX, cy*r.scaleY
	rx, ry := radius*r.scaleX, radius*r.scaleY
	xs := make([]float64, circleSegments)
	ys := make([]float64, circleSegments)
	for i := 0; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		xs[i] = dcx + rx*math.Cos(a)
		ys[i] = dcy + ry*math.Sin(a)
	}
	r.fillPolygon(xs, ys, c, opacity)
}

func (r *Raster) Line(x1, y1, x2, y2, width float64, c colorful.Color, opacity float64) {
	dx1, dy1 := x1*r.scaleX, y1*r.scaleY
	dx2, dy2 := x2*r.scaleX, y2*r.scaleY
	dx, dy := dx2-dx1, dy2-dy1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Perpendicular half-width offset, as a quad.
	hw := width * (r.scaleX + r.scaleY) / 4
	ox, oy := -dy/length*hw, dx/length*hw
	r.fillPolygon(
		[]float64{dx1 + ox, dx2 + ox, dx2 - ox, dx1 - ox},
		[]float64{dy1 + oy, dy2 + oy, dy2 - oy, dy1 - oy},
		c, opacity,
	)
}

func (r *Raster) FillPath(pts []scatter.Point, c colorful.Color, opacity float64) {
	if len(pts) < 3 {
		return
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X * r.scaleX
		ys[i] = p.Y * r.scaleY
	}
	r.fillPolygon(xs, ys, c, opacity)
}

func (r *Raster) PushClip(x, y, w, h float64) {
	r.clips = append(r.clips, image.Rect(
		int(math.Floor(x*r.scaleX)), int(math.Floor(y*r.scaleY)),
		int(math.Ceil((x+w)*r.scaleX)), int(math.Ceil((y+h)*r.scaleY)),
	))
}

func (r *Raster) PopClip() {
	if len(r.clips) > 0 {
		r.clips = r.clips[:len(r.clips)-1]
	}
}

func (r *Raster) Text(x, y, size float64, s string, c colorful.Color, align Align) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(toNRGBA(c, 1)),
		Face: face,
	}
	width := d.MeasureString(s)
	dot := fixed.P(int(x*r.scaleX), int(y*r.scaleY))
	switch align {
	case AlignCenter:
		dot.X -= width / 2
	case AlignEnd:
		dot.X -= width
	}
	d.Dot = dot
	d.DrawString(s)
}

func (r *Raster) Icon(x, y, size float64, name string) {
	// Placeholder glyph; the identifier itself is meaningful only to an
	// embedding layer with icon assets.
	_ = name
	radius := size / 2
	r.FillCircle(x, y, radius, colorful.Color{R: 1, G: 1, B: 1}, 0.25)
	r.FillCircle(x, y, radius*0.45, colorful.Color{R: 1, G: 1, B: 1}, 0.5)
}
