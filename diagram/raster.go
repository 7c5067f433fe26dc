package diagram

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/jsphweid/fretcards/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// kappa places Bézier control points so that four cubic segments
// approximate a quarter circle each.
const kappa = 0.5522847498

// Raster is a Surface backed by an RGBA image, scale pixels per diagram
// unit. The image is allocated by SetBounds.
type Raster struct {
	scale float64
	min   Point
	max   Point
	img   *image.RGBA
	rast  *vector.Rasterizer
	face  font.Face
}

func NewRaster(scale float64) *Raster {
	return &Raster{scale: scale, face: basicfont.Face7x13}
}

func (r *Raster) Image() *image.RGBA {
	return r.img
}

func (r *Raster) SetBounds(min, max Point) {
	r.min, r.max = min, max
	w := int(math.Round((max.X - min.X) * r.scale))
	h := int(math.Round((max.Y - min.Y) * r.scale))
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(Paper), image.Point{}, draw.Src)
	r.rast = vector.NewRasterizer(w, h)
	r.rast.DrawOp = draw.Over
}

// pixel maps a point in diagram units to image coordinates.
func (r *Raster) pixel(p Point) (float32, float32) {
	return float32((p.X - r.min.X) * r.scale), float32((r.max.Y - p.Y) * r.scale)
}

func (r *Raster) paint(c color.Color) {
	b := r.img.Bounds()
	r.rast.Draw(r.img, b, image.NewUniform(c), image.Point{})
	r.rast.Reset(b.Dx(), b.Dy())
}

func (r *Raster) polygon(points ...Point) {
	for i, p := range points {
		x, y := r.pixel(p)
		if i == 0 {
			r.rast.MoveTo(x, y)
			continue
		}
		r.rast.LineTo(x, y)
	}
	r.rast.ClosePath()
}

func (r *Raster) Line(from, to Point, width float64, c color.Color) {
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	r.polygon(
		Point{from.X + nx, from.Y + ny},
		Point{to.X + nx, to.Y + ny},
		Point{to.X - nx, to.Y - ny},
		Point{from.X - nx, from.Y - ny},
	)
	r.paint(c)
}

func (r *Raster) box(min, max Point) {
	r.polygon(min, Point{max.X, min.Y}, max, Point{min.X, max.Y})
}

func (r *Raster) Rect(min, max Point, width float64, stroke, fill color.Color) {
	half := width / 2
	if width > 0 {
		r.box(Point{min.X - half, min.Y - half}, Point{max.X + half, max.Y + half})
		r.paint(stroke)
	}
	if fill != nil {
		r.box(Point{min.X + half, min.Y + half}, Point{max.X - half, max.Y - half})
		r.paint(fill)
	}
}

func (r *Raster) RoundedRect(min, max Point, radius float64, fill color.Color) {
	x0, y0 := r.pixel(Point{min.X, max.Y})
	x1, y1 := r.pixel(Point{max.X, min.Y})
	rad := float32(radius * r.scale)
	if half := (x1 - x0) / 2; rad > half {
		rad = half
	}
	if half := (y1 - y0) / 2; rad > half {
		rad = half
	}
	k := rad * kappa

	r.rast.MoveTo(x0+rad, y0)
	r.rast.LineTo(x1-rad, y0)
	r.rast.CubeTo(x1-rad+k, y0, x1, y0+rad-k, x1, y0+rad)
	r.rast.LineTo(x1, y1-rad)
	r.rast.CubeTo(x1, y1-rad+k, x1-rad+k, y1, x1-rad, y1)
	r.rast.LineTo(x0+rad, y1)
	r.rast.CubeTo(x0+rad-k, y1, x0, y1-rad+k, x0, y1-rad)
	r.rast.LineTo(x0, y0+rad)
	r.rast.CubeTo(x0, y0+rad-k, x0+rad-k, y0, x0+rad, y0)
	r.rast.ClosePath()
	r.paint(fill)
}

// disc adds a circle path. A reversed disc winds the other way and cancels
// a forward one, which is how rings get their hole.
func (r *Raster) disc(center Point, radius float64, reversed bool) {
	cx, cy := r.pixel(center)
	rad := float32(radius * r.scale)
	k := rad * kappa
	dy, ky := rad, k
	if reversed {
		dy, ky = -rad, -k
	}

	r.rast.MoveTo(cx+rad, cy)
	r.rast.CubeTo(cx+rad, cy+ky, cx+k, cy+dy, cx, cy+dy)
	r.rast.CubeTo(cx-k, cy+dy, cx-rad, cy+ky, cx-rad, cy)
	r.rast.CubeTo(cx-rad, cy-ky, cx-k, cy-dy, cx, cy-dy)
	r.rast.CubeTo(cx+k, cy-dy, cx+rad, cy-ky, cx+rad, cy)
	r.rast.ClosePath()
}

func (r *Raster) Circle(center Point, radius, width float64, stroke, fill color.Color) {
	half := width / 2
	if width <= 0 {
		if fill != nil {
			r.disc(center, radius, false)
			r.paint(fill)
		}
		return
	}

	if fill != nil {
		r.disc(center, radius+half, false)
		r.paint(stroke)
		r.disc(center, radius-half, false)
		r.paint(fill)
		return
	}
	r.disc(center, radius+half, false)
	r.disc(center, radius-half, true)
	r.paint(stroke)
}

func (r *Raster) Cross(center Point, size, width float64, c color.Color) {
	r.Line(Point{center.X - size, center.Y - size}, Point{center.X + size, center.Y + size}, width, c)
	r.Line(Point{center.X - size, center.Y + size}, Point{center.X + size, center.Y - size}, width, c)
}

func (r *Raster) Text(at Point, s string, anchor Anchor, c color.Color) {
	x, y := r.pixel(at)
	metrics := r.face.Metrics()
	dot := fixed.Point26_6{
		X: fixed.Int26_6(x * 64),
		Y: fixed.Int26_6(y*64) + (metrics.Ascent-metrics.Descent)/2,
	}
	if anchor == AnchorCenter {
		dot.X -= font.MeasureString(r.face, s) / 2
	}

	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: r.face,
		Dot:  dot,
	}
	d.DrawString(s)
}

// RenderPNG draws the diagram of c at scale pixels per unit and encodes it
// as PNG.
func RenderPNG(w io.Writer, c model.Chord, opts Options, scale float64) error {
	r := NewRaster(scale)
	Draw(r, c, opts)
	if err := png.Encode(w, r.Image()); err != nil {
		return fmt.Errorf("cannot encode png: %w", err)
	}
	return nil
}

// SavePNG renders c into the file at path, creating its directory.
func SavePNG(path string, c model.Chord, opts Options, scale float64) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	defer f.Close()

	tracer().Debugf("rendering %s to %s", c.Name, path)
	return RenderPNG(f, c, opts, scale)
}
