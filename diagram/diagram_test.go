package diagram

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/jsphweid/fretcards/chord"
	"github.com/jsphweid/fretcards/model"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

type call struct {
	op    string
	width float64
	text  string
}

// recorder is a Surface that remembers what was drawn.
type recorder struct {
	min, max Point
	calls    []call
}

func (r *recorder) SetBounds(min, max Point) { r.min, r.max = min, max }

func (r *recorder) Line(from, to Point, width float64, c color.Color) {
	r.calls = append(r.calls, call{op: "line", width: width})
}

func (r *recorder) Rect(min, max Point, width float64, stroke, fill color.Color) {
	r.calls = append(r.calls, call{op: "rect", width: width})
}

func (r *recorder) RoundedRect(min, max Point, radius float64, fill color.Color) {
	r.calls = append(r.calls, call{op: "bar"})
}

func (r *recorder) Circle(center Point, radius, width float64, stroke, fill color.Color) {
	r.calls = append(r.calls, call{op: "circle", width: width})
}

func (r *recorder) Cross(center Point, size, width float64, c color.Color) {
	r.calls = append(r.calls, call{op: "cross", width: width})
}

func (r *recorder) Text(at Point, s string, anchor Anchor, c color.Color) {
	r.calls = append(r.calls, call{op: "text", text: s})
}

func (r *recorder) count(op string, width float64) int {
	var n int
	for _, c := range r.calls {
		if c.op == op && c.width == width {
			n++
		}
	}
	return n
}

func (r *recorder) texts() []string {
	var res []string
	for _, c := range r.calls {
		if c.op == "text" {
			res = append(res, c.text)
		}
	}
	return res
}

type DiagramTestEnviron struct {
	suite.Suite
}

func TestDiagram(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fretcards.diagram")
	defer teardown()
	suite.Run(t, new(DiagramTestEnviron))
}

func (env *DiagramTestEnviron) chord(name, diagram, fingering string) model.Chord {
	n := len(strings.Fields(diagram))
	blank := strings.TrimSpace(strings.Repeat("x ", n))
	c, err := chord.ParseRecord([]string{name, diagram, fingering, blank, blank})
	env.Require().NoError(err)
	return c
}

// --- Layout ----------------------------------------------------------------

func (env *DiagramTestEnviron) TestOpenChordShowsNut() {
	l := NewLayout(env.chord("C", "x 3 2 0 1 0", "x 3 2 x 1 x"), Options{})

	env.True(l.Nut)
	env.Empty(l.FretLabel)
	env.Equal(1, l.FirstFret)
	env.Empty(l.Bars)
	env.Len(l.Dots, 3)
	env.Len(l.Markers, 3)
	env.True(l.Markers[0].Muted)
	env.False(l.Markers[1].Muted)

	env.Equal(1, l.Dots[0].String)
	env.InDelta(3.5, l.Dots[0].Center.Y, 1e-9)
	env.InDelta(MarkerY, l.Markers[0].Center.Y, 1e-9)
}

func (env *DiagramTestEnviron) TestHighChordShowsStartFret() {
	l := NewLayout(env.chord("D", "x 7 9 9 9 7", "x 1 2 3 4 1"), Options{})

	env.False(l.Nut)
	env.Equal("7", l.FretLabel)
	env.Equal(7, l.FirstFret)
	env.InDelta(5.3, l.LabelAt.X, 1e-9)
	env.InDelta(6.3, l.LabelAt.Y, 1e-9)

	env.Require().Len(l.Bars, 1)
	b := l.Bars[0]
	env.Equal(Bar{Finger: 1, From: 1, To: 5, Fret: 7, Min: b.Min, Max: b.Max}, b)
	env.InDelta(1-DotRadius, b.Min.X, 1e-9)
	env.InDelta(5+DotRadius, b.Max.X, 1e-9)
	env.InDelta(6.3-0.35, b.Min.Y, 1e-9)
	env.InDelta(6.3+0.35, b.Max.Y, 1e-9)

	// endpoints of the bar keep their dots, fingers 2-4 are single
	env.Len(l.Dots, 5)
}

func (env *DiagramTestEnviron) TestFifthFretStillUsesNut() {
	l := NewLayout(env.chord("Dsus", "x 5 5 5 x x", "x 1 1 1 x x"), Options{})
	env.True(l.Nut)
	env.Equal(1, l.FirstFret)
	env.InDelta(FretY(5, 1), l.Dots[0].Center.Y, 1e-9)
}

func (env *DiagramTestEnviron) TestBarInteriorHasNoDot() {
	l := NewLayout(env.chord("F", "1 3 3 2 1 1", "1 3 4 2 1 1"), Options{})

	env.Require().Len(l.Bars, 1)
	env.Equal(0, l.Bars[0].From)
	env.Equal(5, l.Bars[0].To)

	var dotted []int
	for _, d := range l.Dots {
		dotted = append(dotted, d.String)
	}
	env.Equal([]int{0, 1, 2, 3, 5}, dotted)
}

func (env *DiagramTestEnviron) TestTwoStringBar() {
	l := NewLayout(env.chord("Asus2", "x 0 2 2 1 0", "x x 2 2 1 x"), Options{})

	env.Require().Len(l.Bars, 1)
	env.Equal(2, l.Bars[0].Finger)
	env.Equal(2, l.Bars[0].From)
	env.Equal(3, l.Bars[0].To)
	env.Len(l.Dots, 3)
}

func (env *DiagramTestEnviron) TestSingleFingerIsNoBar() {
	l := NewLayout(env.chord("Em", "0 2 2 0 0 0", "x 2 3 x x x"), Options{})
	env.Empty(l.Bars)
	env.Len(l.Dots, 2)
}

func (env *DiagramTestEnviron) TestOpenAndMutedOnly() {
	l := NewLayout(env.chord("Open", "x 0 0 0 0 x", "x x x x x x"), Options{})

	env.True(l.Nut)
	env.Equal(1, l.FirstFret)
	env.Empty(l.Bars)
	env.Empty(l.Dots)
	env.Len(l.Markers, 6)
}

func (env *DiagramTestEnviron) TestUnknownFingerNeverBars() {
	l := NewLayout(env.chord("Odd", "x 3 3 x x x", "x 7 7 x x x"), Options{})
	env.Empty(l.Bars)
	env.Len(l.Dots, 2)
}

func (env *DiagramTestEnviron) TestFingeringAndName() {
	c := env.chord("C", "x 3 2 0 1 0", "x 3 2 x 1 x")

	l := NewLayout(c, Options{})
	env.Empty(l.Title)
	env.Empty(l.Dots[0].Label)

	l = NewLayout(c, Options{ShowName: true, ShowFingering: true})
	env.Equal("C", l.Title)
	env.InDelta(2.5, l.TitleAt.X, 1e-9)
	env.Equal([]string{"3", "2", "1"}, []string{l.Dots[0].Label, l.Dots[1].Label, l.Dots[2].Label})
}

func (env *DiagramTestEnviron) TestBoundsCoverMarkers() {
	l := NewLayout(env.chord("C", "0 0 0 3", "x x x 3"), Options{})
	env.Equal(Point{-1, -0.1}, l.Min)
	env.Equal(Point{4, 8.5}, l.Max)
	env.Greater(l.Max.Y, MarkerY+MarkerSize)
}

// --- Drawing ---------------------------------------------------------------

func (env *DiagramTestEnviron) TestDrawNutXorLabel() {
	r := &recorder{}
	Draw(r, env.chord("C", "x 3 2 0 1 0", "x 3 2 x 1 x"), Options{})
	env.Equal(1, r.count("line", NutLineWidth))
	env.Empty(r.texts())
	env.Equal(4+4, r.count("line", GridLineWidth))
	env.Equal(1, r.count("rect", GridLineWidth))
	env.Equal(1, r.count("cross", MarkerLineWidth))
	env.Equal(2, r.count("circle", MarkerLineWidth))
	env.Equal(3, r.count("circle", 0))

	r = &recorder{}
	Draw(r, env.chord("D", "x 7 9 9 9 7", "x 1 2 3 4 1"), Options{})
	env.Equal(0, r.count("line", NutLineWidth))
	env.Equal([]string{"7"}, r.texts())
	env.Equal(1, r.count("bar", 0))
}

func (env *DiagramTestEnviron) TestDrawLabelsAndTitle() {
	r := &recorder{}
	Draw(r, env.chord("Cmaj7", "x 3 2 0 0 0", "x 3 2 x x x"), Options{ShowName: true, ShowFingering: true})
	env.Equal([]string{"3", "2", "Cmaj7"}, r.texts())
	env.Equal(Point{-1, -0.1}, r.min)
}

// --- Raster ----------------------------------------------------------------

func dark(c color.RGBA) bool {
	return c.R < 128 && c.G < 128 && c.B < 128
}

func (env *DiagramTestEnviron) at(r *Raster, p Point) color.RGBA {
	x, y := r.pixel(p)
	return r.Image().RGBAAt(int(x), int(y))
}

func (env *DiagramTestEnviron) TestRasterPixels() {
	r := NewRaster(40)
	Draw(r, env.chord("C", "x 3 2 0 1 0", "x 3 2 x 1 x"), Options{})

	env.Equal(280, r.Image().Bounds().Dx())
	env.Equal(344, r.Image().Bounds().Dy())

	// dot on string 1, third fret
	env.True(dark(env.at(r, Point{1, 3.5})))
	// empty cell between strings 3 and 4 on the fourth fret
	env.False(dark(env.at(r, Point{3.5, FretY(4, 1)})))
	// open string marker is a ring
	env.False(dark(env.at(r, Point{3, MarkerY})))
	env.True(dark(env.at(r, Point{3 + MarkerSize, MarkerY})))
	// muted string marker crosses in the middle
	env.True(dark(env.at(r, Point{0, MarkerY})))
	// nut
	env.True(dark(env.at(r, Point{2.5, FrameHeight - 0.05})))
}

func (env *DiagramTestEnviron) TestRasterBar() {
	r := NewRaster(40)
	Draw(r, env.chord("F", "1 3 3 2 1 1", "1 3 4 2 1 1"), Options{})
	// the bar covers string 4 even though it has no dot of its own
	env.True(dark(env.at(r, Point{4, FretY(1, 1)})))
	env.True(dark(env.at(r, Point{4.5, FretY(1, 1)})))
}

func (env *DiagramTestEnviron) TestRenderPNG() {
	var buf bytes.Buffer
	err := RenderPNG(&buf, env.chord("G", "3 2 0 0 0 3", "2 1 x x x 3"), Options{ShowName: true}, 20)
	env.Require().NoError(err)

	img, err := png.Decode(&buf)
	env.Require().NoError(err)
	env.Equal(140, img.Bounds().Dx())
	env.Equal(172, img.Bounds().Dy())
}
