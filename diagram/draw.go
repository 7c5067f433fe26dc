package diagram

import (
	"image/color"

	"github.com/jsphweid/fretcards/model"
)

const (
	GridLineWidth   = 0.05
	NutLineWidth    = 0.15
	MarkerSize      = 0.22
	MarkerLineWidth = 0.08
)

var (
	Ink   color.Color = color.Black
	Paper color.Color = color.White
)

// Anchor says which point of a text's bounding box is placed at the given
// position.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorLeft
)

// Surface is anything a diagram can be drawn on. All coordinates are in
// diagram units with y growing upwards.
type Surface interface {
	// SetBounds fixes the visible area. It is called before any drawing.
	SetBounds(min, max Point)
	Line(from, to Point, width float64, c color.Color)
	Rect(min, max Point, width float64, stroke, fill color.Color)
	RoundedRect(min, max Point, radius float64, fill color.Color)
	// Circle fills the disc with fill and outlines it with stroke. A nil
	// fill leaves the inside untouched.
	Circle(center Point, radius, width float64, stroke, fill color.Color)
	Cross(center Point, size, width float64, c color.Color)
	Text(at Point, s string, anchor Anchor, c color.Color)
}

// Draw draws the diagram of c on s.
func Draw(s Surface, c model.Chord, opts Options) Layout {
	l := NewLayout(c, opts)
	DrawLayout(s, l)
	return l
}

func DrawLayout(s Surface, l Layout) {
	s.SetBounds(l.Min, l.Max)
	w := l.Width()

	s.Rect(Point{0, 0}, Point{w, FrameHeight}, GridLineWidth, Ink, Paper)
	for x := 1; x < l.NumStrings-1; x++ {
		s.Line(Point{float64(x), 0}, Point{float64(x), FrameHeight}, GridLineWidth, Ink)
	}
	for i := 1; i < NumFrets; i++ {
		y := CellHeight * float64(i)
		s.Line(Point{0, y}, Point{w, y}, GridLineWidth, Ink)
	}
	if l.Nut {
		s.Line(Point{NutInset, FrameHeight}, Point{w - NutInset, FrameHeight}, NutLineWidth, Ink)
	} else {
		s.Text(l.LabelAt, l.FretLabel, AnchorLeft, Ink)
	}

	for _, b := range l.Bars {
		s.RoundedRect(b.Min, b.Max, DotRadius, Ink)
	}
	for _, d := range l.Dots {
		s.Circle(d.Center, DotRadius, 0, Ink, Ink)
		if d.Label != "" {
			s.Text(d.Center, d.Label, AnchorCenter, Paper)
		}
	}
	for _, m := range l.Markers {
		if m.Muted {
			s.Cross(m.Center, MarkerSize, MarkerLineWidth, Ink)
		} else {
			s.Circle(m.Center, MarkerSize, MarkerLineWidth, Ink, Paper)
		}
	}

	if l.Title != "" {
		s.Text(l.TitleAt, l.Title, AnchorCenter, Ink)
	}
}
