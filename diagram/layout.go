package diagram

import (
	"strconv"

	"github.com/jsphweid/fretcards/model"
)

const (
	FrameHeight = 7.0
	NumFrets    = 5
	CellHeight  = FrameHeight / NumFrets
	DotRadius   = 0.35
	MarkerY     = 7.4
	TitleY      = 8.1
	NutInset    = 0.04
	LabelOffset = 0.3

	// frets up to this one are drawn from the nut
	nutReach  = 5
	minFinger = 1
	maxFinger = 4
)

type Point struct {
	X, Y float64
}

type Options struct {
	ShowName      bool
	ShowFingering bool
}

// Bar is one finger held across several strings.
type Bar struct {
	Finger int
	From   int
	To     int
	Fret   int
	Min    Point
	Max    Point
}

type Dot struct {
	String int
	Fret   int
	Center Point
	// Label is the finger digit to print on the dot, empty for none.
	Label string
}

type Marker struct {
	String int
	Muted  bool
	Center Point
}

// Layout is the complete geometry of one diagram.
type Layout struct {
	NumStrings int
	FirstFret  int
	Nut        bool
	// FretLabel is the start fret printed beside the frame when the nut
	// is not shown.
	FretLabel string
	LabelAt   Point
	Bars      []Bar
	Dots      []Dot
	Markers   []Marker
	Title     string
	TitleAt   Point
	Min       Point
	Max       Point
}

// Width is the frame width in diagram units.
func (l Layout) Width() float64 {
	return float64(l.NumStrings - 1)
}

// FretY is the height of a dot on fret relative to the first shown fret.
func FretY(fret int, first int) float64 {
	return FrameHeight + CellHeight/2 - CellHeight*float64(fret-first+1)
}

func findBars(c model.Chord, first int) ([]Bar, map[int]bool) {
	var bars []Bar
	interior := make(map[int]bool)
	for finger := minFinger; finger <= maxFinger; finger++ {
		var held []int
		for i, f := range c.Fingering {
			if f.Assigned && f.Num == finger {
				held = append(held, i)
			}
		}
		if len(held) < 2 {
			continue
		}

		from, to := held[0], held[len(held)-1]
		fret := c.Diagram[from].Num
		y := FretY(fret, first)
		bars = append(bars, Bar{
			Finger: finger,
			From:   from,
			To:     to,
			Fret:   fret,
			Min:    Point{float64(from) - DotRadius, y - CellHeight/4},
			Max:    Point{float64(to) + DotRadius, y + CellHeight/4},
		})
		for _, s := range held[1 : len(held)-1] {
			interior[s] = true
		}
		tracer().Debugf("%s: finger %d bars strings %d-%d on fret %d", c.Name, finger, from, to, fret)
	}
	return bars, interior
}

// NewLayout computes where every element of the diagram of c goes. It
// never fails; finger numbers outside 1-4 just never form a bar.
func NewLayout(c model.Chord, opts Options) Layout {
	n := c.NumStrings()
	l := Layout{
		NumStrings: n,
		FirstFret:  1,
		Nut:        true,
		Min:        Point{-1, -0.1},
		Max:        Point{float64(n), 8.5},
	}

	if lowest, highest, ok := c.FretRange(); ok && highest > nutReach {
		l.FirstFret = lowest
		l.Nut = false
		l.FretLabel = strconv.Itoa(lowest)
		l.LabelAt = Point{l.Width() + LabelOffset, FrameHeight - CellHeight/2}
	}

	bars, interior := findBars(c, l.FirstFret)
	l.Bars = bars

	for i, f := range c.Diagram {
		if f.Muted || f.IsOpen() {
			l.Markers = append(l.Markers, Marker{
				String: i,
				Muted:  f.Muted,
				Center: Point{float64(i), MarkerY},
			})
			continue
		}
		if interior[i] {
			continue
		}

		d := Dot{
			String: i,
			Fret:   f.Num,
			Center: Point{float64(i), FretY(f.Num, l.FirstFret)},
		}
		if opts.ShowFingering && i < len(c.Fingering) && c.Fingering[i].Assigned {
			d.Label = strconv.Itoa(c.Fingering[i].Num)
		}
		l.Dots = append(l.Dots, d)
	}

	if opts.ShowName {
		l.Title = c.Name
		l.TitleAt = Point{l.Width() / 2, TitleY}
	}
	return l
}
