package model

import (
	"errors"
	"fmt"
)

var ErrShapeMismatch = errors.New("diagram, fingering, notes and degrees differ in length")

// Fret is the position of one string in a chord shape. A muted string
// carries Muted and no meaningful Num.
type Fret struct {
	Num   int
	Muted bool
}

func Fretted(n int) Fret {
	return Fret{Num: n}
}

func MutedFret() Fret {
	return Fret{Muted: true}
}

func (f Fret) IsOpen() bool {
	return !f.Muted && f.Num == 0
}

func (f Fret) String() string {
	if f.Muted {
		return "x"
	}
	return fmt.Sprintf("%d", f.Num)
}

// Finger is the finger pressing a string, 1 (index) through 4 (pinky).
type Finger struct {
	Num      int
	Assigned bool
}

func FingerOf(n int) Finger {
	return Finger{Num: n, Assigned: true}
}

func NoFinger() Finger {
	return Finger{}
}

func (f Finger) String() string {
	if !f.Assigned {
		return "x"
	}
	return fmt.Sprintf("%d", f.Num)
}

// Chord is one playable shape on a fretted instrument. Diagram, Fingering,
// Notes and Degrees are parallel, one entry per string from lowest to
// highest. A Chord is never modified after NewChord returns it.
type Chord struct {
	Name      string
	Diagram   []Fret
	Fingering []Finger
	Notes     []string
	Degrees   []string
}

func NewChord(name string, diagram []Fret, fingering []Finger, notes []string, degrees []string) (Chord, error) {
	n := len(diagram)
	if len(fingering) != n || len(notes) != n || len(degrees) != n {
		return Chord{}, fmt.Errorf("%s: %w (%d/%d/%d/%d)",
			name, ErrShapeMismatch, len(diagram), len(fingering), len(notes), len(degrees))
	}

	c := Chord{
		Name:      name,
		Diagram:   append([]Fret(nil), diagram...),
		Fingering: append([]Finger(nil), fingering...),
		Notes:     append([]string(nil), notes...),
		Degrees:   append([]string(nil), degrees...),
	}
	return c, nil
}

func (c Chord) NumStrings() int {
	return len(c.Diagram)
}

// FretRange returns the lowest and highest pressed fret. Muted and open
// strings are ignored; ok is false when no string is pressed.
func (c Chord) FretRange() (lowest int, highest int, ok bool) {
	for _, f := range c.Diagram {
		if f.Muted || f.Num <= 0 {
			continue
		}
		if !ok {
			lowest, highest, ok = f.Num, f.Num, true
			continue
		}
		if f.Num < lowest {
			lowest = f.Num
		}
		if f.Num > highest {
			highest = f.Num
		}
	}
	return lowest, highest, ok
}

// SoundedNotes returns the notes of all strings that are not muted.
func (c Chord) SoundedNotes() []string {
	var res []string
	for i, f := range c.Diagram {
		if f.Muted || c.Notes[i] == "" {
			continue
		}
		res = append(res, c.Notes[i])
	}
	return res
}
