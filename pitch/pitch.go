// Package pitch maps note names and fretted strings to pitch classes and
// MIDI note numbers.
package pitch

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jsphweid/fretcards/model"
)

// Class is a pitch class, C=0 through B=11.
type Class int

var letterClasses = map[rune]Class{
	'C': 0,
	'D': 2,
	'E': 4,
	'F': 5,
	'G': 7,
	'A': 9,
	'B': 11,
}

var sharpNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func (c Class) String() string {
	return sharpNames[c]
}

// Parse reads a note name like "C", "f#" or "Bbb". The letter may be
// lower case; every later # raises and every b lowers by a half step.
func Parse(name string) (Class, error) {
	runes := []rune(strings.TrimSpace(name))
	if len(runes) == 0 {
		return 0, fmt.Errorf("empty note name")
	}
	class, ok := letterClasses[unicode.ToUpper(runes[0])]
	if !ok {
		return 0, fmt.Errorf("invalid note letter in %q", name)
	}

	offset := 0
	for _, r := range runes[1:] {
		switch r {
		case '#':
			offset++
		case 'b':
			offset--
		default:
			return 0, fmt.Errorf("invalid accidental %q in %q", r, name)
		}
	}
	return Class(((int(class)+offset)%12 + 12) % 12), nil
}

// Tuning holds the MIDI note of every open string, lowest string first.
type Tuning []uint8

var (
	// E2 A2 D3 G3 B3 E4
	Guitar = Tuning{40, 45, 50, 55, 59, 64}
	// G4 C4 E4 A4, re-entrant
	Ukulele = Tuning{67, 60, 64, 69}
)

// TuningFor returns the standard tuning for an instrument with n strings.
func TuningFor(n int) (Tuning, bool) {
	switch n {
	case len(Guitar):
		return Guitar, true
	case len(Ukulele):
		return Ukulele, true
	}
	return nil, false
}

// MIDINotes returns the MIDI note sounded by every played string of c,
// lowest string first.
func MIDINotes(c model.Chord, t Tuning) ([]uint8, error) {
	if len(t) != c.NumStrings() {
		return nil, fmt.Errorf("%s has %d strings, tuning has %d", c.Name, c.NumStrings(), len(t))
	}
	var res []uint8
	for i, f := range c.Diagram {
		if f.Muted {
			continue
		}
		n, err := StringNote(c, t, i)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

// StringNote returns the MIDI note string i of c sounds in tuning t.
func StringNote(c model.Chord, t Tuning, i int) (uint8, error) {
	f := c.Diagram[i]
	n := int(t[i]) + f.Num
	if n > 127 {
		return 0, fmt.Errorf("%s: fret %d on string %d is out of MIDI range", c.Name, f.Num, i)
	}
	return uint8(n), nil
}

// Mismatches lists the strings whose note name does not match the pitch
// the diagram produces in tuning t. Strings without a note are skipped.
func Mismatches(c model.Chord, t Tuning) ([]int, error) {
	if len(t) != c.NumStrings() {
		return nil, fmt.Errorf("%s has %d strings, tuning has %d", c.Name, c.NumStrings(), len(t))
	}
	var res []int
	for i, f := range c.Diagram {
		if f.Muted || c.Notes[i] == "" {
			continue
		}
		want, err := Parse(c.Notes[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Name, err)
		}
		n, err := StringNote(c, t, i)
		if err != nil {
			return nil, err
		}
		if Of(n) != want {
			res = append(res, i)
		}
	}
	return res, nil
}

// Of returns the pitch class of a MIDI note.
func Of(midi uint8) Class {
	return Class(midi % 12)
}

// Name spells a MIDI note with sharps and scientific octave, 60 is "C4".
func Name(midi uint8) string {
	return fmt.Sprintf("%s%d", Of(midi), int(midi)/12-1)
}
