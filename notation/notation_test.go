package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNote(t *testing.T) {
	cases := []struct{ in, out string }{
		{"C", `\(\text{C}\)`},
		{"C#", `\(\text{C}\sharp\)`},
		{"Bb", `\(\text{B}\flat\)`},
		{"fbb", `\(\text{f}\flat\flat\)`},
		{"bbbb#", `\(\text{b}\flat\flat\flat\sharp\)`},
		{"a#b#b", `\(\text{a}\sharp\flat\sharp\flat\)`},
		{"", `\(\)`},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			assert.Equal(t, c.out, Note(c.in))
		})
	}
}

func TestDegree(t *testing.T) {
	cases := []struct{ in, out string }{
		{"1", `\(1\)`},
		{"#3", `\(\sharp3\)`},
		{"b5", `\(\flat5\)`},
		{"b13", `\(\flat13\)`},
		{"#9", `\(\sharp9\)`},
		{"bb7", `\(\flat\flat7\)`},
		// anything that is not an accidental or a digit is dropped
		{"m3?", `\(3\)`},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			assert.Equal(t, c.out, Degree(c.in))
		})
	}
}

func TestChord(t *testing.T) {
	cases := []struct{ in, out string }{
		{"C", `\(\text{C}\)`},
		{"C#", `\(\text{C}\sharp\)`},
		{"Bb", `\(\text{B}\flat\)`},
		{"Cmaj7", `\(\text{Cmaj}7\)`},
		{"C7#9", `\(\text{C}7\sharp9\)`},
		{"Cm7b5", `\(\text{Cm}7\flat5\)`},
		{"Dadd4", `\(\text{Dadd}4\)`},
		{"F#m7b5", `\(\text{F}\sharp\text{m}7\flat5\)`},
		{"D#sus2", `\(\text{D}\sharp\text{sus}2\)`},
		{"Cbdim7", `\(\text{C}\flat\text{dim}7\)`},
		{"A#/Dadd13", `\(\text{A}\sharp/\text{Dadd}13\)`},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			assert.Equal(t, c.out, Chord(c.in))
		})
	}
}

// NOTE: documents the known split of quality words containing a b
func TestChordSplitsWordsOnLowercaseB(t *testing.T) {
	assert.Equal(t, `\(\text{Ca}\flat\text{c}\)`, Chord("Cabc"))
}

func TestFormattingIsRepeatable(t *testing.T) {
	assert := assert.New(t)
	for _, in := range []string{"F#m7b5", "A#/Dadd13", "Cbdim7"} {
		assert.Equal(Chord(in), Chord(in))
		assert.Equal(Note(in), Note(in))
		assert.Equal(Degree(in), Degree(in))
	}
}

func TestRowKeepsEmptyCells(t *testing.T) {
	row := Row([]string{"", "C", "E", ""}, Note)
	assert.Equal(t, []string{"", `\(\text{C}\)`, `\(\text{E}\)`, ""}, row)
}
