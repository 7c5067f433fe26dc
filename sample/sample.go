// Package sample draws random practice material: shuffled notes to find on
// the fretboard and pages of chords to change between.
package sample

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/jsphweid/fretcards/model"
	"github.com/jsphweid/fretcards/util"
	"golang.org/x/exp/slices"
)

// the first seven are naturals; the rest have a sharp and a flat spelling
var spellings = [][]string{
	{"A"},
	{"B"},
	{"C"},
	{"D"},
	{"E"},
	{"F"},
	{"G"},
	{"A#", "Bb"},
	{"C#", "Db"},
	{"D#", "Eb"},
	{"F#", "Gb"},
	{"G#", "Ab"},
}

const numNaturals = 7

var ErrCapacity = errors.New("not enough notes available")

type CapacityError struct {
	Requested int
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("Cannot generate %d notes, only %d available.", e.Requested, e.Available)
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacity
}

type NoteOptions struct {
	NoNaturals bool
	Flats      bool
	Sharps     bool
}

// Notes returns n distinct pitches in random order. Accidentals are only
// drawn when flats or sharps are asked for; with both, each pitch picks one
// spelling at random, so F# and Gb never show up together.
func Notes(n int, opts NoteOptions, rng *rand.Rand) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("note count must not be negative, got %d", n)
	}
	var pool []int
	if !opts.NoNaturals {
		for i := 0; i < numNaturals; i++ {
			pool = append(pool, i)
		}
	}
	if opts.Flats || opts.Sharps {
		for i := numNaturals; i < len(spellings); i++ {
			pool = append(pool, i)
		}
	}
	if n > len(pool) {
		return nil, &CapacityError{Requested: n, Available: len(pool)}
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	res := make([]string, 0, n)
	for _, idx := range pool[:n] {
		names := spellings[idx]
		switch {
		case idx < numNaturals:
			res = append(res, names[0])
		case opts.Flats && opts.Sharps:
			res = append(res, names[rng.Intn(len(names))])
		case opts.Flats:
			res = append(res, names[1])
		default:
			res = append(res, names[0])
		}
	}
	return res, nil
}

// Changes pages through a shuffled set of chords, size at a time.
type Changes struct {
	chords []model.Chord
	size   int
	pos    int
}

// NewChanges shuffles chords and keeps the first limit of them. A limit of
// zero or less keeps them all.
func NewChanges(chords []model.Chord, limit int, size int, rng *rand.Rand) (*Changes, error) {
	if size < 1 {
		return nil, fmt.Errorf("sample size must be at least 1, got %d", size)
	}

	shuffled := slices.Clone(chords)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if limit > 0 {
		shuffled = shuffled[:util.Min(limit, len(shuffled))]
	}
	return &Changes{chords: shuffled, size: size}, nil
}

func (c *Changes) Len() int {
	return len(c.chords)
}

// Next returns the next full page of chords. A session ends as soon as
// fewer than size chords are left.
func (c *Changes) Next() ([]model.Chord, bool) {
	if c.pos+c.size > len(c.chords) {
		return nil, false
	}
	page := c.chords[c.pos : c.pos+c.size]
	c.pos += c.size
	return page, true
}
