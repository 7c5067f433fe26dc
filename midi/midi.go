// Package midi writes chords as standard MIDI files and reads them back.
package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const ticksPerQuarter = 960

type Options struct {
	BPM      float64
	Velocity uint8
	// Strum is the delay in ticks between two strings.
	Strum uint32
	// Length is how long the chord rings after the last string, in ticks.
	Length uint32
}

func DefaultOptions() Options {
	return Options{
		BPM:      90,
		Velocity: 90,
		Strum:    ticksPerQuarter / 16,
		Length:   ticksPerQuarter * 4,
	}
}

// WriteChord writes notes as one strummed chord, lowest note first.
func WriteChord(w io.Writer, name string, notes []uint8, opts Options) error {
	if len(notes) == 0 {
		return errors.New("chord has no notes to write")
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(name))
	tr.Add(0, smf.MetaTempo(opts.BPM))
	for i, n := range notes {
		var delta uint32
		if i > 0 {
			delta = opts.Strum
		}
		tr.Add(delta, midi.NoteOn(0, n, opts.Velocity))
	}
	for i, n := range notes {
		var delta uint32
		if i == 0 {
			delta = opts.Length
		}
		tr.Add(delta, midi.NoteOff(0, n))
	}
	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return fmt.Errorf("could not add track: %w", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("could not write midi: %w", err)
	}
	return nil
}

func SaveChord(path string, name string, notes []uint8, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create midi file: %w", err)
	}
	defer f.Close()

	return WriteChord(f, name, notes, opts)
}

// ReadNotes returns the keys of all note-on events in s in file order.
func ReadNotes(s *smf.SMF) []uint8 {
	var res []uint8
	for _, events := range s.Tracks {
		for _, event := range events {
			var channel, key, velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				res = append(res, key)
			}
		}
	}
	return res
}

// recoverParse turns a panic of the smf reader into an error. It must be
// deferred directly.
// https://github.com/gomidi/midi/issues/20
func recoverParse(s **smf.SMF, e *error) {
	if rec := recover(); rec != nil {
		*s, *e = nil, fmt.Errorf("error parsing midi file: %v", rec)
	}
}

func Read(r io.Reader) (s *smf.SMF, e error) {
	defer recoverParse(&s, &e)

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file: %w", err)
	}
	return res, nil
}

func ReadFile(path string) (*smf.SMF, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file: %w", err)
	}
	return Read(bytes.NewReader(dat))
}
