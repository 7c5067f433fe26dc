package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/jsphweid/fretcards/chord"
	"github.com/jsphweid/fretcards/constants"
	"github.com/jsphweid/fretcards/file"
	"github.com/jsphweid/fretcards/midi"
	"github.com/jsphweid/fretcards/model"
	"github.com/jsphweid/fretcards/pitch"
	"github.com/jsphweid/fretcards/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	midiOut   string
	midiBPM   float64
	midiStrum uint32
)

func init() {
	midiCmd.Flags().StringVar(&midiOut, "out", "", "output directory (default $OUTPUT_DIR or ./out)")
	midiCmd.Flags().Float64Var(&midiBPM, "bpm", midi.DefaultOptions().BPM, "tempo")
	midiCmd.Flags().Uint32Var(&midiStrum, "strum", midi.DefaultOptions().Strum, "ticks between two strings")
	rootCmd.AddCommand(midiCmd)
}

var midiCmd = &cobra.Command{
	Use:   "midi <chord names...>",
	Short: "Writes chords as MIDI files",
	Long:  `Writes every named chord as a strummed standard MIDI file in standard tuning.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chords, err := loadChords()
		if err != nil {
			return err
		}
		selected, err := selectChords(chord.Dedupe(chords, chord.ByName), args)
		if err != nil {
			return err
		}

		out := midiOut
		if out == "" {
			out = constants.GetOutputDir()
		}
		if err := util.EnsureDir(out); err != nil {
			return err
		}

		opts := midi.DefaultOptions()
		opts.BPM = midiBPM
		opts.Strum = midiStrum
		for _, c := range selected {
			notes, err := chordMIDINotes(c)
			if err != nil {
				return err
			}
			path := filepath.Join(out, file.MIDIName(c.Name))
			written, err := saveMIDI(path, c.Name, notes, opts)
			if err != nil {
				return err
			}
			pterm.Success.Printf("%s: %v -> %s\n", c.Name, written, path)
		}
		return nil
	},
}

func chordMIDINotes(c model.Chord) ([]uint8, error) {
	tuning, ok := pitch.TuningFor(c.NumStrings())
	if !ok {
		return nil, fmt.Errorf("%s: no standard tuning for %d strings", c.Name, c.NumStrings())
	}
	return pitch.MIDINotes(c, tuning)
}

// saveMIDI writes the chord and returns the notes read back from the file.
func saveMIDI(path string, name string, notes []uint8, opts midi.Options) ([]uint8, error) {
	if err := midi.SaveChord(path, name, notes, opts); err != nil {
		return nil, err
	}
	s, err := midi.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return midi.ReadNotes(s), nil
}
