package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretcards/chord"
	"github.com/jsphweid/fretcards/model"
	"github.com/jsphweid/fretcards/notation"
	"github.com/jsphweid/fretcards/pitch"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <chord name>",
	Short: "Inspects a chord",
	Long:  `Prints every string of a chord with its fret, finger, note, degree and pitch.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chords, err := loadChords()
		if err != nil {
			return err
		}
		c, ok := chord.Find(chords, args[0])
		if !ok {
			return notFound(chords, args[0])
		}
		inspect(c)
		return nil
	},
}

func pitchNames(c model.Chord) []string {
	res := make([]string, c.NumStrings())
	tuning, ok := pitch.TuningFor(c.NumStrings())
	if !ok {
		return res
	}
	for i, f := range c.Diagram {
		if f.Muted {
			continue
		}
		if n, err := pitch.StringNote(c, tuning, i); err == nil {
			res[i] = pitch.Name(n)
		}
	}
	return res
}

func inspect(c model.Chord) {
	pterm.Info.Printf("%s  %s  (%s)\n", c.Name, notation.Chord(c.Name), chord.DiagramKey(c))
	pterm.Printf("sounding: %s\n", strings.Join(c.SoundedNotes(), " "))

	pitches := pitchNames(c)
	data := [][]string{{"string", "fret", "finger", "note", "degree", "pitch"}}
	for i := range c.Diagram {
		data = append(data, []string{
			fmt.Sprint(i + 1),
			c.Diagram[i].String(),
			c.Fingering[i].String(),
			c.Notes[i],
			c.Degrees[i],
			pitches[i],
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
