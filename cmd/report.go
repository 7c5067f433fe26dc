package cmd

import (
	"fmt"

	"github.com/jsphweid/fretcards/chord"
	"github.com/jsphweid/fretcards/diagram"
	"github.com/jsphweid/fretcards/model"
	"github.com/jsphweid/fretcards/pitch"
	"github.com/jsphweid/fretcards/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Summarizes the chord file: instruments, duplicates and notes that do not match their diagram.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		chords, err := loadChords()
		if err != nil {
			return err
		}
		r := analyzeChords(chords)
		printReport(r)
		return nil
	},
}

type chordsReport struct {
	numChords      int
	numNames       int
	numShapes      int
	chordsByString map[int]int
	mismatches     map[string][]int
	numBarred      int
}

func hasBar(c model.Chord) bool {
	return len(diagram.NewLayout(c, diagram.Options{}).Bars) > 0
}

func analyzeChords(chords []model.Chord) chordsReport {
	r := chordsReport{
		numChords:      len(chords),
		numNames:       len(chord.Dedupe(chords, chord.ByName)),
		numShapes:      len(chord.Dedupe(chords, chord.ByDiagram)),
		chordsByString: make(map[int]int),
		mismatches:     make(map[string][]int),
	}

	for _, c := range chords {
		r.chordsByString[c.NumStrings()]++
		if hasBar(c) {
			r.numBarred++
		}

		tuning, ok := pitch.TuningFor(c.NumStrings())
		if !ok {
			continue
		}
		bad, err := pitch.Mismatches(c, tuning)
		if err != nil {
			r.mismatches[c.Name] = nil
			continue
		}
		if len(bad) > 0 {
			r.mismatches[c.Name] = bad
		}
	}
	return r
}

func printReport(r chordsReport) {
	pterm.Printf("chords: %v\n", r.numChords)
	pterm.Printf("distinct names: %v\n", r.numNames)
	pterm.Printf("distinct shapes: %v\n", r.numShapes)
	pterm.Printf("chords with a bar: %v\n", r.numBarred)

	data := [][]string{{"strings", "chords"}}
	for _, n := range util.SortedKeys(r.chordsByString) {
		data = append(data, []string{fmt.Sprint(n), fmt.Sprint(r.chordsByString[n])})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	for _, name := range util.SortedKeys(r.mismatches) {
		pterm.Warning.Printf("%s: notes do not match the diagram on strings %v\n", name, r.mismatches[name])
	}
}
