package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/jsphweid/fretcards/chord"
	"github.com/jsphweid/fretcards/constants"
	"github.com/jsphweid/fretcards/diagram"
	"github.com/jsphweid/fretcards/file"
	"github.com/jsphweid/fretcards/model"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	renderOut       string
	renderFingering bool
	renderName      bool
	renderDedupe    string
	renderStrings   int
)

func init() {
	renderCmd.Flags().StringVar(&renderOut, "out", "", "output directory (default $OUTPUT_DIR or ./out)")
	renderCmd.Flags().BoolVar(&renderFingering, "fingering", false, "print finger numbers on the dots")
	renderCmd.Flags().BoolVar(&renderName, "name", false, "print the chord name above the diagram")
	renderCmd.Flags().StringVar(&renderDedupe, "dedupe", "name", "drop duplicate chords by [name|diagram|none]")
	renderCmd.Flags().IntVar(&renderStrings, "strings", 0, "only chords with this many strings (0 for all)")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render [chord names...]",
	Short: "Renders chord diagrams to PNG",
	Long:  `Renders the diagram of every named chord, or of all chords, into PNG files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		chords, err := loadChords()
		if err != nil {
			return err
		}
		if renderStrings > 0 {
			chords = chord.ForStrings(chords, renderStrings)
		}
		chords, err = dedupe(chords, renderDedupe)
		if err != nil {
			return err
		}
		chords, err = selectChords(chords, args)
		if err != nil {
			return err
		}

		out := renderOut
		if out == "" {
			out = constants.GetOutputDir()
		}
		opts := diagram.Options{ShowName: renderName, ShowFingering: renderFingering}
		return renderAll(chords, out, opts)
	},
}

func dedupe(chords []model.Chord, policy string) ([]model.Chord, error) {
	switch policy {
	case "name":
		return chord.Dedupe(chords, chord.ByName), nil
	case "diagram":
		return chord.Dedupe(chords, chord.ByDiagram), nil
	case "none":
		return chords, nil
	}
	return nil, fmt.Errorf("unknown dedupe policy: %s", policy)
}

// selectChords picks the named chords, or returns all when no name is given.
func selectChords(chords []model.Chord, names []string) ([]model.Chord, error) {
	if len(names) == 0 {
		return chords, nil
	}
	var res []model.Chord
	for _, name := range names {
		c, ok := chord.Find(chords, name)
		if !ok {
			return nil, notFound(chords, name)
		}
		res = append(res, c)
	}
	return res, nil
}

func notFound(chords []model.Chord, name string) error {
	suggestions := chord.Suggest(chords, name, 3)
	if len(suggestions) == 0 {
		return fmt.Errorf("no chord named %q", name)
	}
	return fmt.Errorf("no chord named %q, did you mean %v?", name, suggestions)
}

func renderAll(chords []model.Chord, out string, opts diagram.Options) error {
	scale := constants.GetRenderScale()
	for i, c := range chords {
		path := filepath.Join(out, file.DiagramName(c.Name))
		if err := diagram.SavePNG(path, c, opts, scale); err != nil {
			return fmt.Errorf("%s: %w", c.Name, err)
		}
		pterm.Printf("Rendered %v of %v: %s\n", i+1, len(chords), path)
	}
	return nil
}
