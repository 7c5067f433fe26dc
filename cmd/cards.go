package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jsphweid/fretcards/cards"
	"github.com/jsphweid/fretcards/chord"
	"github.com/jsphweid/fretcards/constants"
	"github.com/jsphweid/fretcards/diagram"
	"github.com/jsphweid/fretcards/file"
	"github.com/jsphweid/fretcards/model"
	"github.com/jsphweid/fretcards/pitch"
	"github.com/jsphweid/fretcards/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var cardsOut string

var decks = map[string]func() ([]model.Card, error){
	"circle-of-fifths": func() ([]model.Card, error) { return cards.CircleOfFifths(), nil },
	"interval-sizes":   func() ([]model.Card, error) { return cards.IntervalSizes(), nil },
	"note-distances":   func() ([]model.Card, error) { return cards.NoteDistances(), nil },
	"chord-notes":      chordNoteCards,
}

func init() {
	cardsCmd.Flags().StringVar(&cardsOut, "out", "", "output directory (default $OUTPUT_DIR or ./out)")
	rootCmd.AddCommand(cardsCmd)
}

var cardsCmd = &cobra.Command{
	Use:   "cards [decks...]",
	Short: "Writes flashcard content",
	Long: fmt.Sprintf(`Writes the cards of each deck as JSON lines, one file per deck.
Decks: %s. Without arguments all decks are written.
Chord diagrams referenced by the chord-notes deck go into the media directory.`,
		strings.Join(util.SortedKeys(decks), ", ")),
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if len(names) == 0 {
			names = util.SortedKeys(decks)
		}
		for _, name := range names {
			if _, ok := decks[name]; !ok {
				return fmt.Errorf("unknown deck %q", name)
			}
		}

		if cardsOut == "" {
			cardsOut = constants.GetOutputDir()
		}
		if err := util.EnsureDir(cardsOut); err != nil {
			return err
		}
		for _, name := range names {
			deck, err := decks[name]()
			if err != nil {
				return err
			}
			path := filepath.Join(cardsOut, name+".jsonl")
			if err := util.CreateJSONLines(path, deck); err != nil {
				return err
			}
			pterm.Success.Printf("%s: %d cards in %s\n", name, len(deck), path)
		}
		return nil
	},
}

// chordNoteCards renders one diagram per guitar chord name and builds the
// cards that show them.
func chordNoteCards() ([]model.Card, error) {
	chords, err := loadChords()
	if err != nil {
		return nil, err
	}
	chords = chord.Dedupe(chord.ForStrings(chords, len(pitch.Guitar)), chord.ByName)

	media := filepath.Join(cardsOut, "media")
	if err := renderAll(chords, media, diagram.Options{}); err != nil {
		return nil, err
	}
	return cards.ChordNotes(chords, file.DiagramName), nil
}
