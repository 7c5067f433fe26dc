package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jsphweid/fretcards/chord"
	"github.com/jsphweid/fretcards/constants"
	"github.com/jsphweid/fretcards/model"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	traceLevel string
	chordsPath string
)

var traceSelectors = []string{"fretcards.chord", "fretcards.diagram"}

var rootCmd = &cobra.Command{
	Use:   "fretcards",
	Short: "Chord diagrams and music theory flashcards",
	Long: `Renders fretboard chord diagrams, typesets note and chord names for
flashcards and samples material for practice sessions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setTraceLevel(traceLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "Error", "Trace level [Debug|Info|Error]")
	rootCmd.PersistentFlags().StringVar(&chordsPath, "chords", "", "chords CSV file (default $CHORDS_PATH or data/guitar_chords.csv)")
}

func setTraceLevel(level string) error {
	var l tracing.TraceLevel
	switch level {
	case "Debug":
		l = tracing.LevelDebug
	case "Info":
		l = tracing.LevelInfo
	case "Error":
		l = tracing.LevelError
	default:
		return fmt.Errorf("invalid trace level: %s", level)
	}
	for _, sel := range traceSelectors {
		tracing.Select(sel).SetTraceLevel(l)
	}
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func loadChords() ([]model.Chord, error) {
	path := chordsPath
	if path == "" {
		path = constants.GetChordsPath()
	}
	return chord.LoadFile(path)
}

func Execute() {
	// a missing .env is fine, the environment may be set already
	_ = godotenv.Load()
	initDisplay()
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
