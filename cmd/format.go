package cmd

import (
	"fmt"

	"github.com/jsphweid/fretcards/notation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var formatters = map[string]func(string) string{
	"note":   notation.Note,
	"degree": notation.Degree,
	"chord":  notation.Chord,
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

var formatCmd = &cobra.Command{
	Use:   "format (note|degree|chord) values...",
	Short: "Typesets notes, degrees or chord names as LaTeX",
	Long:  `Prints the LaTeX inline math used on flashcards for every value.`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, ok := formatters[args[0]]
		if !ok {
			return fmt.Errorf("unknown kind %q, use note, degree or chord", args[0])
		}
		for _, v := range args[1:] {
			pterm.Println(f(v))
		}
		return nil
	},
}
