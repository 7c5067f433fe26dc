package cmd

import (
	"bufio"
	"errors"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jsphweid/fretcards/constants"
	"github.com/jsphweid/fretcards/diagram"
	"github.com/jsphweid/fretcards/model"
	"github.com/jsphweid/fretcards/notation"
	"github.com/jsphweid/fretcards/sample"
	"github.com/jsphweid/fretcards/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	noNaturals   bool
	withFlats    bool
	withSharps   bool
	changesLimit int
	changesSize  int
	changesImage bool
	practiceSeed int64
)

func init() {
	practiceNotesCmd.Flags().BoolVarP(&noNaturals, "no-naturals", "N", false, "leave out natural notes")
	practiceNotesCmd.Flags().BoolVar(&withFlats, "flats", false, "include flat notes")
	practiceNotesCmd.Flags().BoolVar(&withSharps, "sharps", false, "include sharp notes")

	practiceChangesCmd.Flags().IntVar(&changesLimit, "count", 0, "number of chords in the session (0 for all)")
	practiceChangesCmd.Flags().IntVarP(&changesSize, "n", "n", 2, "chords shown at a time")
	practiceChangesCmd.Flags().BoolVar(&changesImage, "image", false, "also render each page into practice.png")

	practiceCmd.PersistentFlags().Int64Var(&practiceSeed, "seed", 0, "random seed (0 picks one from the clock)")
	practiceCmd.AddCommand(practiceNotesCmd, practiceChangesCmd)
	rootCmd.AddCommand(practiceCmd)
}

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Random practice material",
}

func newRand() *rand.Rand {
	seed := practiceSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

var practiceNotesCmd = &cobra.Command{
	Use:   "notes <count>",
	Short: "Prints notes to find on the fretboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		opts := sample.NoteOptions{NoNaturals: noNaturals, Flats: withFlats, Sharps: withSharps}
		notes, err := sample.Notes(n, opts, newRand())
		if err != nil {
			return err
		}
		pterm.Println(strings.Join(notes, " "))
		return nil
	},
}

var practiceChangesCmd = &cobra.Command{
	Use:   "changes",
	Short: "Steps through random pages of chords",
	Long: `Shows a few random chords at a time. Press Enter for the next page
and q to quit. The session ends when fewer chords are left than fit on a page.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		chords, err := loadChords()
		if err != nil {
			return err
		}
		changes, err := sample.NewChanges(chords, changesLimit, changesSize, newRand())
		if err != nil {
			return err
		}
		return runChanges(changes, os.Stdin, pageImagePath())
	},
}

func pageImagePath() string {
	if !changesImage {
		return ""
	}
	return filepath.Join(constants.GetOutputDir(), "practice.png")
}

// runChanges prints page after page, waiting for a line on in between.
func runChanges(changes *sample.Changes, in io.Reader, imagePath string) error {
	pterm.Info.Printf("%d chords, %d at a time\n", changes.Len(), changesSize)
	input := bufio.NewReader(in)
	for {
		page, ok := changes.Next()
		if !ok {
			pterm.Success.Println("Done.")
			return nil
		}
		names := make([]string, len(page))
		for i, c := range page {
			names[i] = c.Name
		}
		pterm.DefaultTable.WithData([][]string{
			names,
			notation.Row(names, notation.Chord),
		}).Render()

		if imagePath != "" {
			if err := savePage(imagePath, page); err != nil {
				return err
			}
		}

		line, err := input.ReadString('\n')
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "q" {
			return nil
		}
	}
}

var pageOptions = diagram.Options{ShowName: true, ShowFingering: true}

// pageImage draws the diagrams of a page next to each other.
func pageImage(page []model.Chord, scale float64) *image.RGBA {
	var tiles []*image.RGBA
	width, height := 0, 0
	for _, c := range page {
		r := diagram.NewRaster(scale)
		diagram.Draw(r, c, pageOptions)
		tile := r.Image()
		tiles = append(tiles, tile)
		width += tile.Bounds().Dx()
		if tile.Bounds().Dy() > height {
			height = tile.Bounds().Dy()
		}
	}

	res := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(res, res.Bounds(), image.NewUniform(diagram.Paper), image.Point{}, draw.Src)
	x := 0
	for _, tile := range tiles {
		b := tile.Bounds()
		draw.Draw(res, image.Rect(x, 0, x+b.Dx(), b.Dy()), tile, b.Min, draw.Over)
		x += b.Dx()
	}
	return res
}

func savePage(path string, page []model.Chord) error {
	if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, pageImage(page, constants.GetRenderScale()))
}
