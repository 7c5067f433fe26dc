// Package cards builds the content of music theory flashcards. Packaging
// the cards into a deck file is left to the importing application.
package cards

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jsphweid/fretcards/model"
	"github.com/jsphweid/fretcards/notation"
)

const (
	CircleOfFifthsDeck = "Music::Circle of Fifths"
	IntervalSizesDeck  = "Music::Interval Sizes"
	NoteDistancesDeck  = "Music::Note Distances"
	ChordNotesDeck     = "Music::Guitar Chord Notes"
)

// newCard derives the id from deck and front so that regenerating a deck
// updates cards instead of duplicating them.
func newCard(deck, front, back string) model.Card {
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("fretcards:"+deck+"/"+front))
	return model.Card{
		ID:    id.String(),
		Deck:  deck,
		Front: front,
		Back:  back,
	}
}

// key signatures ordered around the circle, major and relative minor
var (
	majors      = strings.Fields("C G D A E B F# C# Cb Gb Db Ab Eb Bb F")
	minors      = strings.Fields("a e b f# c# g# d# a# ab eb bb f c g d")
	accidentals = strings.Fields("0_ 1# 2# 3# 4# 5# 6# 7# 7b 6b 5b 4b 3b 2b 1b")
	// order in which sharps are added; flats use it backwards
	accidentalOrder = strings.Fields("F C G D A E B")
)

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// keyAccidentals returns the altered notes of a key with the given signature.
func keyAccidentals(sharps, flats int) []string {
	var res []string
	for _, n := range accidentalOrder[:sharps] {
		res = append(res, n+"#")
	}
	for i := 0; i < flats; i++ {
		res = append(res, accidentalOrder[len(accidentalOrder)-1-i]+"b")
	}
	return res
}

// CircleOfFifths covers relative keys, signature sizes, the accidentals of
// every key and the neighbouring keys a fourth and a fifth away.
func CircleOfFifths() []model.Card {
	var res []model.Card
	for i, maj := range majors {
		minor := minors[i]
		acc := accidentals[i]
		majTex, minTex := notation.Note(maj), notation.Note(minor)

		res = append(res,
			newCard(CircleOfFifthsDeck, "Relative minor of "+majTex, minTex),
			newCard(CircleOfFifthsDeck, "Relative major of "+minTex, majTex),
		)

		count := int(acc[0] - '0')
		var sharps, flats int
		switch acc[1] {
		case '#':
			sharps = count
		case 'b':
			flats = count
		}
		answer := "no accidentals"
		if sharps > 0 {
			answer = plural(sharps, "sharp")
		} else if flats > 0 {
			answer = plural(flats, "flat")
		}
		for _, key := range []string{majTex, minTex} {
			res = append(res, newCard(CircleOfFifthsDeck, fmt.Sprintf("How many sharps/flats in %s?", key), answer))
		}

		var notes []string
		for _, n := range keyAccidentals(sharps, flats) {
			notes = append(notes, notation.Note(n))
		}
		listed := strings.Join(notes, " ")
		if listed == "" {
			listed = "-"
		}
		for _, key := range []string{majTex, minTex} {
			res = append(res, newCard(CircleOfFifthsDeck, fmt.Sprintf("What are the accidentals in %s?", key), listed))
		}

		// enharmonic ends of the circle
		if maj == "C#" || maj == "Cb" {
			continue
		}
		fourth := majors[(i-1+len(majors))%len(majors)]
		fifth := majors[(i+1)%len(majors)]
		res = append(res, newCard(CircleOfFifthsDeck,
			fmt.Sprintf("What are the P4 and P5 of %s?", majTex),
			fmt.Sprintf("%s and %s", notation.Note(fourth), notation.Note(fifth))))
	}
	return res
}

type interval struct {
	number    int
	perfect   bool
	halfSteps int
}

var intervals = []interval{
	{1, true, 0},
	{2, false, 2},
	{3, false, 4},
	{4, true, 5},
	{5, true, 7},
	{6, false, 9},
	{7, false, 11},
	{8, true, 12},
}

type qualified struct {
	name string
	size int
}

func qualify(iv interval) []qualified {
	n := iv.number
	if iv.perfect {
		res := []qualified{
			{fmt.Sprintf("P%d", n), iv.halfSteps},
			{fmt.Sprintf("A%d", n), iv.halfSteps + 1},
		}
		if iv.halfSteps >= 1 {
			res = append(res, qualified{fmt.Sprintf("d%d", n), iv.halfSteps - 1})
		}
		return res
	}
	return []qualified{
		{fmt.Sprintf("M%d", n), iv.halfSteps},
		{fmt.Sprintf("m%d", n), iv.halfSteps - 1},
		{fmt.Sprintf("A%d", n), iv.halfSteps + 1},
		{fmt.Sprintf("d%d", n), iv.halfSteps - 2},
	}
}

// IntervalSizes asks for the half steps of every qualified interval within
// an octave, then for the intervals sharing each size.
func IntervalSizes() []model.Card {
	var res []model.Card
	bySize := make(map[int][]string)
	var sizes []int

	for _, iv := range intervals {
		for _, q := range qualify(iv) {
			if _, ok := bySize[q.size]; !ok {
				sizes = append(sizes, q.size)
			}
			bySize[q.size] = append(bySize[q.size], q.name)
			res = append(res, newCard(IntervalSizesDeck,
				fmt.Sprintf("How large is %s?", q.name),
				fmt.Sprintf("%d half steps", q.size)))
		}
	}

	for _, size := range sizes {
		res = append(res, newCard(IntervalSizesDeck,
			fmt.Sprintf("Which intervals equal %d half steps?", size),
			strings.Join(bySize[size], ", ")))
	}
	return res
}

const letters = "CDEFGAB"

// NoteDistances asks how many letters lie from one note to another going
// up, both ends included: C to F is 4.
func NoteDistances() []model.Card {
	var res []model.Card
	for i := 0; i < len(letters); i++ {
		for j := 0; j < len(letters); j++ {
			if i == j {
				continue
			}
			end := j
			if end < i {
				end += len(letters)
			}
			res = append(res, newCard(NoteDistancesDeck,
				fmt.Sprintf("Distance between %c and %c?", letters[i], letters[j]),
				fmt.Sprint(end-i+1)))
		}
	}
	return res
}

const tableStyle = `style="margin-left: auto; margin-right: auto; padding: 10px;"`

func tableRow(cells []string) string {
	var b strings.Builder
	b.WriteString("<tr>")
	for _, c := range cells {
		b.WriteString("<td>" + c + "</td>")
	}
	b.WriteString("</tr>")
	return b.String()
}

// ChordNotes shows a chord diagram and asks for the chord name and the note
// and scale degree of every string. image maps a chord name to the file
// name of its rendered diagram.
func ChordNotes(chords []model.Chord, image func(name string) string) []model.Card {
	var res []model.Card
	for _, c := range chords {
		table := "<table " + tableStyle + ">" +
			tableRow(notation.Row(c.Notes, notation.Note)) +
			tableRow(notation.Row(c.Degrees, notation.Degree)) +
			"</table>"

		img := image(c.Name)
		card := newCard(ChordNotesDeck,
			fmt.Sprintf(`<img src="%s" width="150px">`, img),
			notation.Chord(c.Name)+"<br>"+table)
		card.Media = []string{img}
		res = append(res, card)
	}
	return res
}
