package chord

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jsphweid/fretcards/model"
)

// Unused marks a string that is not played in the diagram, fingering, notes
// or degrees field.
const Unused = "x"

const numFields = 5

// RecordError reports the line of a chord file that could not be loaded.
type RecordError struct {
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("chord record on line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

func parseFrets(field string) ([]model.Fret, error) {
	var res []model.Fret
	for _, tok := range strings.Fields(field) {
		if tok == Unused {
			res = append(res, model.MutedFret())
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid fret %q", tok)
		}
		res = append(res, model.Fretted(n))
	}
	return res, nil
}

func parseFingers(field string) ([]model.Finger, error) {
	var res []model.Finger
	for _, tok := range strings.Fields(field) {
		if tok == Unused {
			res = append(res, model.NoFinger())
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid finger %q", tok)
		}
		res = append(res, model.FingerOf(n))
	}
	return res, nil
}

func parseLabels(field string) []string {
	tokens := strings.Fields(field)
	for i, tok := range tokens {
		if tok == Unused {
			tokens[i] = ""
		}
	}
	return tokens
}

// ParseRecord builds a chord from the five fields of one record.
func ParseRecord(fields []string) (model.Chord, error) {
	if len(fields) != numFields {
		return model.Chord{}, fmt.Errorf("expected %d fields, got %d", numFields, len(fields))
	}

	name := strings.TrimSpace(fields[0])
	if name == "" {
		return model.Chord{}, errors.New("chord name is empty")
	}
	diagram, err := parseFrets(fields[1])
	if err != nil {
		return model.Chord{}, fmt.Errorf("%s: %w", name, err)
	}
	if len(diagram) == 0 {
		return model.Chord{}, fmt.Errorf("%s: diagram is empty", name)
	}
	fingering, err := parseFingers(fields[2])
	if err != nil {
		return model.Chord{}, fmt.Errorf("%s: %w", name, err)
	}

	return model.NewChord(name, diagram, fingering, parseLabels(fields[3]), parseLabels(fields[4]))
}

// Load reads every chord record from r in order. The first line is a
// header and is skipped. Any bad record fails the whole load.
func Load(r io.Reader) ([]model.Chord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("could not read chord header: %w", err)
	}

	var chords []model.Chord
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := reader.FieldPos(0)
		c, err := ParseRecord(record)
		if err != nil {
			return nil, &RecordError{Line: line, Err: err}
		}
		chords = append(chords, c)
	}

	tracer().Debugf("loaded %d chords", len(chords))
	return chords, nil
}

func LoadFile(path string) ([]model.Chord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open chords file: %w", err)
	}
	defer f.Close()

	return Load(f)
}
