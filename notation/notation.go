// Package notation turns note names, scale degrees and chord names into
// LaTeX inline math, e.g. "F#m7b5" becomes \(\text{F}\sharp\text{m}7\flat5\).
//
// A lowercase b is always read as a flat outside the first character of a
// note. Chord quality words containing a literal b would therefore be split;
// none of the chord vocabulary in use has one.
package notation

import (
	"strings"
	"unicode"
)

const (
	mathOpen  = `\(`
	mathClose = `\)`
	sharp     = `\sharp`
	flat      = `\flat`
)

func wrap(body string) string {
	return mathOpen + body + mathClose
}

// Note formats a note name: one letter followed by any number of
// accidentals. The first character is always literal text.
func Note(note string) string {
	runes := []rune(note)
	if len(runes) == 0 {
		return wrap("")
	}

	var b strings.Builder
	b.WriteString(`\text{` + string(runes[0]) + `}`)
	for _, r := range runes[1:] {
		switch r {
		case '#':
			b.WriteString(sharp)
		case 'b':
			b.WriteString(flat)
		}
	}
	return wrap(b.String())
}

// Degree formats a scale degree such as "b13" or "#9". Characters other
// than accidentals and digits are dropped.
func Degree(degree string) string {
	var b strings.Builder
	for _, r := range degree {
		switch {
		case r == '#':
			b.WriteString(sharp)
		case r == 'b':
			b.WriteString(flat)
		case unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}
	return wrap(b.String())
}

func breaksRun(r rune) bool {
	return r == '#' || r == 'b' || r == '/'
}

// Chord formats a full chord name. Runs of letters become \text{...}, #
// and b become sharp and flat glyphs, digits and slashes pass through.
func Chord(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case !breaksRun(r) && !unicode.IsDigit(r):
			b.WriteString(`\text{`)
			b.WriteRune(r)
			i++
			for i < len(runes) && unicode.IsLetter(runes[i]) && !breaksRun(runes[i]) {
				b.WriteRune(runes[i])
				i++
			}
			b.WriteString("}")
			continue
		case r == '#':
			b.WriteString(sharp)
		case r == 'b':
			b.WriteString(flat)
		default:
			b.WriteRune(r)
		}
		i++
	}
	return wrap(b.String())
}

// Row formats every token of a table row with f. Empty tokens stay empty
// so that cells keep lining up with strings.
func Row(tokens []string, f func(string) string) []string {
	res := make([]string, len(tokens))
	for i, t := range tokens {
		if t == "" {
			continue
		}
		res[i] = f(t)
	}
	return res
}
