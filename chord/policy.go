package chord

import (
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/jsphweid/fretcards/model"
)

// Strategy picks the key under which chords count as duplicates.
type Strategy int

const (
	// ByName keeps the first fingering of every chord name.
	ByName Strategy = iota
	// ByDiagram keeps the first chord of every distinct shape.
	ByDiagram
)

// DiagramKey is the signature of a chord shape, e.g. "x-3-2-0-1-0".
func DiagramKey(c model.Chord) string {
	var res string
	for i, f := range c.Diagram {
		res += f.String()
		if i < len(c.Diagram)-1 {
			res += "-"
		}
	}
	return res
}

// Dedupe returns chords with duplicates removed, first occurrence wins.
func Dedupe(chords []model.Chord, strategy Strategy) []model.Chord {
	seen := make(map[string]bool)
	var res []model.Chord
	for _, c := range chords {
		key := c.Name
		if strategy == ByDiagram {
			key = DiagramKey(c)
		}
		if seen[key] {
			tracer().Debugf("dropping duplicate chord %s (%s)", c.Name, key)
			continue
		}
		seen[key] = true
		res = append(res, c)
	}
	return res
}

// ForStrings keeps the chords written for an instrument with n strings.
func ForStrings(chords []model.Chord, n int) []model.Chord {
	var res []model.Chord
	for _, c := range chords {
		if c.NumStrings() == n {
			res = append(res, c)
		}
	}
	return res
}

// Find returns the first chord called name.
func Find(chords []model.Chord, name string) (model.Chord, bool) {
	for _, c := range chords {
		if c.Name == name {
			return c, true
		}
	}
	return model.Chord{}, false
}

const suggestThreshold = 0.75

// Suggest returns up to limit distinct chord names that look like name,
// best match first.
func Suggest(chords []model.Chord, name string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	query := strings.ToLower(name)
	seen := make(map[string]bool)
	var candidates []scored
	for _, c := range chords {
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		score := strutil.Similarity(query, strings.ToLower(c.Name), metrics.NewJaroWinkler())
		if score >= suggestThreshold {
			candidates = append(candidates, scored{c.Name, score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	var res []string
	for i, c := range candidates {
		if i >= limit {
			break
		}
		res = append(res, c.name)
	}
	return res
}
