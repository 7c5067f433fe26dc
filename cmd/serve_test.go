package cmd

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsphweid/fretcards/chord"
	"github.com/jsphweid/fretcards/midi"
	"github.com/jsphweid/fretcards/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

const serveCSV = `name,diagram,fingering,notes,degrees
C,x 3 2 0 1 0,x 3 2 x 1 x,x C E G C E,x 1 3 5 1 3
C/G,3 3 2 0 1 0,3 4 2 x 1 x,G C E G C E,5 1 3 5 1 3
F,1 3 3 2 1 1,1 3 4 2 1 1,F C F A C F,1 5 1 3 5 1
`

func testChords(t *testing.T) []model.Chord {
	chords, err := chord.Load(strings.NewReader(serveCSV))
	require.NoError(t, err)
	return chords
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestServeListsChords(t *testing.T) {
	w := get(t, NewRouter(testChords(t)), "/chords")
	require.Equal(t, http.StatusOK, w.Code)

	var res []model.ChordSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res, 3)
	assert.Equal(t, model.ChordSummary{
		Name:      "C",
		Diagram:   "x 3 2 0 1 0",
		Fingering: "x 3 2 x 1 x",
		Notes:     []string{"", "C", "E", "G", "C", "E"},
		Degrees:   []string{"", "1", "3", "5", "1", "3"},
	}, res[0])
}

func TestServeChordWithEscapedSlash(t *testing.T) {
	w := get(t, NewRouter(testChords(t)), "/chords/C%2FG")
	require.Equal(t, http.StatusOK, w.Code)

	var res model.ChordSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "C/G", res.Name)
	assert.Equal(t, "3 3 2 0 1 0", res.Diagram)
}

func TestServeUnknownChordSuggests(t *testing.T) {
	w := get(t, NewRouter(testChords(t)), "/chords/C%2FF")
	require.Equal(t, http.StatusNotFound, w.Code)

	var res model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Contains(t, res.Error, "C/F")
	assert.Contains(t, res.Suggestions, "C/G")
}

func TestServeDiagram(t *testing.T) {
	w := get(t, NewRouter(testChords(t)), "/chords/F/diagram.png?fingering=true")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	img, err := png.Decode(w.Body)
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), 0)
	assert.Greater(t, img.Bounds().Dy(), 0)
}

func TestServeMIDI(t *testing.T) {
	w := get(t, NewRouter(testChords(t)), "/chords/C/chord.mid")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/midi", w.Header().Get("Content-Type"))

	s, err := midi.Read(w.Body)
	require.NoError(t, err)
	assert.Equal(t, []uint8{48, 52, 55, 60, 64}, midi.ReadNotes(s))
}

func TestServeNotation(t *testing.T) {
	h := NewRouter(testChords(t))

	w := get(t, h, "/notation/chord?value=F%23m7b5")
	require.Equal(t, http.StatusOK, w.Code)
	var res model.NotationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "F#m7b5", res.Input)
	assert.Equal(t, `\(\text{F}\sharp\text{m}7\flat5\)`, res.Latex)

	w = get(t, h, "/notation/scale?value=C")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestThrottleRejectsOverLimit(t *testing.T) {
	s := &server{limiter: rate.NewLimiter(0, 1)}
	h := s.throttle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	assert.Equal(t, http.StatusNoContent, get(t, h, "/").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(t, h, "/").Code)
}

func TestWriteJSONReportsEncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()
	writeJSON(w, http.StatusOK, make(chan int))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Zero(t, w.Body.Len())
}
