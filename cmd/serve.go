package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jsphweid/fretcards/chord"
	"github.com/jsphweid/fretcards/constants"
	"github.com/jsphweid/fretcards/diagram"
	"github.com/jsphweid/fretcards/midi"
	"github.com/jsphweid/fretcards/model"
	"github.com/pterm/pterm"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves chords, diagrams and notation over HTTP",
	Long: `Serves the loaded chords as JSON, their diagrams as PNG, their sound
as MIDI and LaTeX notation for notes, degrees and chord names.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		chords, err := loadChords()
		if err != nil {
			return err
		}
		addr := ":" + constants.GetPort()
		pterm.Info.Printf("Serving %d chords on %s\n", len(chords), addr)
		return http.ListenAndServe(addr, NewRouter(chords))
	},
}

type server struct {
	chords  []model.Chord
	limiter *rate.Limiter
}

// NewRouter returns the HTTP API over chords. Chord names are path
// segments and must be escaped, so C/G is requested as C%2FG.
func NewRouter(chords []model.Chord) http.Handler {
	s := &server{
		chords:  chords,
		limiter: rate.NewLimiter(rate.Limit(constants.RenderRateLimit), constants.RenderBurst),
	}

	router := mux.NewRouter().StrictSlash(true).UseEncodedPath()
	router.HandleFunc("/chords", s.handleChords).Methods("GET")
	router.HandleFunc("/chords/{name}", s.handleChord).Methods("GET")
	router.HandleFunc("/notation/{kind}", handleNotation).Methods("GET")

	render := router.PathPrefix("/chords/{name}").Subrouter()
	render.Use(s.throttle)
	render.HandleFunc("/diagram.png", s.handleDiagram).Methods("GET")
	render.HandleFunc("/chord.mid", s.handleMIDI).Methods("GET")

	return cors.Default().Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		pterm.Error.Printf("could not encode response: %v\n", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, model.ErrorResponse{Error: detail})
}

func (s *server) throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "too many render requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// lookup finds the chord named in the request path and writes a 404 with
// similar names when there is none.
func (s *server) lookup(w http.ResponseWriter, r *http.Request) (model.Chord, bool) {
	name, err := url.PathUnescape(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return model.Chord{}, false
	}
	c, ok := chord.Find(s.chords, name)
	if !ok {
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{
			Error:       fmt.Sprintf("no chord named %q", name),
			Suggestions: chord.Suggest(s.chords, name, 5),
		})
	}
	return c, ok
}

func summarize(c model.Chord) model.ChordSummary {
	frets := make([]string, len(c.Diagram))
	for i, f := range c.Diagram {
		frets[i] = f.String()
	}
	fingers := make([]string, len(c.Fingering))
	for i, f := range c.Fingering {
		fingers[i] = f.String()
	}
	return model.ChordSummary{
		Name:      c.Name,
		Diagram:   strings.Join(frets, " "),
		Fingering: strings.Join(fingers, " "),
		Notes:     c.Notes,
		Degrees:   c.Degrees,
	}
}

func (s *server) handleChords(w http.ResponseWriter, r *http.Request) {
	res := make([]model.ChordSummary, 0, len(s.chords))
	for _, c := range s.chords {
		res = append(res, summarize(c))
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *server) handleChord(w http.ResponseWriter, r *http.Request) {
	c, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, summarize(c))
}

func (s *server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	c, ok := s.lookup(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	opts := diagram.Options{
		ShowFingering: q.Get("fingering") == "true",
		ShowName:      q.Get("title") == "true",
	}

	var buf bytes.Buffer
	if err := diagram.RenderPNG(&buf, c, opts, constants.GetRenderScale()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

func (s *server) handleMIDI(w http.ResponseWriter, r *http.Request) {
	c, ok := s.lookup(w, r)
	if !ok {
		return
	}
	notes, err := chordMIDINotes(c)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := midi.WriteChord(&buf, c.Name, notes, midi.DefaultOptions()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "audio/midi")
	w.Write(buf.Bytes())
}

func handleNotation(w http.ResponseWriter, r *http.Request) {
	f, ok := formatters[mux.Vars(r)["kind"]]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown notation, use note, degree or chord")
		return
	}
	value := r.URL.Query().Get("value")
	writeJSON(w, http.StatusOK, model.NotationResponse{Input: value, Latex: f(value)})
}
