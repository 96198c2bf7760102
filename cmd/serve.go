package cmd

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/key"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/position"
	"github.com/jsphweid/fretdex/scale"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/jsphweid/fretdex/voicing"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the engine over HTTP",
	Long:  `Serves the engine over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func tuningFromNames(names []string) (tuning.Tuning, bool) {
	if len(names) == 0 {
		return tuning.Standard, true
	}
	if len(names) == 1 {
		if t, ok := tuning.ByName(names[0]); ok {
			return t, true
		}
	}
	return tuning.Parse(names)
}

// decodeAnalyze reads the shared request shape of the analysis
// endpoints and derives the played note set.
func decodeAnalyze(r *http.Request) (model.PlayedNoteSet, note.Class, string) {
	var input model.AnalyzeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return model.PlayedNoteSet{}, note.NoClass, "could not parse request body"
	}

	t, ok := tuningFromNames(input.Tuning)
	if !ok {
		return model.PlayedNoteSet{}, note.NoClass, "bad tuning"
	}
	frets, ok := tuning.ParseFrets(strings.Join(input.Frets, ","))
	if !ok {
		return model.PlayedNoteSet{}, note.NoClass, "bad frets"
	}

	hint := note.NoClass
	if input.Hint != "" {
		c, ok := note.ParseClass(input.Hint)
		if !ok {
			return model.PlayedNoteSet{}, note.NoClass, "bad hint"
		}
		hint = c
	}
	return tuning.NotesAt(t, frets), hint, ""
}

func handleIdentify(w http.ResponseWriter, r *http.Request) {
	set, _, errMsg := decodeAnalyze(r)
	if errMsg != "" {
		writeError(w, 400, errMsg)
		return
	}
	id := chord.Identify(set)
	if id == nil {
		writeError(w, 422, "need at least two distinct notes")
		return
	}
	json.NewEncoder(w).Encode(id)
}

func handleSuggestions(w http.ResponseWriter, r *http.Request) {
	set, _, errMsg := decodeAnalyze(r)
	if errMsg != "" {
		writeError(w, 400, errMsg)
		return
	}
	res := chord.Suggest(set)
	if res == nil {
		res = make([]model.ChordSuggestion, 0)
	}
	json.NewEncoder(w).Encode(res)
}

func handleScales(w http.ResponseWriter, r *http.Request) {
	set, _, errMsg := decodeAnalyze(r)
	if errMsg != "" {
		writeError(w, 400, errMsg)
		return
	}
	res := scale.Identify(set)
	if res == nil {
		res = make([]model.ScaleSuggestion, 0)
	}
	json.NewEncoder(w).Encode(res)
}

func handleKeys(w http.ResponseWriter, r *http.Request) {
	set, hint, errMsg := decodeAnalyze(r)
	if errMsg != "" {
		writeError(w, 400, errMsg)
		return
	}
	res := key.Identify(set, hint)
	if res == nil {
		res = make([]model.KeySuggestion, 0)
	}
	json.NewEncoder(w).Encode(res)
}

func handleVoicings(w http.ResponseWriter, r *http.Request) {
	var input model.GenerateRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "could not parse request body")
		return
	}

	root, ok := note.ParseClass(input.Root)
	if !ok {
		writeError(w, 400, "bad root")
		return
	}
	q, ok := model.ParseQuality(input.Quality)
	if !ok {
		writeError(w, 400, "bad quality")
		return
	}
	filter, ok := model.ParseVoicingFilter(input.Filter)
	if !ok {
		writeError(w, 400, "bad filter")
		return
	}
	t, ok := tuningFromNames(input.Tuning)
	if !ok {
		writeError(w, 400, "bad tuning")
		return
	}

	res := voicing.Generate(root, q, t, filter)
	if res == nil {
		res = make([]model.Voicing, 0)
	}
	json.NewEncoder(w).Encode(res)
}

func handlePositions(w http.ResponseWriter, r *http.Request) {
	var input model.PositionsRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "could not parse request body")
		return
	}

	root, ok := note.ParseClass(input.Root)
	if !ok {
		writeError(w, 400, "bad root")
		return
	}
	st, ok := model.ParseScaleType(input.Scale)
	if !ok {
		writeError(w, 400, "bad scale")
		return
	}
	t, ok := tuningFromNames(input.Tuning)
	if !ok {
		writeError(w, 400, "bad tuning")
		return
	}

	if input.Full {
		res := position.FullFretboard(root, st, t, input.MaxFret)
		if res == nil {
			res = make([]model.HighlightedNote, 0)
		}
		json.NewEncoder(w).Encode(res)
		return
	}

	res := position.Generate(root, st, t)
	if res == nil {
		res = make([]model.ScalePosition, 0)
	}
	json.NewEncoder(w).Encode(res)
}

// NewRouter wires every endpoint. Exposed so tests can drive the
// handlers without a listener.
func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/identify", handleIdentify).Methods("POST")
	router.HandleFunc("/suggestions", handleSuggestions).Methods("POST")
	router.HandleFunc("/scales", handleScales).Methods("POST")
	router.HandleFunc("/keys", handleKeys).Methods("POST")
	router.HandleFunc("/voicings", handleVoicings).Methods("POST")
	router.HandleFunc("/positions", handlePositions).Methods("POST")
	return router
}

func serve() {
	handler := cors.Default().Handler(NewRouter())
	log.Fatal(http.ListenAndServe(constants.GetServeAddr(), handler))
}
