package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/but80/eartrainer/game"
	"github.com/but80/eartrainer/music/enums"
	"github.com/but80/eartrainer/music/log"
	"github.com/but80/eartrainer/music/note"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/cors"
)

// Server answers spelling questions over HTTP.
type Server struct {
	handler http.Handler
}

// New builds the router. An empty origins list allows any origin.
func New(origins []string) *Server {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(logRequests)
	router.HandleFunc("/notes/{note}", handleNote).Methods(http.MethodGet)
	router.HandleFunc("/intervals/{root}/{size}", handleInterval).Methods(http.MethodGet)
	router.HandleFunc("/chords/{root}/{quality}", handleChord).Methods(http.MethodGet)
	router.HandleFunc("/scales/{root}/{scale}", handleScale).Methods(http.MethodGet)
	router.HandleFunc("/catalog", handleCatalog).Methods(http.MethodGet)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, errors.Errorf("no route for %s", r.URL.Path))
	})

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet},
	})
	return &Server{handler: c.Handler(router)}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	log.Infof("listening on %s", addr)
	return errors.WithStack(http.ListenAndServe(addr, s))
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debugf("%s %s", r.Method, r.URL.String())
		next.ServeHTTP(w, r)
	})
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Warnf("writing response: %s", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Detail: err.Error()})
}

// statusOf maps unknown catalog names to 404 and everything else to 400.
func statusOf(err error) int {
	if game.IsUnknownName(err) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func rootOf(w http.ResponseWriter, r *http.Request) (note.Note, bool) {
	root, err := note.Parse(mux.Vars(r)["root"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return note.Note{}, false
	}
	return root, true
}

type noteResponse struct {
	Note       note.Note        `json:"note"`
	Name       enums.NoteName   `json:"name"`
	Accidental enums.Accidental `json:"accidental"`
	Pitch      int              `json:"pitch"`
	Enharmonic note.Note        `json:"enharmonic"`
}

func handleNote(w http.ResponseWriter, r *http.Request) {
	n, err := note.Parse(mux.Vars(r)["note"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, noteResponse{
		Note:       n,
		Name:       n.Name,
		Accidental: n.Accidental,
		Pitch:      n.Pitch(),
		Enharmonic: n.Enharmonic(),
	})
}

func handleInterval(w http.ResponseWriter, r *http.Request) {
	root, ok := rootOf(w, r)
	if !ok {
		return
	}
	size, err := strconv.Atoi(mux.Vars(r)["size"])
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Errorf("interval size must be an integer: %q", mux.Vars(r)["size"]))
		return
	}
	descending := false
	switch d := r.URL.Query().Get("direction"); d {
	case "", "up":
	case "down":
		descending = true
	default:
		writeError(w, http.StatusBadRequest, errors.Errorf("direction must be up or down: %q", d))
		return
	}
	s, err := game.SpellInterval(root, size, descending)
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func handleChord(w http.ResponseWriter, r *http.Request) {
	root, ok := rootOf(w, r)
	if !ok {
		return
	}
	s, err := game.SpellChord(root, mux.Vars(r)["quality"])
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func handleScale(w http.ResponseWriter, r *http.Request) {
	root, ok := rootOf(w, r)
	if !ok {
		return
	}
	s, err := game.SpellScale(root, mux.Vars(r)["scale"], r.URL.Query().Get("mode"))
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, game.NewCatalog())
}
