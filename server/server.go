// Package server は、音名と周波数の変換を JSON の HTTP API として提供します。
package server

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/but80/notefreq/pitch/log"
	"github.com/but80/notefreq/pitch/note"
	"github.com/but80/notefreq/pitch/western"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/cors"
)

type ErrorResponse struct {
	Error string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Warnf("Could not encode response: %s", err)
		writeStatus(w, http.StatusInternalServerError, errors.Wrap(err, "could not encode response"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(buf.Bytes())
}

func writeStatus(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
}

func writeError(w http.ResponseWriter, err error) {
	writeStatus(w, http.StatusBadRequest, err)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// writeNote は、周波数が有限のときだけ n を返します。
func writeNote(w http.ResponseWriter, n note.Note) {
	if !finite(n.Hertz) {
		writeError(w, errors.Errorf("frequency of %s is out of range", n.Name))
		return
	}
	writeJSON(w, n)
}

// referenceFrom は、クエリパラメータ A を読みます。省略時は 0 (既定値) です。
func referenceFrom(r *http.Request) (float64, error) {
	s := r.URL.Query().Get("A")
	if s == "" {
		return 0, nil
	}
	a, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid reference frequency %q", s)
	}
	if !finite(a) {
		return 0, errors.Errorf("invalid reference frequency %q", s)
	}
	return a, nil
}

func specFrom(name string, a float64) note.Spec {
	attrs := western.Parse(name)
	attrs.A = a
	return note.Attrs(attrs)
}

func handleEDO12(w http.ResponseWriter, r *http.Request) {
	a, err := referenceFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}
	name := mux.Vars(r)["name"]
	log.Debugf("EDO12 %s (A=%v)", name, a)
	writeNote(w, note.EDO12(specFrom(name, a)))
}

func handleJustIntonation(w http.ResponseWriter, r *http.Request) {
	a, err := referenceFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}
	vars := mux.Vars(r)
	log.Debugf("JustIntonation %s in %s (A=%v)", vars["name"], vars["key"], a)
	writeNote(w, note.JustIntonation(specFrom(vars["name"], a), specFrom(vars["key"], a)))
}

func handleHertz(w http.ResponseWriter, r *http.Request) {
	s := mux.Vars(r)["hertz"]
	hz, err := strconv.ParseFloat(s, 64)
	if err != nil {
		writeError(w, errors.Wrapf(err, "invalid frequency %q", s))
		return
	}
	if !finite(hz) {
		writeError(w, errors.Errorf("invalid frequency %q", s))
		return
	}
	writeJSON(w, note.New(note.Hertz(hz)))
}

func handleValidate(w http.ResponseWriter, r *http.Request) {
	var attrs western.Attributes
	if err := json.NewDecoder(r.Body).Decode(&attrs); err != nil {
		writeError(w, errors.Wrap(err, "could not decode request body"))
		return
	}
	writeJSON(w, western.Validate(attrs))
}

// NewHandler は、API のルーティングを行う http.Handler を返します。
// allowedOrigins が空のときはすべてのオリジンを許可します。
func NewHandler(allowedOrigins []string) http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/notes/{name}", handleEDO12).Methods("GET")
	router.HandleFunc("/notes/{name}/just/{key}", handleJustIntonation).Methods("GET")
	router.HandleFunc("/hertz/{hertz}", handleHertz).Methods("GET")
	router.HandleFunc("/validate", handleValidate).Methods("POST")

	if len(allowedOrigins) == 0 {
		return cors.AllowAll().Handler(router)
	}
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(router)
}
