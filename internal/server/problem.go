package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/thesavant42/pokedex-ng/internal/db"
)

// Problem represents an RFC 7807 Problem Details response
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance,omitempty"`
}

var problemTypes = map[int]struct {
	typeURI string
	title   string
}{
	http.StatusBadRequest: {
		typeURI: "https://pokedex.dev/errors/bad-request",
		title:   "Bad Request",
	},
	http.StatusNotFound: {
		typeURI: "https://pokedex.dev/errors/not-found",
		title:   "Not Found",
	},
	http.StatusMethodNotAllowed: {
		typeURI: "https://pokedex.dev/errors/method-not-allowed",
		title:   "Method Not Allowed",
	},
	http.StatusInternalServerError: {
		typeURI: "https://pokedex.dev/errors/internal-error",
		title:   "Internal Server Error",
	},
	http.StatusServiceUnavailable: {
		typeURI: "https://pokedex.dev/errors/service-unavailable",
		title:   "Service Unavailable",
	},
}

// WriteProblem writes an RFC 7807 Problem Details response
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	pt, ok := problemTypes[status]
	if !ok {
		pt.typeURI = "https://pokedex.dev/errors/unknown"
		pt.title = http.StatusText(status)
	}

	p := Problem{
		Type:     pt.typeURI,
		Title:    pt.title,
		Status:   status,
		Detail:   detail,
		Instance: r.URL.Path,
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Error("failed to encode problem response", "error", err)
	}
}

// MapStoreError converts store errors to Problem Details responses.
// Internal error details never reach the client.
func MapStoreError(w http.ResponseWriter, r *http.Request, logger *log.Logger, err error) {
	if errors.Is(err, db.ErrNotFound) {
		WriteProblem(w, r, http.StatusNotFound, "Pokémon not found")
		return
	}
	logger.Error("store error", "path", r.URL.Path, "error", err)
	WriteProblem(w, r, http.StatusInternalServerError, "Internal Server Error")
}
