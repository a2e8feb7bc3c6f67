// Package server exposes a read-only HTTP API over a persisted record set,
// for the outreach tooling that consumes the crawler's output.
package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sells-group/faculty-cli/internal/model"
)

// Server serves a fixed snapshot of records loaded at startup. Re-running
// the pipeline and restarting is the refresh mechanism.
type Server struct {
	records []model.FacultyRecord
	byName  map[string]model.FacultyRecord
}

// New builds a server over the given records.
func New(records []model.FacultyRecord) *Server {
	byName := make(map[string]model.FacultyRecord, len(records))
	for _, r := range records {
		byName[r.NameKey()] = r
	}
	return &Server{records: records, byName: byName}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/records", s.handleRecords)
	r.Get("/records/{name}", s.handleRecord)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"records": len(s.records),
	})
}

// handleRecords lists every record, optionally filtered by a source
// substring match on ?source=.
func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	source := strings.ToLower(r.URL.Query().Get("source"))
	if source == "" {
		writeJSON(w, http.StatusOK, s.records)
		return
	}

	out := make([]model.FacultyRecord, 0)
	for _, rec := range s.records {
		for _, src := range rec.Sources() {
			if strings.Contains(strings.ToLower(src), source) {
				out = append(out, rec)
				break
			}
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	name := strings.ToLower(strings.TrimSpace(chi.URLParam(r, "name")))
	rec, ok := s.byName[name]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "record not found"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
