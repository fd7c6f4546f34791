// Package server exposes the proxy's HTTP surface: GET /groups serving the
// fully resolved group set, OPTIONS pre-flight with permissive CORS, and a
// health probe. Upstream failure is absorbed upstream of here (the
// repository falls back); the only 500 this layer produces is missing
// configuration.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"groupmap/internal/models"
	"groupmap/internal/refresh"
)

type groupsResponse struct {
	Groups      []models.GroupRecord `json:"groups"`
	LastUpdated string               `json:"lastUpdated"`
	Source      string               `json:"source"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

type Server struct {
	refresher *refresh.Refresher
	configErr error
}

// New builds the server. A non-nil configErr marks the proxy as
// misconfigured: the process still serves traffic, but /groups answers 500
// with a descriptive body rather than silently defaulting credentials.
func New(refresher *refresh.Refresher, configErr error) *Server {
	return &Server{refresher: refresher, configErr: configErr}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/groups", s.handleGroups)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

func (s *Server) handleGroups(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()
	writeCORS(w)

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusNoContent)
		return
	case http.MethodGet:
	default:
		w.Header().Set("Allow", "GET, OPTIONS")
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{
			Error:   "method not allowed",
			Details: r.Method + " is not supported; use GET or OPTIONS",
		})
		return
	}

	if s.configErr != nil {
		log.Printf("[%s] GET /groups rejected: %v", reqID, s.configErr)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "server configuration incomplete",
			Details: s.configErr.Error(),
		})
		return
	}

	snap := s.refresher.Refresh(r.Context())
	log.Printf("[%s] GET /groups -> %d groups (source=%s seq=%d)", reqID, len(snap.Groups), snap.Source, snap.Seq)
	writeJSON(w, http.StatusOK, groupsResponse{
		Groups:      snap.Groups,
		LastUpdated: snap.LastUpdated.UTC().Format(time.RFC3339),
		Source:      snap.Source,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeCORS(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response body: %v", err)
	}
}
