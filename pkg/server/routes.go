package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the server's WebSocket and HTTP API endpoints
func NewRouter(s *Server) *mux.Router {
	r := mux.NewRouter()

	// Health check endpoint
	r.HandleFunc("/health", s.HandleHealth).Methods(http.MethodGet, http.MethodOptions)

	// WebSocket endpoint
	r.HandleFunc("/ws", s.HandleWebSocket)

	// HTTP API endpoints. Registered on the root router so a method
	// mismatch answers 405 rather than 404.
	r.HandleFunc("/api/scores/high", s.HandleGetHighScore).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/scores", s.HandleSubmitScore).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/scores", s.HandleClearScores).Methods(http.MethodDelete)
	r.HandleFunc("/api/sessions", s.HandleGetSessions).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/sessions/{sessionId}/state", s.HandleGetSessionState).Methods(http.MethodGet, http.MethodOptions)

	return r
}
