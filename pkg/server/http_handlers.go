package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"slingshot-server/pkg/scores"
	"slingshot-server/pkg/server/types"

	"github.com/gorilla/mux"
)

// setCORSHeaders sets the headers every API response carries and answers
// preflight requests. Returns true when the request has been handled.
func setCORSHeaders(w http.ResponseWriter, r *http.Request, methods string) bool {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", methods+", OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	// Handle preflight requests
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("writeJSON: Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, types.ErrorResponse{Error: message})
}

// HandleHealth reports that the server is up
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if setCORSHeaders(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Sessions: s.sessionManager.Count()})
}

// HandleGetHighScore handles GET /api/scores/high
func (s *Server) HandleGetHighScore(w http.ResponseWriter, r *http.Request) {
	if setCORSHeaders(w, r, http.MethodGet) {
		return
	}

	highScore, err := s.scoreStore.GetHighScore(r.Context())
	if err != nil {
		log.Printf("HandleGetHighScore: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to load high score")
		return
	}
	writeJSON(w, http.StatusOK, types.HighScoreResponse{HighScore: highScore})
}

// HandleSubmitScore handles POST /api/scores. The stored high score is
// replaced only when the submitted score is greater.
func (s *Server) HandleSubmitScore(w http.ResponseWriter, r *http.Request) {
	if setCORSHeaders(w, r, http.MethodPost+", "+http.MethodDelete) {
		return
	}

	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Score == nil {
		writeError(w, http.StatusBadRequest, "score is required")
		return
	}

	highScore, err := s.scoreStore.UpdateScore(r.Context(), *req.Score)
	if errors.Is(err, scores.ErrNegativeScore) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.Printf("HandleSubmitScore: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to update score")
		return
	}
	writeJSON(w, http.StatusOK, types.HighScoreResponse{HighScore: highScore})
}

// HandleClearScores handles DELETE /api/scores
func (s *Server) HandleClearScores(w http.ResponseWriter, r *http.Request) {
	if setCORSHeaders(w, r, http.MethodPost+", "+http.MethodDelete) {
		return
	}

	if err := s.scoreStore.ClearScores(r.Context()); err != nil {
		log.Printf("HandleClearScores: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to clear scores")
		return
	}
	log.Printf("Cleared stored high score")
	writeJSON(w, http.StatusOK, types.ClearScoresResponse{Success: true})
}

// HandleGetSessions lists live sessions, optionally filtered by ?code=
func (s *Server) HandleGetSessions(w http.ResponseWriter, r *http.Request) {
	if setCORSHeaders(w, r, http.MethodGet) {
		return
	}

	resp := types.SessionsResponse{Sessions: []types.SessionInfo{}}
	if code := r.URL.Query().Get("code"); code != "" {
		if session, exists := s.sessionManager.GetSessionByCode(code); exists {
			resp.Sessions = append(resp.Sessions, session.Info())
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}

	for _, session := range s.sessionManager.GetSessions() {
		resp.Sessions = append(resp.Sessions, session.Info())
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleGetSessionState handles GET /api/sessions/{sessionId}/state
func (s *Server) HandleGetSessionState(w http.ResponseWriter, r *http.Request) {
	if setCORSHeaders(w, r, http.MethodGet) {
		return
	}

	sessionID := mux.Vars(r)["sessionId"]
	session, exists := s.sessionManager.GetSession(sessionID)
	if !exists {
		writeError(w, http.StatusNotFound, ErrSessionNotFound.Error())
		return
	}

	snapshot, objectStates := session.GetGameState()
	writeJSON(w, http.StatusOK, SessionStateResponse{
		SessionID:    session.ID,
		SessionCode:  session.SessionCode,
		State:        snapshot,
		ObjectStates: objectStates,
	})
}
