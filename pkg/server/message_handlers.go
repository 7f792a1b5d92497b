package server

import (
	"encoding/json"
	"log"

	"slingshot-server/pkg/server/simulation"
	"slingshot-server/pkg/server/types"
	"slingshot-server/pkg/util"
)

// handlePointerInput applies a pointer event to the connection's session
func (s *Server) handlePointerInput(conn *Connection, in simulation.Input) {
	session, exists := s.findSession(conn)
	if !exists {
		log.Printf("handlePointerInput: Failed to find session %q for connection %s", conn.SessionID, conn.ID)
		return
	}

	session.HandleInput(in)
}

// handleResetGame starts the session over with a fresh level and score
func (s *Server) handleResetGame(conn *Connection) {
	session, exists := s.findSession(conn)
	if !exists {
		log.Printf("handleResetGame: Failed to find session %q for connection %s", conn.SessionID, conn.ID)
		return
	}

	log.Printf("Resetting game session %s", session.ID)
	session.Reset()
}

// handleExitGame ends the session. The connection stays open until the
// client closes it.
func (s *Server) handleExitGame(conn *Connection, _ types.ExitGameRequest) {
	session, _, ended := s.endSession(conn.SessionID)
	if !ended {
		log.Printf("handleExitGame: Failed to find session %q for connection %s", conn.SessionID, conn.ID)
		s.sendErrorMessage(conn, "Session not found")
		return
	}
	conn.SessionID = ""

	conn.enqueue(types.Message{
		Type:    types.MessageExitGameResponse,
		Payload: util.Must(json.Marshal(types.ExitGameResponse{Success: true})),
	})

	log.Printf("Connection %s exited game session %s", conn.ID, session.ID)
}

func (s *Server) sendErrorMessage(conn *Connection, message string) {
	conn.enqueue(types.Message{
		Type:    types.MessageError,
		Payload: util.Must(json.Marshal(types.ErrorMessage{Message: message})),
	})
}

func (s *Server) findSession(conn *Connection) (*GameSession, bool) {
	session, exists := s.sessionManager.GetSession(conn.SessionID)
	if !exists {
		s.sendErrorMessage(conn, "Session not found")
		return nil, false
	}
	return session, true
}
