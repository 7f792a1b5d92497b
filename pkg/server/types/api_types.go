package types

import (
	"encoding/json"

	"slingshot-server/pkg/scores"
	"slingshot-server/pkg/server/game_objects"
	"slingshot-server/pkg/server/simulation"
)

// Message represents a WebSocket message
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Client -> server message types
const (
	MessagePointerDown = "PointerDown"
	MessagePointerMove = "PointerMove"
	MessagePointerUp   = "PointerUp"
	MessageResetGame   = "ResetGame"
	MessageExitGame    = "ExitGame"
)

// Server -> client message types
const (
	MessageWelcome          = "Welcome"
	MessageHighScore        = "HighScore"
	MessageGameState        = "GameState"
	MessageExitGameResponse = "ExitGameResponse"
	MessageError            = "Error"
)

// PointerRequest carries a pointer position in canvas coordinates.
// A missing coordinate is read as 0.
type PointerRequest struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// Coordinates returns the position with missing values defaulted
func (p PointerRequest) Coordinates() (float64, float64) {
	var x, y float64
	if p.X != nil {
		x = *p.X
	}
	if p.Y != nil {
		y = *p.Y
	}
	return x, y
}

type Welcome struct {
	SessionID   string  `json:"sessionId"`
	SessionCode string  `json:"sessionCode"`
	CanvasSizeX float64 `json:"canvasSizeX"`
	CanvasSizeY float64 `json:"canvasSizeY"`
}

type GameUpdate struct {
	Snapshot *simulation.Snapshot      `json:"snapshot"`
	Events   []*game_objects.GameEvent `json:"events"`
}

type HighScoreUpdate struct {
	HighScore int64 `json:"highScore"`
}

// ExitGameRequest is sent when a player wants to exit a game
type ExitGameRequest struct {
}

type ExitGameResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ErrorMessage is sent when an error occurs
type ErrorMessage struct {
	Message string `json:"message"`
}

// HTTP score API, shared with the score client
type (
	ScoreRequest        = scores.ScoreRequest
	HighScoreResponse   = scores.HighScoreResponse
	ClearScoresResponse = scores.ClearScoresResponse
	ErrorResponse       = scores.ErrorResponse
)

type SessionInfo struct {
	SessionID   string `json:"sessionId"`
	SessionCode string `json:"sessionCode"`
	Score       int    `json:"score"`
	Level       int    `json:"level"`
}

type SessionsResponse struct {
	Sessions []SessionInfo `json:"sessions"`
}
