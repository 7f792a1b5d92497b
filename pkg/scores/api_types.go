package scores

// Request and response bodies of the score API

type ScoreRequest struct {
	Score *int64 `json:"score"`
}

type HighScoreResponse struct {
	HighScore int64 `json:"highScore"`
}

type ClearScoresResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
