package scores

import (
	"context"
	"errors"
)

var ErrNegativeScore = errors.New("score must not be negative")

// Store keeps the best score seen across sessions. UpdateScore replaces the
// stored value only when the candidate is greater, and returns the high score
// after considering it.
type Store interface {
	GetHighScore(ctx context.Context) (int64, error)
	UpdateScore(ctx context.Context, candidate int64) (int64, error)
	ClearScores(ctx context.Context) error
}
