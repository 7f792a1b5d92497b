package scores

import (
	"context"
	"sync"
)

type MemoryStore struct {
	highScore int64
	mutex     sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) GetHighScore(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.highScore, nil
}

func (m *MemoryStore) UpdateScore(ctx context.Context, candidate int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if candidate < 0 {
		return 0, ErrNegativeScore
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if candidate > m.highScore {
		m.highScore = candidate
	}
	return m.highScore, nil
}

func (m *MemoryStore) ClearScores(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.highScore = 0
	return nil
}
