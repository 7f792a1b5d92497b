package scores

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// scoreRecord is the on-disk layout of the score file
type scoreRecord struct {
	HighScore int64     `msgpack:"high_score"`
	UpdatedAt time.Time `msgpack:"updated_at"`
}

// FileStore is a Store that persists the high score to a single msgpack file.
// Writes go through a temp file and a rename so a crash never leaves a
// truncated record behind.
type FileStore struct {
	path      string
	highScore int64
	updatedAt time.Time
	mutex     sync.Mutex
}

// OpenFileStore loads the score file at path. A missing file is a zero score.
func OpenFileStore(path string) (*FileStore, error) {
	store := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read score file %s: %w", path, err)
	}

	var record scoreRecord
	if err := msgpack.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode score file %s: %w", path, err)
	}
	if record.HighScore < 0 {
		return nil, fmt.Errorf("decode score file %s: %w", path, ErrNegativeScore)
	}
	store.highScore = record.HighScore
	store.updatedAt = record.UpdatedAt
	return store, nil
}

func (f *FileStore) Path() string {
	return f.path
}

// UpdatedAt is the time of the last persisted change, zero if never written
func (f *FileStore) UpdatedAt() time.Time {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.updatedAt
}

func (f *FileStore) GetHighScore(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.highScore, nil
}

func (f *FileStore) UpdateScore(ctx context.Context, candidate int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if candidate < 0 {
		return 0, ErrNegativeScore
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()
	if candidate <= f.highScore {
		return f.highScore, nil
	}
	if err := f.save(candidate); err != nil {
		return f.highScore, err
	}
	return f.highScore, nil
}

func (f *FileStore) ClearScores(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.save(0)
}

// save writes the record and only then updates the in-memory copy. Caller
// holds the mutex.
func (f *FileStore) save(highScore int64) error {
	record := scoreRecord{HighScore: highScore, UpdatedAt: time.Now().UTC()}
	data, err := msgpack.Marshal(&record)
	if err != nil {
		return fmt.Errorf("encode score record: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".score-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp score file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp score file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp score file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace score file %s: %w", f.path, err)
	}

	f.highScore = record.HighScore
	f.updatedAt = record.UpdatedAt
	return nil
}
