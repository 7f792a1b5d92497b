package scores

import (
	"context"
	"log"
	"sync"
)

const DefaultSyncQueueSize = 64

type syncRequest struct {
	score       int64
	onHighScore func(int64)
}

// Syncer pushes session scores to a Store off the caller's goroutine.
// Submissions are processed in order by a single worker.
type Syncer struct {
	store  Store
	queue  chan syncRequest
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncer creates a Syncer and starts its worker
func NewSyncer(store Store, queueSize int) *Syncer {
	if queueSize <= 0 {
		queueSize = DefaultSyncQueueSize
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Syncer{
		store:  store,
		queue:  make(chan syncRequest, queueSize),
		ctx:    ctx,
		cancel: cancel,
	}
	s.wg.Add(1)
	go s.run()
	return s
}

// Submit queues a session score without blocking. onHighScore, if set, is
// called from the worker with the stored high score after the update.
// Returns false when the score was dropped.
func (s *Syncer) Submit(score int64, onHighScore func(int64)) bool {
	if s.ctx.Err() != nil {
		return false
	}
	select {
	case s.queue <- syncRequest{score: score, onHighScore: onHighScore}:
		return true
	default:
		log.Printf("Syncer.Submit: queue full, dropping score %d", score)
		return false
	}
}

// Close stops the worker. Queued submissions not yet started are dropped.
func (s *Syncer) Close() {
	s.cancel()
	s.wg.Wait()
}

func (s *Syncer) run() {
	defer s.wg.Done()
	for {
		select {
		case <-s.ctx.Done():
			return
		case req := <-s.queue:
			s.sync(req)
		}
	}
}

func (s *Syncer) sync(req syncRequest) {
	highScore, err := s.store.UpdateScore(s.ctx, req.score)
	if err != nil {
		log.Printf("Syncer: error updating score %d: %v", req.score, err)
		return
	}
	if req.onHighScore != nil {
		req.onHighScore(highScore)
	}
}
