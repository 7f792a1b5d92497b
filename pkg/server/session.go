package server

import (
	"fmt"
	"sync"
	"time"

	"slingshot-server/pkg/server/game_objects"
	"slingshot-server/pkg/server/simulation"
	"slingshot-server/pkg/server/types"
	"slingshot-server/pkg/util"

	"github.com/google/uuid"
)

// Default tick interval constants
const (
	DefaultTickInterval = time.Second / 60
	MinTickInterval     = 1 * time.Millisecond
	MaxTickInterval     = 1000 * time.Millisecond
)

// TickConfig holds configuration for session tick rate
type TickConfig struct {
	// TickInterval is the duration between game ticks. Default is 1/60s.
	// Takes precedence over TickMultiplier if both are set.
	TickInterval time.Duration
	// TickMultiplier is a convenience multiplier for tick speed.
	// 1.0 = normal speed (60Hz), 2.0 = twice as fast, 0.5 = half speed
	TickMultiplier float64
}

// SessionUpdate is the result of advancing a session: the frame to draw
// and the events raised on the way
type SessionUpdate struct {
	Snapshot *simulation.Snapshot
	Events   []*game_objects.GameEvent
}

// GameSession is one player's slingshot game
type GameSession struct {
	ID          string `json:"id"`
	SessionCode string `json:"sessionCode"`

	LockObject sync.Mutex
	State      *simulation.State
	Config     simulation.Config
	// Last input or creation time
	LastActivity time.Time

	// Tick configuration
	TickInterval   time.Duration
	TickMultiplier float64

	// Receives every update while LockObject is held, so updates are
	// delivered in the order they were produced
	updateHandler func(*GameSession, *SessionUpdate)

	// Tick goroutine management
	tickLock     sync.Mutex
	tickStopChan chan struct{}
	tickWg       sync.WaitGroup
}

// NewGameSession creates a session with default tick configuration
func NewGameSession(config simulation.Config) (*GameSession, error) {
	return NewGameSessionWithTickConfig(config, nil)
}

// NewGameSessionWithTickConfig creates a session with custom tick configuration
func NewGameSessionWithTickConfig(config simulation.Config, tickConfig *TickConfig) (*GameSession, error) {
	tickInterval, tickMultiplier, err := calculateTickInterval(tickConfig)
	if err != nil {
		return nil, fmt.Errorf("invalid tick configuration: %w", err)
	}

	return &GameSession{
		ID:             uuid.New().String(),
		SessionCode:    util.GenerateSessionCode(),
		State:          simulation.NewState(config),
		Config:         config,
		LastActivity:   time.Now(),
		TickInterval:   tickInterval,
		TickMultiplier: tickMultiplier,
	}, nil
}

// Tick advances the simulation by one frame
func (g *GameSession) Tick() *SessionUpdate {
	g.LockObject.Lock()
	defer g.LockObject.Unlock()

	events := simulation.Tick(g.State)
	return g.publishLocked(&SessionUpdate{Snapshot: g.State.Snapshot(), Events: events})
}

// HandleInput applies a pointer event between ticks
func (g *GameSession) HandleInput(in simulation.Input) *SessionUpdate {
	g.LockObject.Lock()
	defer g.LockObject.Unlock()

	g.LastActivity = time.Now()
	events := simulation.HandleInput(g.State, in)
	return g.publishLocked(&SessionUpdate{Snapshot: g.State.Snapshot(), Events: events})
}

// Reset starts a new game in this session. The session score starts over.
func (g *GameSession) Reset() *SessionUpdate {
	g.LockObject.Lock()
	defer g.LockObject.Unlock()

	g.LastActivity = time.Now()
	g.State = simulation.NewState(g.Config)
	return g.publishLocked(&SessionUpdate{Snapshot: g.State.Snapshot(), Events: []*game_objects.GameEvent{}})
}

// publishLocked hands the update to the update handler. Caller holds LockObject.
func (g *GameSession) publishLocked(update *SessionUpdate) *SessionUpdate {
	if g.updateHandler != nil {
		g.updateHandler(g, update)
	}
	return update
}

func (g *GameSession) Snapshot() *simulation.Snapshot {
	g.LockObject.Lock()
	defer g.LockObject.Unlock()
	return g.State.Snapshot()
}

// GetGameState returns the frame snapshot and the per-object state maps
// taken under one lock
func (g *GameSession) GetGameState() (*simulation.Snapshot, map[string]map[string]interface{}) {
	g.LockObject.Lock()
	defer g.LockObject.Unlock()
	return g.State.Snapshot(), g.State.GetAllStates()
}

func (g *GameSession) Info() types.SessionInfo {
	g.LockObject.Lock()
	defer g.LockObject.Unlock()
	return types.SessionInfo{
		SessionID:   g.ID,
		SessionCode: g.SessionCode,
		Score:       g.State.Score,
		Level:       g.State.Level,
	}
}

// IdleFor reports how long it has been since the last input
func (g *GameSession) IdleFor(now time.Time) time.Duration {
	g.LockObject.Lock()
	defer g.LockObject.Unlock()
	return now.Sub(g.LastActivity)
}

// StartTickLoop sets the update handler and starts the per-session tick
// goroutine. The handler also receives input and reset updates. Calling it
// on a running loop does nothing.
func (g *GameSession) StartTickLoop(handler func(*GameSession, *SessionUpdate)) {
	g.tickLock.Lock()
	defer g.tickLock.Unlock()
	if g.tickStopChan != nil {
		return
	}

	g.LockObject.Lock()
	g.updateHandler = handler
	g.LockObject.Unlock()

	stop := make(chan struct{})
	g.tickStopChan = stop
	g.tickWg.Add(1)
	go func() {
		defer g.tickWg.Done()
		ticker := time.NewTicker(g.TickInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				g.Tick()
			case <-stop:
				return
			}
		}
	}()
}

// StopTickLoop stops the per-session tick goroutine and waits for it to
// complete. The update handler is cleared.
func (g *GameSession) StopTickLoop() {
	g.tickLock.Lock()
	defer g.tickLock.Unlock()
	if g.tickStopChan == nil {
		return
	}
	close(g.tickStopChan)
	g.tickWg.Wait()
	g.tickStopChan = nil

	g.LockObject.Lock()
	g.updateHandler = nil
	g.LockObject.Unlock()
}

// calculateTickInterval computes the tick interval from TickConfig
func calculateTickInterval(config *TickConfig) (time.Duration, float64, error) {
	if config == nil {
		return DefaultTickInterval, 1.0, nil
	}

	var interval time.Duration
	var multiplier float64

	// TickInterval takes precedence over TickMultiplier
	if config.TickInterval > 0 {
		interval = config.TickInterval
		multiplier = float64(DefaultTickInterval) / float64(interval)
	} else if config.TickMultiplier > 0 {
		multiplier = config.TickMultiplier
		interval = time.Duration(float64(DefaultTickInterval) / multiplier)
	} else {
		return DefaultTickInterval, 1.0, nil
	}

	// Validate bounds
	if interval < MinTickInterval {
		return 0, 0, fmt.Errorf("tick interval %v is below minimum %v", interval, MinTickInterval)
	}
	if interval > MaxTickInterval {
		return 0, 0, fmt.Errorf("tick interval %v exceeds maximum %v", interval, MaxTickInterval)
	}

	return interval, multiplier, nil
}
