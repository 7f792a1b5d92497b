// Package simulation holds the slingshot game state and the two functions
// that advance it: Tick, called once per frame, and HandleInput, called for
// each pointer event between frames. Neither is safe for concurrent use on
// the same State; callers serialise them.
package simulation

import (
	"slingshot-server/pkg/server/game_objects"

	"github.com/google/uuid"
)

type Phase string

const (
	PhaseResting  Phase = "resting"
	PhaseDragging Phase = "dragging"
	PhaseFlying   Phase = "flying"
)

// State is everything that changes during a session
type State struct {
	Config   Config
	Body     *game_objects.BodyGameObject
	Launcher *game_objects.LauncherGameObject
	Targets  []*game_objects.TargetGameObject
	Dragging bool
	Score    int
	Level    int
	Ticks    uint64
}

// NewState creates a session with the body resting on the launcher and the
// initial targets in place
func NewState(config Config) *State {
	launcher := game_objects.NewLauncherGameObject(
		uuid.New().String(),
		config.LauncherX,
		config.LauncherY,
		config.LauncherWidth,
		config.LauncherHeight,
		config.MaxDragDistance,
	)
	body := game_objects.NewBodyGameObject(uuid.New().String(), launcher.X, launcher.Y, config.BodyRadius)
	return &State{
		Config:   config,
		Body:     body,
		Launcher: launcher,
		Targets:  game_objects.NewInitialTargets(),
	}
}

func (s *State) Phase() Phase {
	switch {
	case s.Dragging:
		return PhaseDragging
	case s.Body.Launched:
		return PhaseFlying
	default:
		return PhaseResting
	}
}

// Tick advances the simulation by one frame and returns what happened
func Tick(s *State) []*game_objects.GameEvent {
	s.Ticks++
	if !s.Body.Launched || s.Dragging {
		return nil
	}

	integrate(s)

	if hitsWall(s) {
		s.resetBody()
		return []*game_objects.GameEvent{
			game_objects.NewBodyResetEvent(s.Body.ID, game_objects.ResetReasonWall),
		}
	}

	events := resolveTargetHits(s)
	if len(s.Targets) == 0 {
		events = append(events, s.resetLevel()...)
	}
	return events
}

// integrate applies gravity, moves the body and bounces it off the floor
func integrate(s *State) {
	b := s.Body
	cfg := s.Config

	b.Dy += cfg.Gravity
	b.X += b.Dx
	b.Y += b.Dy

	if b.Y+b.Radius > cfg.Height {
		b.Y = cfg.Height - b.Radius
		b.Dy *= -cfg.Elasticity
		if cfg.ApplyFriction {
			b.Dx *= cfg.GroundFriction
		}
	}
}

func hitsWall(s *State) bool {
	b := s.Body
	return b.X+b.Radius > s.Config.Width || b.X-b.Radius < 0
}

// resolveTargetHits tests the body against every target present at the
// start of the tick and removes all that it touches
func resolveTargetHits(s *State) []*game_objects.GameEvent {
	shape := s.Body.GetBoundingShape()
	events := []*game_objects.GameEvent{}
	remaining := make([]*game_objects.TargetGameObject, 0, len(s.Targets))

	for _, target := range s.Targets {
		if !shape.CollidesWith(target.GetBoundingShape()) {
			remaining = append(remaining, target)
			continue
		}
		s.Score += s.Config.ScorePerTarget

		destroyed := game_objects.NewGameEvent(game_objects.EventTargetDestroyed, target.ID)
		destroyed.X = target.X
		destroyed.Y = target.Y
		events = append(events, destroyed, game_objects.NewScoreChangedEvent(s.Score))
	}

	s.Targets = remaining
	return events
}

func (s *State) resetBody() {
	s.Body.Reset(s.Launcher.Anchor())
}

func (s *State) resetLevel() []*game_objects.GameEvent {
	s.resetBody()
	s.Targets = game_objects.NewInitialTargets()
	s.Level++

	cleared := game_objects.NewGameEvent(game_objects.EventLevelCleared, "")
	cleared.Level = s.Level
	return []*game_objects.GameEvent{
		game_objects.NewBodyResetEvent(s.Body.ID, game_objects.ResetReasonLevelClear),
		cleared,
	}
}
