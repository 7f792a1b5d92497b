package simulation

import (
	"log"

	"slingshot-server/pkg/server/game_objects"
	"slingshot-server/pkg/server/geo"
)

type InputKind string

const (
	InputPointerDown InputKind = "pointer_down"
	InputPointerMove InputKind = "pointer_move"
	InputPointerUp   InputKind = "pointer_up"
)

// Input is a pointer event already mapped into canvas coordinates.
// X and Y are ignored for InputPointerUp.
type Input struct {
	Kind InputKind
	X    float64
	Y    float64
}

func PointerDown(x float64, y float64) Input {
	return Input{Kind: InputPointerDown, X: x, Y: y}
}

func PointerMove(x float64, y float64) Input {
	return Input{Kind: InputPointerMove, X: x, Y: y}
}

func PointerUp() Input {
	return Input{Kind: InputPointerUp}
}

// HandleInput applies one pointer event to the drag/launch state machine
func HandleInput(s *State, in Input) []*game_objects.GameEvent {
	switch in.Kind {
	case InputPointerDown:
		return handlePointerDown(s, geo.NewPoint(in.X, in.Y))
	case InputPointerMove:
		return handlePointerMove(s, geo.NewPoint(in.X, in.Y))
	case InputPointerUp:
		return handlePointerUp(s)
	default:
		log.Printf("HandleInput: unknown input kind %q", in.Kind)
		return nil
	}
}

func handlePointerDown(s *State, p *geo.Point) []*game_objects.GameEvent {
	if s.Body.Launched || s.Dragging {
		return nil
	}
	hitArea := geo.NewCircle(s.Body.Position(), s.Body.Radius*s.Config.HitAreaMultiplier)
	if !hitArea.ContainsPoint(p) {
		return nil
	}
	s.Dragging = true
	return []*game_objects.GameEvent{
		game_objects.NewGameEvent(game_objects.EventDragStarted, s.Body.ID),
	}
}

func handlePointerMove(s *State, p *geo.Point) []*game_objects.GameEvent {
	if !s.Dragging {
		return nil
	}
	if s.Config.ClampDrag {
		p = geo.ClampToRadius(s.Launcher.Anchor(), p, s.Config.MaxDragDistance)
	}
	s.Body.MoveTo(p)
	return nil
}

// handlePointerUp launches toward the anchor, opposite the pull, or cancels
// a drag that did not pull far enough
func handlePointerUp(s *State) []*game_objects.GameEvent {
	if !s.Dragging {
		return nil
	}
	s.Dragging = false

	anchor := s.Launcher.Anchor()
	pull := geo.Distance(s.Body.Position(), anchor)
	if s.Config.EnforceLaunchThreshold && pull <= s.Config.MinLaunchDistance {
		s.resetBody()
		return []*game_objects.GameEvent{
			game_objects.NewGameEvent(game_objects.EventDragCancelled, s.Body.ID),
			game_objects.NewBodyResetEvent(s.Body.ID, game_objects.ResetReasonShortDrag),
		}
	}

	velocity := geo.Scale(geo.Sub(anchor, s.Body.Position()), s.Config.LaunchPower)
	s.Body.Launch(velocity)

	launched := game_objects.NewGameEvent(game_objects.EventBodyLaunched, s.Body.ID)
	launched.X = s.Body.X
	launched.Y = s.Body.Y
	launched.Dx = velocity.X
	launched.Dy = velocity.Y
	return []*game_objects.GameEvent{launched}
}
