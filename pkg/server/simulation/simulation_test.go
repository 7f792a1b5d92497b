package simulation

import (
	"math"
	"testing"

	"slingshot-server/pkg/server/constants"
	"slingshot-server/pkg/server/game_objects"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func countEvents(events []*game_objects.GameEvent, eventType game_objects.EventType) int {
	n := 0
	for _, e := range events {
		if e.EventType == eventType {
			n++
		}
	}
	return n
}

func launchAt(s *State, x, y, dx, dy float64) {
	s.Body.X = x
	s.Body.Y = y
	s.Body.Dx = dx
	s.Body.Dy = dy
	s.Body.Launched = true
}

func assertCanonicalTargets(t *testing.T, s *State) {
	t.Helper()
	if len(s.Targets) != len(constants.InitialTargetPositions) {
		t.Fatalf("targets = %d, want %d", len(s.Targets), len(constants.InitialTargetPositions))
	}
	for i, pos := range constants.InitialTargetPositions {
		tg := s.Targets[i]
		if tg.X != pos[0] || tg.Y != pos[1] || tg.Width != constants.TargetWidth || tg.Height != constants.TargetHeight {
			t.Errorf("target %d = (%v,%v %vx%v), want (%v,%v %vx%v)", i,
				tg.X, tg.Y, tg.Width, tg.Height, pos[0], pos[1], constants.TargetWidth, constants.TargetHeight)
		}
	}
}

func assertRestingAtAnchor(t *testing.T, s *State) {
	t.Helper()
	if s.Body.Launched || s.Dragging {
		t.Errorf("body launched=%v dragging=%v, want resting", s.Body.Launched, s.Dragging)
	}
	if s.Body.X != s.Launcher.X || s.Body.Y != s.Launcher.Y {
		t.Errorf("body at (%v,%v), want anchor (%v,%v)", s.Body.X, s.Body.Y, s.Launcher.X, s.Launcher.Y)
	}
	if s.Body.Dx != 0 || s.Body.Dy != 0 {
		t.Errorf("body velocity (%v,%v), want (0,0)", s.Body.Dx, s.Body.Dy)
	}
	if s.Phase() != PhaseResting {
		t.Errorf("phase = %v, want %v", s.Phase(), PhaseResting)
	}
}

func TestNewStateRestsOnLauncher(t *testing.T) {
	s := NewState(DefaultConfig())

	assertRestingAtAnchor(t, s)
	assertCanonicalTargets(t, s)
	if s.Body.Radius != constants.BodyRadius {
		t.Errorf("radius = %v, want %v", s.Body.Radius, constants.BodyRadius)
	}
	if s.Score != 0 || s.Level != 0 {
		t.Errorf("score=%d level=%d, want 0, 0", s.Score, s.Level)
	}
}

func TestTickAppliesGravityBeforeMoving(t *testing.T) {
	s := NewState(DefaultConfig())
	launchAt(s, 300, 100, 3, -2)

	for i := 0; i < 10; i++ {
		beforeDy := s.Body.Dy
		beforeX, beforeY := s.Body.X, s.Body.Y

		events := Tick(s)
		if len(events) != 0 {
			t.Fatalf("tick %d raised %d events, want none", i, len(events))
		}
		if !approxEqual(s.Body.Dy, beforeDy+constants.Gravity) {
			t.Errorf("tick %d: dy = %v, want %v", i, s.Body.Dy, beforeDy+constants.Gravity)
		}
		if !approxEqual(s.Body.X, beforeX+3) {
			t.Errorf("tick %d: x = %v, want %v", i, s.Body.X, beforeX+3)
		}
		if !approxEqual(s.Body.Y, beforeY+s.Body.Dy) {
			t.Errorf("tick %d: y = %v, want %v", i, s.Body.Y, beforeY+s.Body.Dy)
		}
	}
}

func TestTickGroundBounce(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		wantDx float64
	}{
		{name: "Default variant applies friction", config: DefaultConfig(), wantDx: 4 * constants.GroundFriction},
		{name: "Simple variant keeps horizontal speed", config: SimpleConfig(), wantDx: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(tt.config)
			launchAt(s, 300, 575, 4, 10)

			preCollisionDy := 10 + tt.config.Gravity
			Tick(s)

			if s.Body.Y+s.Body.Radius != tt.config.Height {
				t.Errorf("bottom edge = %v, want %v", s.Body.Y+s.Body.Radius, tt.config.Height)
			}
			if !approxEqual(s.Body.Dy, -tt.config.Elasticity*preCollisionDy) {
				t.Errorf("dy = %v, want %v", s.Body.Dy, -tt.config.Elasticity*preCollisionDy)
			}
			if !approxEqual(s.Body.Dx, tt.wantDx) {
				t.Errorf("dx = %v, want %v", s.Body.Dx, tt.wantDx)
			}
			if !s.Body.Launched {
				t.Errorf("body should still be flying after a bounce")
			}
		})
	}
}

func TestTickWallResetsBody(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		dx   float64
	}{
		{name: "Right wall", x: 790, dx: 5},
		{name: "Left wall", x: 21, dx: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(DefaultConfig())
			launchAt(s, tt.x, 100, tt.dx, 0)

			events := Tick(s)

			assertRestingAtAnchor(t, s)
			if len(events) != 1 || events[0].EventType != game_objects.EventBodyReset {
				t.Fatalf("events = %v, want a single body reset", events)
			}
			if events[0].Reason != game_objects.ResetReasonWall {
				t.Errorf("reset reason = %v, want %v", events[0].Reason, game_objects.ResetReasonWall)
			}
			if s.Score != 0 || len(s.Targets) != 3 {
				t.Errorf("score=%d targets=%d, want 0 and 3", s.Score, len(s.Targets))
			}
		})
	}
}

func TestTickRemovesHitTarget(t *testing.T) {
	s := NewState(DefaultConfig())
	hit := s.Targets[0] // (600,300)
	survivors := []string{s.Targets[1].ID, s.Targets[2].ID}
	launchAt(s, 580, 325, 5, -0.5)

	events := Tick(s)

	if s.Score != constants.ScorePerTarget {
		t.Errorf("score = %d, want %d", s.Score, constants.ScorePerTarget)
	}
	if len(s.Targets) != 2 {
		t.Fatalf("targets = %d, want 2", len(s.Targets))
	}
	for i, id := range survivors {
		if s.Targets[i].ID != id {
			t.Errorf("target %d = %s, want %s (order must be kept)", i, s.Targets[i].ID, id)
		}
	}
	if countEvents(events, game_objects.EventTargetDestroyed) != 1 || events[0].ObjectID != hit.ID {
		t.Errorf("events = %v, want target %s destroyed", events, hit.ID)
	}
	if countEvents(events, game_objects.EventScoreChanged) != 1 || events[1].Score != constants.ScorePerTarget {
		t.Errorf("events = %v, want score_changed(%d)", events, constants.ScorePerTarget)
	}
	if !s.Body.Launched {
		t.Errorf("body should keep flying through a destroyed target")
	}
}

func TestTickRemovesEveryTargetHitInOneTick(t *testing.T) {
	s := NewState(DefaultConfig())
	last := s.Targets[2] // (600,350)
	launchAt(s, 580, 300, 5, -0.5)

	events := Tick(s)

	if s.Score != 2*constants.ScorePerTarget {
		t.Errorf("score = %d, want %d", s.Score, 2*constants.ScorePerTarget)
	}
	if len(s.Targets) != 1 || s.Targets[0].ID != last.ID {
		t.Fatalf("remaining targets = %v, want only %s", s.Targets, last.ID)
	}
	if n := countEvents(events, game_objects.EventTargetDestroyed); n != 2 {
		t.Errorf("destroyed events = %d, want 2", n)
	}
}

func TestTickClearingLevelRestoresInitialLayout(t *testing.T) {
	config := DefaultConfig()
	config.BodyRadius = 60
	s := NewState(config)
	launchAt(s, 580, 325, 5, -0.5)

	events := Tick(s)

	if s.Score != 3*constants.ScorePerTarget {
		t.Errorf("score = %d, want %d", s.Score, 3*constants.ScorePerTarget)
	}
	wantScores := []int{100, 200, 300}
	var gotScores []int
	for _, e := range events {
		if e.EventType == game_objects.EventScoreChanged {
			gotScores = append(gotScores, e.Score)
		}
	}
	if len(gotScores) != len(wantScores) {
		t.Fatalf("score events = %v, want %v", gotScores, wantScores)
	}
	for i := range wantScores {
		if gotScores[i] != wantScores[i] {
			t.Errorf("score event %d = %d, want %d", i, gotScores[i], wantScores[i])
		}
	}
	if countEvents(events, game_objects.EventLevelCleared) != 1 {
		t.Errorf("events = %v, want one level_cleared", events)
	}
	if s.Level != 1 {
		t.Errorf("level = %d, want 1", s.Level)
	}

	assertRestingAtAnchor(t, s)
	assertCanonicalTargets(t, s)
}

func TestTickIgnoresRestingAndDraggingBody(t *testing.T) {
	s := NewState(DefaultConfig())

	Tick(s)
	assertRestingAtAnchor(t, s)

	HandleInput(s, PointerDown(100, 400))
	HandleInput(s, PointerMove(60, 420))
	for i := 0; i < 5; i++ {
		if events := Tick(s); len(events) != 0 {
			t.Fatalf("dragging tick raised %v", events)
		}
	}
	if s.Body.X != 60 || s.Body.Y != 420 || s.Body.Dx != 0 || s.Body.Dy != 0 {
		t.Errorf("dragged body moved to (%v,%v) v(%v,%v)", s.Body.X, s.Body.Y, s.Body.Dx, s.Body.Dy)
	}
	if s.Ticks != 6 {
		t.Errorf("ticks = %d, want 6", s.Ticks)
	}
}

func TestPointerDownHitArea(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		x      float64
		want   bool
	}{
		{name: "Default inside enlarged area", config: DefaultConfig(), x: 129, want: true},
		{name: "Default outside enlarged area", config: DefaultConfig(), x: 131, want: false},
		{name: "Simple inside radius", config: SimpleConfig(), x: 119, want: true},
		{name: "Simple outside radius", config: SimpleConfig(), x: 121, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(tt.config)
			events := HandleInput(s, PointerDown(tt.x, 400))
			if s.Dragging != tt.want {
				t.Errorf("dragging = %v, want %v", s.Dragging, tt.want)
			}
			if got := countEvents(events, game_objects.EventDragStarted) == 1; got != tt.want {
				t.Errorf("drag_started raised = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointerDownIgnoredWhileFlying(t *testing.T) {
	s := NewState(DefaultConfig())
	launchAt(s, 300, 300, 1, 0)

	if events := HandleInput(s, PointerDown(300, 300)); events != nil {
		t.Errorf("events = %v, want none", events)
	}
	if s.Dragging {
		t.Errorf("flying body must not be grabbed")
	}
}

func TestPointerMoveWithoutDragIsIgnored(t *testing.T) {
	s := NewState(DefaultConfig())
	HandleInput(s, PointerMove(10, 10))
	HandleInput(s, PointerUp())
	assertRestingAtAnchor(t, s)
}

func TestDragClamp(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		wantX  float64
	}{
		{name: "Default clamps to max drag distance", config: DefaultConfig(), wantX: 0},
		{name: "Simple follows the pointer", config: SimpleConfig(), wantX: -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(tt.config)
			HandleInput(s, PointerDown(100, 400))
			HandleInput(s, PointerMove(-100, 400))
			if !approxEqual(s.Body.X, tt.wantX) || !approxEqual(s.Body.Y, 400) {
				t.Errorf("body = (%v,%v), want (%v,400)", s.Body.X, s.Body.Y, tt.wantX)
			}
		})
	}
}

func TestReleaseLaunchesOppositeThePull(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{name: "Default power", config: DefaultConfig()},
		{name: "Simple power", config: SimpleConfig()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(tt.config)
			HandleInput(s, PointerDown(s.Launcher.X, s.Launcher.Y))
			HandleInput(s, PointerMove(s.Launcher.X-50, s.Launcher.Y))
			events := HandleInput(s, PointerUp())

			if !s.Body.Launched || s.Dragging || s.Phase() != PhaseFlying {
				t.Fatalf("launched=%v dragging=%v phase=%v, want flying", s.Body.Launched, s.Dragging, s.Phase())
			}
			if !approxEqual(s.Body.Dx, 50*tt.config.LaunchPower) || s.Body.Dy != 0 {
				t.Errorf("velocity = (%v,%v), want (%v,0)", s.Body.Dx, s.Body.Dy, 50*tt.config.LaunchPower)
			}
			if countEvents(events, game_objects.EventBodyLaunched) != 1 {
				t.Errorf("events = %v, want body_launched", events)
			}
		})
	}
}

func TestShortDragCancels(t *testing.T) {
	s := NewState(DefaultConfig())
	HandleInput(s, PointerDown(100, 400))
	HandleInput(s, PointerMove(95, 400))
	events := HandleInput(s, PointerUp())

	assertRestingAtAnchor(t, s)
	if s.Score != 0 {
		t.Errorf("score = %d, want 0", s.Score)
	}
	if countEvents(events, game_objects.EventDragCancelled) != 1 {
		t.Errorf("events = %v, want drag_cancelled", events)
	}
}

func TestShortDragLaunchesWithoutThreshold(t *testing.T) {
	s := NewState(SimpleConfig())
	HandleInput(s, PointerDown(100, 400))
	HandleInput(s, PointerMove(95, 400))
	HandleInput(s, PointerUp())

	if !s.Body.Launched {
		t.Fatalf("simple variant should launch on every release")
	}
	if !approxEqual(s.Body.Dx, 0.5) {
		t.Errorf("dx = %v, want 0.5", s.Body.Dx)
	}
}

func TestFlightEventuallyReturnsToLauncher(t *testing.T) {
	s := NewState(DefaultConfig())
	HandleInput(s, PointerDown(100, 400))
	HandleInput(s, PointerMove(30, 400))
	HandleInput(s, PointerUp())

	for i := 0; i < 500 && s.Body.Launched; i++ {
		Tick(s)
	}
	if s.Body.Launched {
		t.Fatalf("body still flying after 500 ticks at (%v,%v)", s.Body.X, s.Body.Y)
	}
	if s.Score%constants.ScorePerTarget != 0 {
		t.Errorf("score = %d, want a multiple of %d", s.Score, constants.ScorePerTarget)
	}
	assertRestingAtAnchor(t, s)
}

func TestSnapshotWhileDragging(t *testing.T) {
	s := NewState(DefaultConfig())
	HandleInput(s, PointerDown(100, 400))
	HandleInput(s, PointerMove(70, 440))

	snap := s.Snapshot()
	if snap.Phase != PhaseDragging {
		t.Errorf("phase = %v, want %v", snap.Phase, PhaseDragging)
	}
	if snap.Body.Color != constants.BodyDraggingColor || !snap.Body.Dragging {
		t.Errorf("body = %+v, want dragging highlight", snap.Body)
	}
	if len(snap.Band) != 2 {
		t.Fatalf("band segments = %d, want 2", len(snap.Band))
	}
	if snap.Band[0].X1 != 90 || snap.Band[1].X1 != 110 || snap.Band[0].Y1 != 400 {
		t.Errorf("band anchors = %+v", snap.Band)
	}
	for _, seg := range snap.Band {
		if seg.X2 != 70 || seg.Y2 != 440 {
			t.Errorf("band end = (%v,%v), want (70,440)", seg.X2, seg.Y2)
		}
	}
	if len(snap.Targets) != 3 || snap.Targets[0].Color != constants.TargetColor {
		t.Errorf("targets = %+v", snap.Targets)
	}

	HandleInput(s, PointerUp())
	snap = s.Snapshot()
	if snap.Band != nil || snap.Body.Color != constants.BodyColor {
		t.Errorf("released snapshot should drop the band and highlight: %+v", snap)
	}
}

func TestGetAllStates(t *testing.T) {
	s := NewState(DefaultConfig())
	HandleInput(s, PointerDown(100, 400))
	HandleInput(s, PointerMove(70, 440))

	states := s.GetAllStates()
	if len(states) != 5 {
		t.Fatalf("states = %d, want launcher + body + 3 targets", len(states))
	}

	body := states[s.Body.ID]
	if body[constants.StateObjectType] != constants.ObjectTypeBody {
		t.Errorf("body objectType = %v", body[constants.StateObjectType])
	}
	if body[constants.StateX] != 70.0 || body[constants.StateY] != 440.0 {
		t.Errorf("body position = (%v,%v), want (70,440)", body[constants.StateX], body[constants.StateY])
	}
	if body[constants.StateDragging] != true || body[constants.StateRadius] != constants.BodyRadius {
		t.Errorf("body state = %v", body)
	}

	launcher := states[s.Launcher.ID]
	if launcher[constants.StateObjectType] != constants.ObjectTypeLauncher || launcher[constants.StateHeight] != constants.LauncherHeight {
		t.Errorf("launcher state = %v", launcher)
	}
	for _, target := range s.Targets {
		state, ok := states[target.ID]
		if !ok {
			t.Fatalf("target %s missing", target.ID)
		}
		if state[constants.StateColor] != constants.TargetColor {
			t.Errorf("target state = %v", state)
		}
	}

	// removed targets drop out of the map
	s.Targets = s.Targets[1:]
	if got := len(s.GetAllStates()); got != 4 {
		t.Errorf("states after removal = %d, want 4", got)
	}
}
