package simulation

import (
	"slingshot-server/pkg/server/constants"
	"slingshot-server/pkg/server/game_objects"
	"slingshot-server/pkg/server/geo"
)

type BodySnapshot struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Radius   float64 `json:"radius"`
	Color    string  `json:"color"`
	Dragging bool    `json:"dragging"`
	Launched bool    `json:"launched"`
}

type LauncherSnapshot struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Color  string  `json:"color"`
}

type TargetSnapshot struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Color  string  `json:"color"`
}

// SegmentSnapshot is one strand of the drag band
type SegmentSnapshot struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Snapshot is a read-only copy of what a renderer needs for one frame
type Snapshot struct {
	Width    float64           `json:"width"`
	Height   float64           `json:"height"`
	Phase    Phase             `json:"phase"`
	Body     BodySnapshot      `json:"body"`
	Launcher LauncherSnapshot  `json:"launcher"`
	Targets  []TargetSnapshot  `json:"targets"`
	Band     []SegmentSnapshot `json:"band,omitempty"`
	Score    int               `json:"score"`
	Level    int               `json:"level"`
	Tick     uint64            `json:"tick"`
}

func (s *State) Snapshot() *Snapshot {
	color := constants.BodyColor
	if s.Dragging {
		color = constants.BodyDraggingColor
	}

	snapshot := &Snapshot{
		Width:  s.Config.Width,
		Height: s.Config.Height,
		Phase:  s.Phase(),
		Body: BodySnapshot{
			X:        s.Body.X,
			Y:        s.Body.Y,
			Radius:   s.Body.Radius,
			Color:    color,
			Dragging: s.Dragging,
			Launched: s.Body.Launched,
		},
		Launcher: LauncherSnapshot{
			X:      s.Launcher.X,
			Y:      s.Launcher.Y,
			Width:  s.Launcher.Width,
			Height: s.Launcher.Height,
			Color:  constants.LauncherColor,
		},
		Targets: make([]TargetSnapshot, 0, len(s.Targets)),
		Score:   s.Score,
		Level:   s.Level,
		Tick:    s.Ticks,
	}

	for _, t := range s.Targets {
		snapshot.Targets = append(snapshot.Targets, TargetSnapshot{
			ID:     t.ID,
			X:      t.X,
			Y:      t.Y,
			Width:  t.Width,
			Height: t.Height,
			Color:  t.Color,
		})
	}

	if s.Dragging {
		left, right := s.Launcher.BandAnchors()
		for _, a := range []*geo.Point{left, right} {
			snapshot.Band = append(snapshot.Band, SegmentSnapshot{X1: a.X, Y1: a.Y, X2: s.Body.X, Y2: s.Body.Y})
		}
	}

	return snapshot
}

// GetAllObjects returns the launcher, the body and the live targets
func (s *State) GetAllObjects() []game_objects.GameObject {
	objects := make([]game_objects.GameObject, 0, len(s.Targets)+2)
	objects = append(objects, s.Launcher, s.Body)
	for _, t := range s.Targets {
		objects = append(objects, t)
	}
	return objects
}

// GetAllStates returns the state map of every object keyed by object ID
func (s *State) GetAllStates() map[string]map[string]interface{} {
	allStates := make(map[string]map[string]interface{})
	for _, obj := range s.GetAllObjects() {
		state := obj.GetState()
		if obj.GetObjectType() == constants.ObjectTypeBody {
			state[constants.StateDragging] = s.Dragging
		}
		allStates[obj.GetID()] = state
	}
	return allStates
}
