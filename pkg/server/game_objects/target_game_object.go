package game_objects

import (
	"slingshot-server/pkg/server/constants"
	"slingshot-server/pkg/server/geo"

	"github.com/google/uuid"
)

type TargetGameObject struct {
	*BaseGameObject
	X      float64
	Y      float64
	Width  float64
	Height float64
	Color  string
}

func NewTargetGameObject(id string, x float64, y float64, width float64, height float64) *TargetGameObject {
	return &TargetGameObject{
		BaseGameObject: NewBaseGameObject(id, constants.ObjectTypeTarget),
		X:              x,
		Y:              y,
		Width:          width,
		Height:         height,
		Color:          constants.TargetColor,
	}
}

// NewInitialTargets builds the targets every level starts with, in order
func NewInitialTargets() []*TargetGameObject {
	targets := make([]*TargetGameObject, 0, len(constants.InitialTargetPositions))
	for _, pos := range constants.InitialTargetPositions {
		targets = append(targets, NewTargetGameObject(
			uuid.New().String(),
			pos[0],
			pos[1],
			constants.TargetWidth,
			constants.TargetHeight,
		))
	}
	return targets
}

func (t *TargetGameObject) GetState() map[string]interface{} {
	state := t.BaseGameObject.GetState()
	state[constants.StateX] = t.X
	state[constants.StateY] = t.Y
	state[constants.StateWidth] = t.Width
	state[constants.StateHeight] = t.Height
	state[constants.StateColor] = t.Color
	return state
}

func (t *TargetGameObject) GetBoundingShape() geo.Shape {
	return geo.NewRect(t.X, t.Y, t.Width, t.Height)
}
