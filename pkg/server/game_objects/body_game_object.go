package game_objects

import (
	"slingshot-server/pkg/server/constants"
	"slingshot-server/pkg/server/geo"
)

// BodyGameObject is the projectile. Radius never changes after creation.
type BodyGameObject struct {
	*BaseGameObject
	X        float64
	Y        float64
	Dx       float64
	Dy       float64
	Radius   float64
	Launched bool
}

// NewBodyGameObject creates a resting body at (x, y)
func NewBodyGameObject(id string, x float64, y float64, radius float64) *BodyGameObject {
	return &BodyGameObject{
		BaseGameObject: NewBaseGameObject(id, constants.ObjectTypeBody),
		X:              x,
		Y:              y,
		Radius:         radius,
	}
}

// Position returns the body centre
func (b *BodyGameObject) Position() *geo.Point {
	return geo.NewPoint(b.X, b.Y)
}

// MoveTo places a resting body, leaving velocity untouched
func (b *BodyGameObject) MoveTo(p *geo.Point) {
	b.X = p.X
	b.Y = p.Y
}

// Launch puts the body in flight with the given velocity
func (b *BodyGameObject) Launch(velocity *geo.Point) {
	b.Dx = velocity.X
	b.Dy = velocity.Y
	b.Launched = true
}

// Reset returns the body to the anchor at rest
func (b *BodyGameObject) Reset(anchor *geo.Point) {
	b.X = anchor.X
	b.Y = anchor.Y
	b.Dx = 0
	b.Dy = 0
	b.Launched = false
}

func (b *BodyGameObject) GetState() map[string]interface{} {
	state := b.BaseGameObject.GetState()
	state[constants.StateX] = b.X
	state[constants.StateY] = b.Y
	state[constants.StateDx] = b.Dx
	state[constants.StateDy] = b.Dy
	state[constants.StateRadius] = b.Radius
	state[constants.StateLaunched] = b.Launched
	return state
}

func (b *BodyGameObject) GetBoundingShape() geo.Shape {
	return geo.NewCircle(b.Position(), b.Radius)
}
