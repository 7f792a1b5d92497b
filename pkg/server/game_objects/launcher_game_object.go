package game_objects

import (
	"slingshot-server/pkg/server/constants"
	"slingshot-server/pkg/server/geo"
)

// LauncherGameObject is the fixed slingshot. X, Y is the anchor the body
// rests on; the post hangs below it, centred on X.
type LauncherGameObject struct {
	*BaseGameObject
	X               float64
	Y               float64
	Width           float64
	Height          float64
	MaxDragDistance float64
}

func NewLauncherGameObject(id string, x float64, y float64, width float64, height float64, maxDragDistance float64) *LauncherGameObject {
	return &LauncherGameObject{
		BaseGameObject:  NewBaseGameObject(id, constants.ObjectTypeLauncher),
		X:               x,
		Y:               y,
		Width:           width,
		Height:          height,
		MaxDragDistance: maxDragDistance,
	}
}

// Anchor returns the rest position of the body
func (l *LauncherGameObject) Anchor() *geo.Point {
	return geo.NewPoint(l.X, l.Y)
}

// BandAnchors returns the two top corners of the post the band is tied to
func (l *LauncherGameObject) BandAnchors() (*geo.Point, *geo.Point) {
	return geo.NewPoint(l.X-l.Width/2, l.Y), geo.NewPoint(l.X+l.Width/2, l.Y)
}

func (l *LauncherGameObject) GetState() map[string]interface{} {
	state := l.BaseGameObject.GetState()
	state[constants.StateX] = l.X
	state[constants.StateY] = l.Y
	state[constants.StateWidth] = l.Width
	state[constants.StateHeight] = l.Height
	return state
}
