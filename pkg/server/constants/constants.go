package constants

// Canvas constants
const (
	CanvasWidth  = 800.0
	CanvasHeight = 600.0
)

// Physics constants, in canvas units per tick
const (
	Gravity        = 0.5
	Elasticity     = 0.7
	GroundFriction = 0.99
)

// Launch constants
const (
	LaunchPower       = 0.15
	HitAreaMultiplier = 1.5
	MaxDragDistance   = 100.0
	MinLaunchDistance = 10.0
)

// Object types
const (
	ObjectTypeBody     = "body"
	ObjectTypeLauncher = "launcher"
	ObjectTypeTarget   = "target"
)

// Object state keys
const (
	StateID         = "id"
	StateObjectType = "objectType"
	StateX          = "x"
	StateY          = "y"
	StateWidth      = "w"
	StateHeight     = "h"
	StateDx         = "dx"
	StateDy         = "dy"
	StateRadius     = "rad"      // radius of the body circle
	StateColor      = "color"    // fill color, CSS hex
	StateLaunched   = "launched" // body is in flight
	StateDragging   = "dragging" // body is held by the pointer
)

// Object constants
const (
	BodyRadius        = 20.0
	BodyColor         = "#FF0000"
	BodyDraggingColor = "#FF6B6B"

	LauncherX      = 100.0
	LauncherY      = 400.0
	LauncherWidth  = 20.0
	LauncherHeight = 100.0
	LauncherColor  = "#4B2810"

	TargetWidth  = 50.0
	TargetHeight = 50.0
	TargetColor  = "#8B4513"
)

// Scoring
const (
	ScorePerTarget = 100
)

// InitialTargetPositions are the top-left corners of the targets placed at
// the start of every level, in collection order.
var InitialTargetPositions = [][2]float64{
	{600, 300},
	{600, 250},
	{600, 350},
}
