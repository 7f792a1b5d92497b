package simulation

import "slingshot-server/pkg/server/constants"

// Config holds every tuned value the simulation reads. The two constructors
// below are the two playable variants; they are not behaviourally equivalent.
type Config struct {
	Width  float64
	Height float64

	Gravity        float64
	Elasticity     float64
	GroundFriction float64
	ApplyFriction  bool

	LaunchPower       float64
	HitAreaMultiplier float64

	// ClampDrag keeps the dragged body within MaxDragDistance of the anchor
	ClampDrag       bool
	MaxDragDistance float64

	// EnforceLaunchThreshold turns releases closer than MinLaunchDistance into cancels
	EnforceLaunchThreshold bool
	MinLaunchDistance      float64

	BodyRadius     float64
	LauncherX      float64
	LauncherY      float64
	LauncherWidth  float64
	LauncherHeight float64

	ScorePerTarget int
}

// DefaultConfig is the canonical variant: drag clamp, launch threshold,
// ground friction, enlarged hit area.
func DefaultConfig() Config {
	return Config{
		Width:                  constants.CanvasWidth,
		Height:                 constants.CanvasHeight,
		Gravity:                constants.Gravity,
		Elasticity:             constants.Elasticity,
		GroundFriction:         constants.GroundFriction,
		ApplyFriction:          true,
		LaunchPower:            constants.LaunchPower,
		HitAreaMultiplier:      constants.HitAreaMultiplier,
		ClampDrag:              true,
		MaxDragDistance:        constants.MaxDragDistance,
		EnforceLaunchThreshold: true,
		MinLaunchDistance:      constants.MinLaunchDistance,
		BodyRadius:             constants.BodyRadius,
		LauncherX:              constants.LauncherX,
		LauncherY:              constants.LauncherY,
		LauncherWidth:          constants.LauncherWidth,
		LauncherHeight:         constants.LauncherHeight,
		ScorePerTarget:         constants.ScorePerTarget,
	}
}

// SimpleConfig is the looser variant: no clamp, every release launches,
// no friction, exact hit area and a weaker launch.
func SimpleConfig() Config {
	c := DefaultConfig()
	c.ApplyFriction = false
	c.LaunchPower = 0.1
	c.HitAreaMultiplier = 1.0
	c.ClampDrag = false
	c.EnforceLaunchThreshold = false
	return c
}
