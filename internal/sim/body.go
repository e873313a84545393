package sim

import "github.com/nvoss/sundiver/internal/geom"

// Body is the shared kinematic state of every gravitating object.
// The sun is a Body that is never integrated; planets are integrated
// under sun gravity only.
type Body struct {
	Pos             geom.Vec2
	Vel             geom.Vec2
	Mass            float64
	Radius          float64 // visual radius
	CollisionRadius float64
}

// RocketState is the rocket's lifecycle state. The rocket is always in
// exactly one state; Destroyed is terminal until an explicit respawn.
type RocketState int

const (
	Flying RocketState = iota
	Landed
	Destroyed
)

func (s RocketState) String() string {
	switch s {
	case Flying:
		return "flying"
	case Landed:
		return "landed"
	case Destroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Rocket is the player body: a Body plus facing, thrust flag and
// lifecycle state. While Landed it co-moves with LandedPlanet at
// LandingAngle instead of being integrated.
type Rocket struct {
	Body
	Angle        float64
	Thrusting    bool
	State        RocketState
	LandedPlanet int
	LandingAngle float64
}
