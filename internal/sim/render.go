package sim

import "github.com/nvoss/sundiver/internal/geom"

// Input carries the frame's steering intents. Rotation is applied with
// real frame time; thrust feeds the fixed-step physics.
type Input struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
}

// RenderState is the interpolated, renderer-agnostic snapshot emitted
// once per frame. Consumers must treat it as read-only; it never
// aliases simulation internals.
type RenderState struct {
	Sun     geom.Vec2
	Planets []geom.Vec2
	Rocket  RocketRender
	Time    float64
}

// RocketRender is the rocket's interpolated pose plus HUD flags.
type RocketRender struct {
	Pos       geom.Vec2
	Angle     float64
	Alive     bool
	Landed    bool
	Thrusting bool
	Speed     float64
}
