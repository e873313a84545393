package physics

import (
	"math"

	"github.com/nvoss/sundiver/internal/geom"
)

// CircularOrbitSpeed returns the tangential speed for a circular orbit
// of the given radius around a central mass: v = sqrt(g*M/r).
func CircularOrbitSpeed(g, centralMass, radius float64) float64 {
	return math.Sqrt(g * centralMass / radius)
}

// OrbitalInsertion returns position and velocity for circular-orbit
// insertion around a moving central body. The orbiter is placed at
// the given angle and radius from the center; its velocity is the
// center's velocity plus the counter-clockwise tangential component.
func OrbitalInsertion(center, centerVel geom.Vec2, centerMass, g, radius, angle float64) (pos, vel geom.Vec2) {
	radial := geom.FromAngle(angle)
	pos = center.Add(radial.Scale(radius))

	speed := CircularOrbitSpeed(g, centerMass, radius)
	// Tangent is the radial vector rotated +90 degrees.
	tangent := geom.Vec2{X: -radial.Y, Y: radial.X}
	vel = centerVel.Add(tangent.Scale(speed))
	return pos, vel
}
