package physics

import (
	"github.com/nvoss/sundiver/internal/geom"
)

// Acceleration returns the gravitational acceleration exerted on a body
// at target by a point mass at source.
//
// Magnitude is g*sourceMass/d², directed from target toward source.
// Below minDistance the field returns zero instead of blowing up; the
// singularity guard is policy, not an error.
func Acceleration(target, source geom.Vec2, sourceMass, g, minDistance float64) geom.Vec2 {
	delta := source.Sub(target)
	dist := delta.Len()
	if dist < minDistance {
		return geom.Vec2{}
	}
	mag := g * sourceMass / (dist * dist)
	return delta.Scale(mag / dist)
}
