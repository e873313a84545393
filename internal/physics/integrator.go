package physics

import "github.com/nvoss/sundiver/internal/geom"

// Step advances one body by one fixed timestep using semi-implicit
// Euler: the velocity is updated first and the *new* velocity moves
// the position. Pure function, no hidden state.
func Step(pos, vel, acc geom.Vec2, dt float64) (geom.Vec2, geom.Vec2) {
	vel = vel.Add(acc.Scale(dt))
	pos = pos.Add(vel.Scale(dt))
	return pos, vel
}
