// Package physics implements the numerical core of the orbital
// simulation: pairwise gravitational acceleration, a semi-implicit
// (symplectic) Euler integrator, and circular-orbit helpers.
//
// Everything here is a pure function over [geom.Vec2] kinematics.
// The integration scheme is fixed: velocity updates before position,
// which keeps long-horizon orbits bounded where explicit Euler
// spirals outward.
package physics
