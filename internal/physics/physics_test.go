package physics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nvoss/sundiver/internal/geom"
	"github.com/nvoss/sundiver/internal/physics"
)

var _ = Describe("Acceleration", func() {
	const (
		g           = 1.0
		minDistance = 0.1
	)

	It("points from the target toward the source", func() {
		acc := physics.Acceleration(geom.Vec2{X: 1, Y: 0}, geom.Vec2{X: 4, Y: 0}, 10, g, minDistance)
		Expect(acc.X).To(BeNumerically(">", 0))
		Expect(acc.Y).To(BeNumerically("~", 0, 1e-12))
	})

	It("follows the inverse-square law", func() {
		near := physics.Acceleration(geom.Vec2{}, geom.Vec2{X: 2, Y: 0}, 10, g, minDistance)
		far := physics.Acceleration(geom.Vec2{}, geom.Vec2{X: 4, Y: 0}, 10, g, minDistance)
		Expect(near.Len()).To(BeNumerically("~", 4*far.Len(), 1e-12))
	})

	It("scales linearly with source mass", func() {
		a1 := physics.Acceleration(geom.Vec2{}, geom.Vec2{X: 3, Y: 0}, 5, g, minDistance)
		a2 := physics.Acceleration(geom.Vec2{}, geom.Vec2{X: 3, Y: 0}, 10, g, minDistance)
		Expect(a2.Len()).To(BeNumerically("~", 2*a1.Len(), 1e-12))
	})

	It("returns zero inside the minimum distance", func() {
		acc := physics.Acceleration(geom.Vec2{}, geom.Vec2{X: 0.05, Y: 0}, 1e9, g, minDistance)
		Expect(acc).To(Equal(geom.Vec2{}))
	})

	It("returns zero for coincident bodies rather than NaN", func() {
		acc := physics.Acceleration(geom.Vec2{X: 1, Y: 1}, geom.Vec2{X: 1, Y: 1}, 1e9, g, minDistance)
		Expect(math.IsNaN(acc.X)).To(BeFalse())
		Expect(acc).To(Equal(geom.Vec2{}))
	})
})

var _ = Describe("Step", func() {
	It("updates velocity before position", func() {
		pos, vel := physics.Step(geom.Vec2{}, geom.Vec2{}, geom.Vec2{X: 2, Y: 0}, 0.5)
		Expect(vel.X).To(Equal(1.0))
		// Position moves by the updated velocity, not the stale one.
		Expect(pos.X).To(Equal(0.5))
	})

	It("is deterministic", func() {
		p1, v1 := physics.Step(geom.Vec2{X: 1, Y: 2}, geom.Vec2{X: -0.3, Y: 0.7}, geom.Vec2{X: 0.1, Y: -0.2}, 1.0/120)
		p2, v2 := physics.Step(geom.Vec2{X: 1, Y: 2}, geom.Vec2{X: -0.3, Y: 0.7}, geom.Vec2{X: 0.1, Y: -0.2}, 1.0/120)
		Expect(p1).To(Equal(p2))
		Expect(v1).To(Equal(v2))
	})

	It("holds a circular orbit over 10000 steps", func() {
		const (
			g      = 1.0
			mass   = 1000.0
			radius = 50.0
			dt     = 1.0 / 120
		)

		pos := geom.Vec2{X: radius, Y: 0}
		vel := geom.Vec2{X: 0, Y: physics.CircularOrbitSpeed(g, mass, radius)}

		for i := 0; i < 10000; i++ {
			acc := physics.Acceleration(pos, geom.Vec2{}, mass, g, 1e-6)
			pos, vel = physics.Step(pos, vel, acc, dt)
		}

		// Symplectic Euler drifts, but stays within a small bound of
		// the original radius instead of spiralling.
		Expect(pos.Len()).To(BeNumerically("~", radius, radius*0.02))
	})
})

var _ = Describe("OrbitalInsertion", func() {
	It("places the orbiter at the requested radius and angle", func() {
		pos, _ := physics.OrbitalInsertion(geom.Vec2{X: 10, Y: 5}, geom.Vec2{}, 100, 1.0, 4, 0)
		Expect(pos.X).To(BeNumerically("~", 14, 1e-12))
		Expect(pos.Y).To(BeNumerically("~", 5, 1e-12))
	})

	It("inserts with tangential velocity relative to the center", func() {
		center := geom.Vec2{}
		pos, vel := physics.OrbitalInsertion(center, geom.Vec2{}, 100, 1.0, 4, 0)

		radial := pos.Sub(center)
		Expect(radial.Dot(vel)).To(BeNumerically("~", 0, 1e-9))
		Expect(vel.Len()).To(BeNumerically("~", physics.CircularOrbitSpeed(1.0, 100, 4), 1e-12))
	})

	It("carries the center's velocity", func() {
		drift := geom.Vec2{X: 3, Y: -1}
		_, vel := physics.OrbitalInsertion(geom.Vec2{}, drift, 100, 1.0, 4, math.Pi/2)
		rel := vel.Sub(drift)
		Expect(rel.Len()).To(BeNumerically("~", physics.CircularOrbitSpeed(1.0, 100, 4), 1e-12))
	})
})
