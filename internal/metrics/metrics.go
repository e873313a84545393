// Package metrics provides per-step observers that summarize a run:
// orbital energy drift and radial orbit drift. Each metric implements
// sim.Observer and can be attached to a Simulation.
package metrics

import (
	"math"

	"github.com/nvoss/sundiver/internal/sim"
)

// Metric is a named scalar summary accumulated over simulation steps.
type Metric interface {
	Name() string
	OnStep(t float64, rocket sim.Rocket, planets []sim.Body)
	Value() float64
	Reset()
}

// OrbitalEnergy tracks the rocket's specific orbital energy relative
// to the sun (v²/2 − g·M/r) and reports the maximum relative drift
// from its initial value. Thrust, landings and crashes all move it;
// on a free orbit it measures integrator quality.
type OrbitalEnergy struct {
	g       float64
	sunMass float64

	initial  float64
	maxDrift float64
	samples  int
}

func NewOrbitalEnergy(g, sunMass float64) *OrbitalEnergy {
	return &OrbitalEnergy{g: g, sunMass: sunMass}
}

func (e *OrbitalEnergy) Name() string { return "energy_drift" }

func (e *OrbitalEnergy) OnStep(t float64, rocket sim.Rocket, planets []sim.Body) {
	if rocket.State == sim.Destroyed {
		return
	}

	r := rocket.Pos.Len()
	if r == 0 {
		return
	}
	energy := 0.5*rocket.Vel.LenSq() - e.g*e.sunMass/r

	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *OrbitalEnergy) Value() float64 { return e.maxDrift }

func (e *OrbitalEnergy) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}

// RadialDrift reports the maximum relative deviation of a planet's
// sun distance from its initial orbit radius.
type RadialDrift struct {
	planet int

	initial  float64
	maxDrift float64
	samples  int
}

func NewRadialDrift(planet int) *RadialDrift {
	return &RadialDrift{planet: planet}
}

func (d *RadialDrift) Name() string { return "radial_drift" }

func (d *RadialDrift) OnStep(t float64, rocket sim.Rocket, planets []sim.Body) {
	if d.planet >= len(planets) {
		return
	}

	r := planets[d.planet].Pos.Len()
	if d.samples == 0 {
		d.initial = r
	}
	d.samples++

	if d.initial != 0 {
		drift := math.Abs(r-d.initial) / d.initial
		d.maxDrift = math.Max(d.maxDrift, drift)
	}
}

func (d *RadialDrift) Value() float64 { return d.maxDrift }

func (d *RadialDrift) Reset() {
	d.initial = 0
	d.maxDrift = 0
	d.samples = 0
}
