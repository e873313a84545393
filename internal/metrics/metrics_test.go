package metrics

import (
	"testing"

	"github.com/nvoss/sundiver/internal/geom"
	"github.com/nvoss/sundiver/internal/sim"
)

func TestOrbitalEnergyDrift(t *testing.T) {
	m := NewOrbitalEnergy(1.0, 1000)

	rocket := sim.Rocket{Body: sim.Body{
		Pos: geom.Vec2{X: 50},
		Vel: geom.Vec2{Y: 4},
	}}

	m.OnStep(0, rocket, nil)
	if m.Value() != 0 {
		t.Errorf("first sample defines the baseline, drift should be 0, got %f", m.Value())
	}

	// Same state again: still no drift.
	m.OnStep(1, rocket, nil)
	if m.Value() != 0 {
		t.Errorf("identical state should not drift, got %f", m.Value())
	}

	// Doubled speed changes the energy.
	rocket.Vel = geom.Vec2{Y: 8}
	m.OnStep(2, rocket, nil)
	if m.Value() <= 0 {
		t.Error("energy change should register as drift")
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset should clear drift")
	}
}

func TestOrbitalEnergyIgnoresDestroyed(t *testing.T) {
	m := NewOrbitalEnergy(1.0, 1000)

	alive := sim.Rocket{Body: sim.Body{Pos: geom.Vec2{X: 50}, Vel: geom.Vec2{Y: 4}}}
	m.OnStep(0, alive, nil)

	dead := alive
	dead.State = sim.Destroyed
	dead.Vel = geom.Vec2{Y: 100}
	m.OnStep(1, dead, nil)

	if m.Value() != 0 {
		t.Errorf("destroyed rocket samples must be skipped, got drift %f", m.Value())
	}
}

func TestRadialDrift(t *testing.T) {
	m := NewRadialDrift(0)

	planets := []sim.Body{{Pos: geom.Vec2{X: 100}}}
	m.OnStep(0, sim.Rocket{}, planets)

	planets[0].Pos = geom.Vec2{X: 0, Y: 110}
	m.OnStep(1, sim.Rocket{}, planets)

	if got := m.Value(); got < 0.099 || got > 0.101 {
		t.Errorf("expected ~10%% drift, got %f", got)
	}
}

func TestRadialDriftOutOfRange(t *testing.T) {
	m := NewRadialDrift(3)
	m.OnStep(0, sim.Rocket{}, []sim.Body{{Pos: geom.Vec2{X: 100}}})
	if m.Value() != 0 {
		t.Error("missing planet index should be ignored")
	}
}
