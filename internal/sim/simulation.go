package sim

import (
	"fmt"
	"math"

	"github.com/nvoss/sundiver/internal/geom"
	"github.com/nvoss/sundiver/internal/level"
	"github.com/nvoss/sundiver/internal/physics"
)

// Observer is notified after every fixed simulation step. The rocket
// is a copy; the planets slice is the live backing array, borrowed for
// the duration of the call. Observers must not mutate it or retain it
// across calls.
type Observer interface {
	OnStep(t float64, rocket Rocket, planets []Body)
}

// Simulation owns all body state for one level. It is single-threaded
// and frame-driven: the caller invokes Advance once per rendered frame
// and the simulation runs zero or more fixed steps inside it.
type Simulation struct {
	cfg       *level.Config
	sun       Body
	planets   []Body
	rocket    Rocket
	sched     *Scheduler
	prev      snapshot
	timeScale float64
	elapsed   float64
	observers []Observer

	// scratch acceleration buffers, reused every step
	planetAcc []geom.Vec2
}

// New builds a simulation from a level config. The config is validated
// once here; afterwards it is assumed well-formed.
func New(cfg *level.Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("level config: %w", err)
	}

	s := &Simulation{
		cfg:       cfg,
		sched:     NewScheduler(cfg.FixedDT, cfg.MaxStepsPerFrame, cfg.MaxFrameTime),
		timeScale: 1.0,
		planetAcc: make([]geom.Vec2, len(cfg.Planets)),
	}

	s.sun = Body{
		Mass:            cfg.SunMass,
		Radius:          cfg.SunRadius,
		CollisionRadius: cfg.SunRadius,
	}

	s.planets = make([]Body, len(cfg.Planets))
	for i, p := range cfg.Planets {
		s.planets[i] = Body{
			Pos:             geom.Vec2{X: p.OrbitRadius},
			Vel:             geom.Vec2{Y: p.InitialVelocity},
			Mass:            p.Mass,
			Radius:          p.Radius,
			CollisionRadius: p.CollisionRadius,
		}
	}

	s.insertRocket()
	s.prev.capture(s.planets, &s.rocket)
	return s, nil
}

// insertRocket places the rocket on a circular orbit around the home
// (first) planet, facing along its velocity.
func (s *Simulation) insertRocket() {
	home := s.planets[0]
	pos, vel := physics.OrbitalInsertion(home.Pos, home.Vel, home.Mass, s.cfg.G, s.cfg.OrbitRadius, 0)

	s.rocket = Rocket{
		Body: Body{
			Pos:             pos,
			Vel:             vel,
			Mass:            s.cfg.RocketMass,
			Radius:          s.cfg.RocketRadius,
			CollisionRadius: s.cfg.RocketRadius,
		},
		Angle: vel.Sub(home.Vel).Angle(),
		State: Flying,
	}
}

func (s *Simulation) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// SetTimeScale sets the simulation speed multiplier. Zero pauses;
// negative values are treated as zero.
func (s *Simulation) SetTimeScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	s.timeScale = scale
}

func (s *Simulation) TimeScale() float64 { return s.timeScale }

// Respawn restores the rocket to its orbital insertion around the home
// planet's current position. No-op unless the rocket is Destroyed.
func (s *Simulation) Respawn() {
	if s.rocket.State != Destroyed {
		return
	}
	s.insertRocket()
	s.prev.capture(s.planets, &s.rocket)
}

// Rocket returns a copy of the rocket's uninterpolated state.
func (s *Simulation) Rocket() Rocket { return s.rocket }

// Planets returns copies of the planets' uninterpolated state.
func (s *Simulation) Planets() []Body {
	out := make([]Body, len(s.planets))
	copy(out, s.planets)
	return out
}

// Elapsed returns total simulated time in seconds.
func (s *Simulation) Elapsed() float64 { return s.elapsed }

// Advance runs one rendered frame: steering with real (clamped) frame
// time, zero or more fixed physics steps, then an interpolated render
// snapshot at the scheduler's alpha.
func (s *Simulation) Advance(frameDelta float64, input Input) RenderState {
	realDT := frameDelta
	if realDT < 0 {
		realDT = 0
	}
	if realDT > s.cfg.MaxFrameTime {
		realDT = s.cfg.MaxFrameTime
	}

	// Steering runs on real frame time, outside the fixed-step loop.
	// Left turns counter-clockwise (positive angle).
	if s.rocket.State != Destroyed {
		if input.RotateLeft {
			s.rocket.Angle += s.cfg.RotationSpeed * realDT
		}
		if input.RotateRight {
			s.rocket.Angle -= s.cfg.RotationSpeed * realDT
		}
		s.rocket.Angle = geom.WrapAngle(s.rocket.Angle)
	}
	s.rocket.Thrusting = input.Thrust && s.rocket.State != Destroyed

	s.sched.Advance(frameDelta, s.timeScale, s.step)

	return s.renderState(s.sched.Alpha())
}

// step runs exactly one fixed timestep: snapshot, forces from pre-step
// positions, integration, then collision and landing resolution.
func (s *Simulation) step() {
	dt := s.cfg.FixedDT
	s.prev.capture(s.planets, &s.rocket)

	// All accelerations come from pre-step positions; no body may see
	// another body's already-advanced state within the same step.
	for i := range s.planets {
		s.planetAcc[i] = physics.Acceleration(s.planets[i].Pos, s.sun.Pos, s.sun.Mass, s.cfg.G, s.cfg.MinDistance)
	}

	var rocketAcc geom.Vec2
	if s.rocket.State == Flying {
		rocketAcc = physics.Acceleration(s.rocket.Pos, s.sun.Pos, s.sun.Mass, s.cfg.G, s.cfg.MinDistance)
		for i := range s.planets {
			rocketAcc = rocketAcc.Add(physics.Acceleration(s.rocket.Pos, s.planets[i].Pos, s.planets[i].Mass, s.cfg.G, s.cfg.MinDistance))
		}
		if s.rocket.Thrusting {
			rocketAcc = rocketAcc.Add(geom.FromAngle(s.rocket.Angle).Scale(s.cfg.Thrust / s.cfg.RocketMass))
		}
	}

	for i := range s.planets {
		s.planets[i].Pos, s.planets[i].Vel = physics.Step(s.planets[i].Pos, s.planets[i].Vel, s.planetAcc[i], dt)
	}

	switch s.rocket.State {
	case Flying:
		s.rocket.Pos, s.rocket.Vel = physics.Step(s.rocket.Pos, s.rocket.Vel, rocketAcc, dt)
		s.resolveCollisions()
	case Landed:
		s.followLandedPlanet()
		if s.rocket.Thrusting {
			// Liftoff: one step of thrust on the velocity; gravity
			// takes over next step.
			s.rocket.State = Flying
			kick := geom.FromAngle(s.rocket.Angle).Scale(s.cfg.Thrust / s.cfg.RocketMass * dt)
			s.rocket.Vel = s.rocket.Vel.Add(kick)
		}
	case Destroyed:
		// Excluded from physics until respawn.
	}

	s.elapsed += dt

	for _, o := range s.observers {
		o.OnStep(s.elapsed, s.rocket, s.planets)
	}
}

// resolveCollisions applies the end-of-step contact rules. The sun is
// checked first and is always fatal, even if a planet overlaps in the
// same step. Planets are then checked in list order; the first contact
// either lands or destroys the rocket and ends the scan.
func (s *Simulation) resolveCollisions() {
	if s.rocket.Pos.Dist(s.sun.Pos) < s.rocket.CollisionRadius+s.sun.CollisionRadius {
		s.rocket.State = Destroyed
		return
	}

	for i := range s.planets {
		p := &s.planets[i]
		if s.rocket.Pos.Dist(p.Pos) >= s.rocket.CollisionRadius+p.CollisionRadius {
			continue
		}

		relSpeed := s.rocket.Vel.Sub(p.Vel).Len()
		if relSpeed < s.cfg.LandingSpeed {
			s.rocket.State = Landed
			s.rocket.LandedPlanet = i
			s.rocket.LandingAngle = math.Atan2(s.rocket.Pos.Y-p.Pos.Y, s.rocket.Pos.X-p.Pos.X)
			s.rocket.Vel = p.Vel
			s.followLandedPlanet()
		} else {
			s.rocket.State = Destroyed
		}
		return
	}
}

// followLandedPlanet pins the rocket to the surface of its landed
// planet: co-moving, not independently integrated.
func (s *Simulation) followLandedPlanet() {
	p := &s.planets[s.rocket.LandedPlanet]
	offset := p.Radius + s.rocket.CollisionRadius
	s.rocket.Pos = p.Pos.Add(geom.FromAngle(s.rocket.LandingAngle).Scale(offset))
	s.rocket.Vel = p.Vel
}

func (s *Simulation) renderState(alpha float64) RenderState {
	rs := RenderState{
		Sun:     s.sun.Pos,
		Planets: make([]geom.Vec2, len(s.planets)),
		Time:    s.elapsed,
	}
	for i := range s.planets {
		rs.Planets[i] = s.prev.planets[i].Lerp(s.planets[i].Pos, alpha)
	}

	rs.Rocket = RocketRender{
		Pos:       s.prev.rocketPos.Lerp(s.rocket.Pos, alpha),
		Angle:     geom.LerpAngle(s.prev.rocketAngle, s.rocket.Angle, alpha),
		Alive:     s.rocket.State != Destroyed,
		Landed:    s.rocket.State == Landed,
		Thrusting: s.rocket.Thrusting && s.rocket.State != Destroyed,
		Speed:     s.rocket.Vel.Len(),
	}
	return rs
}
