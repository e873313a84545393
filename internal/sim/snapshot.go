package sim

import "github.com/nvoss/sundiver/internal/geom"

// snapshot holds the pre-step pose of every dynamic body. Rendering
// interpolates between the snapshot and the current state so motion
// stays smooth between fixed steps.
type snapshot struct {
	planets     []geom.Vec2
	rocketPos   geom.Vec2
	rocketAngle float64
}

func (s *snapshot) capture(planets []Body, rocket *Rocket) {
	if len(s.planets) != len(planets) {
		s.planets = make([]geom.Vec2, len(planets))
	}
	for i := range planets {
		s.planets[i] = planets[i].Pos
	}
	s.rocketPos = rocket.Pos
	s.rocketAngle = rocket.Angle
}
