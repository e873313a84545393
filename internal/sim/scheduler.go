package sim

// Scheduler converts variable frame time into whole fixed simulation
// steps, carrying the unconsumed remainder across frames.
type Scheduler struct {
	fixedDT      float64
	maxSteps     int
	maxFrameTime float64
	remainder    float64
}

func NewScheduler(fixedDT float64, maxSteps int, maxFrameTime float64) *Scheduler {
	return &Scheduler{
		fixedDT:      fixedDT,
		maxSteps:     maxSteps,
		maxFrameTime: maxFrameTime,
	}
}

// Advance accumulates the scaled frame delta and runs step once per
// whole fixed timestep, at most maxSteps times. When the cap is hit
// the backlog is dropped rather than carried, so a stall never turns
// into a catch-up spiral. Returns the number of steps executed.
func (s *Scheduler) Advance(frameDelta, timeScale float64, step func()) int {
	if frameDelta < 0 {
		frameDelta = 0
	}
	if frameDelta > s.maxFrameTime {
		frameDelta = s.maxFrameTime
	}
	if timeScale < 0 {
		timeScale = 0
	}

	s.remainder += frameDelta * timeScale

	steps := 0
	for s.remainder >= s.fixedDT && steps < s.maxSteps {
		s.remainder -= s.fixedDT
		step()
		steps++
	}
	if s.remainder >= s.fixedDT {
		s.remainder = 0
	}
	return steps
}

// Alpha is the fractional progress toward the next fixed step, in
// [0,1). Used only to interpolate rendered output.
func (s *Scheduler) Alpha() float64 {
	return s.remainder / s.fixedDT
}

// Remainder returns the accumulated simulation time not yet consumed
// by a fixed step.
func (s *Scheduler) Remainder() float64 {
	return s.remainder
}
