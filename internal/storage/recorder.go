package storage

import "github.com/nvoss/sundiver/internal/sim"

// Recorder collects per-step telemetry from a running simulation.
// It implements sim.Observer: attach it before advancing frames.
type Recorder struct {
	numPlanets int
	times      []float64
	rows       [][]float64
}

func NewRecorder(numPlanets int) *Recorder {
	return &Recorder{numPlanets: numPlanets}
}

// Header returns the CSV column names matching each recorded row.
func (r *Recorder) Header() []string {
	header := []string{"time", "rocket_x", "rocket_y", "rocket_vx", "rocket_vy", "angle", "state"}
	for i := 0; i < r.numPlanets; i++ {
		header = append(header,
			planetCol(i, "x"), planetCol(i, "y"))
	}
	return header
}

func (r *Recorder) OnStep(t float64, rocket sim.Rocket, planets []sim.Body) {
	row := make([]float64, 0, 7+2*r.numPlanets)
	row = append(row,
		t,
		rocket.Pos.X, rocket.Pos.Y,
		rocket.Vel.X, rocket.Vel.Y,
		rocket.Angle,
		float64(rocket.State),
	)
	for i := 0; i < r.numPlanets && i < len(planets); i++ {
		row = append(row, planets[i].Pos.X, planets[i].Pos.Y)
	}
	r.times = append(r.times, t)
	r.rows = append(r.rows, row)
}

func (r *Recorder) Times() []float64  { return r.times }
func (r *Recorder) Rows() [][]float64 { return r.rows }
func (r *Recorder) Len() int          { return len(r.rows) }
