// Package tui is the playable terminal front end. It drives the
// simulation from a bubbletea tick loop, translating held keys into
// input intents and rendering the interpolated state on a Braille
// canvas. It is a read-only consumer of RenderState; all mutation
// goes through the simulation's intent API.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nvoss/sundiver/internal/level"
	"github.com/nvoss/sundiver/internal/sim"
	"github.com/nvoss/sundiver/internal/viz"
)

const (
	frameInterval = 16 * time.Millisecond

	// Terminals report key repeats, not releases. An intent stays
	// active this long after its last press so the repeat-delay gap
	// does not read as letting go of the key.
	keyHold = 150 * time.Millisecond
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	simulation *sim.Simulation
	levelName  string
	canvas     *viz.Canvas

	width  int
	height int

	lastFrame time.Time
	paused    bool
	timeScale float64

	rotateLeftUntil  time.Time
	rotateRightUntil time.Time
	thrustUntil      time.Time

	rs sim.RenderState

	// World radius mapped onto the canvas, plus cached body sizes.
	worldRadius float64
	sunRadius   float64
	planetRadii []float64
}

func newModel(levelName string, s *sim.Simulation, cfg *level.Config) model {
	worldRadius := 0.0
	planetRadii := make([]float64, len(cfg.Planets))
	for i, p := range cfg.Planets {
		worldRadius = math.Max(worldRadius, p.OrbitRadius)
		planetRadii[i] = p.Radius
	}
	worldRadius *= 1.2

	return model{
		simulation:  s,
		levelName:   levelName,
		canvas:      viz.NewCanvas(76, 22),
		width:       80,
		height:      24,
		timeScale:   1.0,
		worldRadius: worldRadius,
		sunRadius:   cfg.SunRadius,
		planetRadii: planetRadii,
		rs:          s.Advance(0, sim.Input{}),
	}
}

// Run starts the game on the given level and blocks until quit.
func Run(cfg *level.Config) error {
	s, err := sim.New(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newModel(cfg.Name, s, cfg), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func (m model) Init() tea.Cmd { return tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := max(20, msg.Width-4)
		h := max(10, msg.Height-7)
		m.canvas = viz.NewCanvas(w, h)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		now := time.Time(msg)
		dt := frameInterval.Seconds()
		if !m.lastFrame.IsZero() {
			dt = now.Sub(m.lastFrame).Seconds()
		}
		m.lastFrame = now

		input := sim.Input{
			RotateLeft:  now.Before(m.rotateLeftUntil),
			RotateRight: now.Before(m.rotateRightUntil),
			Thrust:      now.Before(m.thrustUntil),
		}
		m.rs = m.simulation.Advance(dt, input)
		return m, tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "a", "h":
		m.rotateLeftUntil = now.Add(keyHold)
	case "right", "d", "l":
		m.rotateRightUntil = now.Add(keyHold)
	case "up", "w", "k", " ":
		m.thrustUntil = now.Add(keyHold)
	case "r":
		m.simulation.Respawn()
	case "p":
		m.paused = !m.paused
		if m.paused {
			m.simulation.SetTimeScale(0)
		} else {
			m.simulation.SetTimeScale(m.timeScale)
		}
	case "+", "=":
		m.timeScale = math.Min(m.timeScale*2, 16)
		if !m.paused {
			m.simulation.SetTimeScale(m.timeScale)
		}
	case "-", "_":
		m.timeScale = math.Max(m.timeScale/2, 0.25)
		if !m.paused {
			m.simulation.SetTimeScale(m.timeScale)
		}
	case "0":
		m.timeScale = 1.0
		if !m.paused {
			m.simulation.SetTimeScale(m.timeScale)
		}
	}
	return m, nil
}

// toScreen maps world coordinates to sub-pixel canvas coordinates,
// world origin at the center, y up.
func (m model) toScreen(x, y float64) (int, int) {
	w := float64(m.canvas.Width * 2)
	h := float64(m.canvas.Height * 4)
	scale := math.Min(w, h) / (2 * m.worldRadius)
	sx := w/2 + x*scale
	sy := h/2 - y*scale
	return int(math.Round(sx)), int(math.Round(sy))
}

func (m model) worldScale() float64 {
	w := float64(m.canvas.Width * 2)
	h := float64(m.canvas.Height * 4)
	return math.Min(w, h) / (2 * m.worldRadius)
}

func (m model) View() string {
	m.canvas.Clear()
	scale := m.worldScale()

	sx, sy := m.toScreen(m.rs.Sun.X, m.rs.Sun.Y)
	m.canvas.FillCircle(sx, sy, max(2, int(m.sunRadius*scale)))

	for i, p := range m.rs.Planets {
		px, py := m.toScreen(p.X, p.Y)
		r := max(1, int(m.planetRadii[i]*scale))
		m.canvas.FillCircle(px, py, r)
		// Faint orbit ring.
		m.canvas.DrawCircle(sx, sy, int(p.Sub(m.rs.Sun).Len()*scale))
	}

	m.drawRocket()

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(viz.PanelStyle.Render(strings.TrimRight(m.canvas.String(), "\n")))
	b.WriteString("\n")
	b.WriteString(m.hud())
	return b.String()
}

func (m model) drawRocket() {
	r := m.rs.Rocket
	if !r.Alive {
		// Crash marker.
		cx, cy := m.toScreen(r.Pos.X, r.Pos.Y)
		m.canvas.DrawLine(cx-2, cy-2, cx+2, cy+2)
		m.canvas.DrawLine(cx-2, cy+2, cx+2, cy-2)
		return
	}

	cx, cy := m.toScreen(r.Pos.X, r.Pos.Y)
	// Nose line along the facing angle; y flips on screen.
	nx := cx + int(math.Round(5*math.Cos(r.Angle)))
	ny := cy - int(math.Round(5*math.Sin(r.Angle)))
	m.canvas.DrawLine(cx, cy, nx, ny)

	if r.Thrusting {
		tx := cx - int(math.Round(4*math.Cos(r.Angle)))
		ty := cy + int(math.Round(4*math.Sin(r.Angle)))
		m.canvas.DrawLine(cx, cy, tx, ty)
	}
}

func (m model) header() string {
	title := viz.TitleStyle.Render("sundiver")
	info := viz.MetricLabel.Render(fmt.Sprintf("level %s  t=%.1fs", m.levelName, m.rs.Time))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", info)
}

func (m model) hud() string {
	r := m.rs.Rocket

	var status string
	switch {
	case m.paused:
		status = viz.StatusPaused.Render("paused")
	case !r.Alive:
		status = viz.StatusDestroyed.Render("destroyed - press r")
	case r.Landed:
		status = viz.StatusLanded.Render("landed")
	default:
		status = viz.StatusFlying.Render("flying")
	}

	speed := fmt.Sprintf("%s %s", viz.MetricLabel.Render("speed"), viz.MetricValue.Render(fmt.Sprintf("%6.1f", r.Speed)))
	scale := fmt.Sprintf("%s %s", viz.MetricLabel.Render("speed×"), viz.MetricValue.Render(fmt.Sprintf("%.2g", m.timeScale)))
	hints := viz.KeyHint.Render("←/→ steer  ↑ thrust  r respawn  p pause  +/- time  q quit")

	return fmt.Sprintf("  %s   %s   %s\n  %s", status, speed, scale, hints)
}
