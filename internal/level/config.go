package level

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nvoss/sundiver/internal/physics"
)

const (
	DefaultG                = 1.0
	DefaultFixedDT          = 1.0 / 120
	DefaultMaxStepsPerFrame = 10
	DefaultMaxFrameTime     = 0.05
	DefaultMinDistance      = 1.0
)

// PlanetSpec describes one planet orbiting the sun.
type PlanetSpec struct {
	Mass            float64 `yaml:"mass"`
	Radius          float64 `yaml:"radius"`
	OrbitRadius     float64 `yaml:"orbit_radius"`
	InitialVelocity float64 `yaml:"initial_velocity"`
	CollisionRadius float64 `yaml:"collision_radius"`
}

// Config is the immutable level description consumed by the simulation.
// It is read once at level start; the simulation never mutates it.
type Config struct {
	Name string `yaml:"name"`

	G         float64 `yaml:"g"`
	SunMass   float64 `yaml:"sun_mass"`
	SunRadius float64 `yaml:"sun_radius"`

	RocketMass    float64 `yaml:"rocket_mass"`
	RocketRadius  float64 `yaml:"rocket_radius"`
	Thrust        float64 `yaml:"thrust"`
	RotationSpeed float64 `yaml:"rotation_speed"`
	LandingSpeed  float64 `yaml:"landing_speed"`

	FixedDT          float64 `yaml:"fixed_dt"`
	MaxStepsPerFrame int     `yaml:"max_steps_per_frame"`
	MaxFrameTime     float64 `yaml:"max_frame_time"`
	MinDistance      float64 `yaml:"min_distance"`

	// OrbitRadius is the rocket's circular-orbit insertion radius
	// around the home (first) planet.
	OrbitRadius float64 `yaml:"orbit_radius"`

	Planets []PlanetSpec `yaml:"planets"`
}

// Default returns the standard single-planet level.
func Default() *Config {
	cfg := &Config{
		Name:             "solo",
		G:                DefaultG,
		SunMass:          50000,
		SunRadius:        30,
		RocketMass:       1,
		RocketRadius:     2,
		Thrust:           60,
		RotationSpeed:    3.5,
		LandingSpeed:     8,
		FixedDT:          DefaultFixedDT,
		MaxStepsPerFrame: DefaultMaxStepsPerFrame,
		MaxFrameTime:     DefaultMaxFrameTime,
		MinDistance:      DefaultMinDistance,
		OrbitRadius:      40,
		Planets: []PlanetSpec{
			{Mass: 1500, Radius: 15, OrbitRadius: 300, CollisionRadius: 15},
		},
	}
	cfg.FillOrbitalVelocities()
	return cfg
}

// FillOrbitalVelocities computes the circular-orbit tangential speed
// for every planet whose initial velocity is left at zero.
func (c *Config) FillOrbitalVelocities() {
	for i := range c.Planets {
		if c.Planets[i].InitialVelocity == 0 && c.Planets[i].OrbitRadius > 0 {
			c.Planets[i].InitialVelocity = physics.CircularOrbitSpeed(c.G, c.SunMass, c.Planets[i].OrbitRadius)
		}
	}
}

// Validate rejects configurations the simulation cannot be built from.
// Construction-time only; a valid Config is assumed thereafter.
func (c *Config) Validate() error {
	if c.G <= 0 {
		return fmt.Errorf("g must be positive, got %f", c.G)
	}
	if c.SunMass <= 0 {
		return fmt.Errorf("sun mass must be positive, got %f", c.SunMass)
	}
	if c.RocketMass <= 0 {
		return fmt.Errorf("rocket mass must be positive, got %f", c.RocketMass)
	}
	if c.FixedDT <= 0 {
		return fmt.Errorf("fixed timestep must be positive, got %f", c.FixedDT)
	}
	if c.MaxStepsPerFrame < 1 {
		return fmt.Errorf("max steps per frame must be at least 1, got %d", c.MaxStepsPerFrame)
	}
	if c.MaxFrameTime <= 0 {
		return fmt.Errorf("max frame time must be positive, got %f", c.MaxFrameTime)
	}
	if c.OrbitRadius <= 0 {
		return fmt.Errorf("rocket orbit radius must be positive, got %f", c.OrbitRadius)
	}
	if len(c.Planets) == 0 {
		return fmt.Errorf("level needs at least one planet")
	}
	for i, p := range c.Planets {
		if p.Mass <= 0 {
			return fmt.Errorf("planet %d: mass must be positive, got %f", i, p.Mass)
		}
		if p.OrbitRadius <= 0 {
			return fmt.Errorf("planet %d: orbit radius must be positive, got %f", i, p.OrbitRadius)
		}
		if p.Radius < 0 || p.CollisionRadius < 0 {
			return fmt.Errorf("planet %d: radii must be non-negative", i)
		}
	}
	return nil
}

// Load reads a level from a YAML file, starting from defaults so
// partial files stay playable.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.FillOrbitalVelocities()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes a level to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
