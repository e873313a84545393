package level

// Presets are the built-in levels, keyed by name.
var Presets = map[string]*Config{
	"solo": Default(),
	"twin": {
		Name:             "twin",
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
			{Mass: 1500, Radius: 15, OrbitRadius: 260, CollisionRadius: 15},
			{Mass: 2200, Radius: 18, OrbitRadius: 430, CollisionRadius: 18},
		},
	},
	"grandtour": {
		Name:             "grandtour",
		G:                DefaultG,
		SunMass:          80000,
		SunRadius:        36,
		RocketMass:       1,
		RocketRadius:     2,
		Thrust:           70,
		RotationSpeed:    3.5,
		LandingSpeed:     10,
		FixedDT:          DefaultFixedDT,
		MaxStepsPerFrame: DefaultMaxStepsPerFrame,
		MaxFrameTime:     DefaultMaxFrameTime,
		MinDistance:      DefaultMinDistance,
		OrbitRadius:      40,
		Planets: []PlanetSpec{
			{Mass: 1200, Radius: 12, OrbitRadius: 240, CollisionRadius: 12},
			{Mass: 2600, Radius: 20, OrbitRadius: 420, CollisionRadius: 20},
			{Mass: 4000, Radius: 26, OrbitRadius: 640, CollisionRadius: 26},
		},
	},
}

func init() {
	for _, cfg := range Presets {
		cfg.FillOrbitalVelocities()
	}
}

// GetPreset returns the named level, or nil if it does not exist.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the available level names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
