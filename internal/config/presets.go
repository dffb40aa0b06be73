package config

// solarBodies is the full generation table: the Sun plus eight planets by
// semi-major axis and a sparse asteroid belt. Masses are solar masses and
// roughly physical; display radii and colors are tuned for the canvas, not
// to scale.
func solarBodies() []BodySpec {
	return []BodySpec{
		{Name: "Sun", Kind: KindStar, Mass: 1.0, Color: "#FDB813", Radius: 5},
		{Name: "Mercury", Kind: KindPlanet, Mass: 1.66e-7, SemiMajorAxis: 0.387, Color: "#B5B5B5", Radius: 1},
		{Name: "Venus", Kind: KindPlanet, Mass: 2.45e-6, SemiMajorAxis: 0.723, Color: "#E8CDA2", Radius: 1.5},
		{Name: "Earth", Kind: KindPlanet, Mass: 3.00e-6, SemiMajorAxis: 1.0, Color: "#2E86AB", Radius: 1.6},
		{Name: "Mars", Kind: KindPlanet, Mass: 3.23e-7, SemiMajorAxis: 1.524, Color: "#C1440E", Radius: 1.2},
		{Name: "Belt", Kind: KindRing, Mass: 1e-12, SemiMajorAxis: 2.7, Spread: 0.45, Count: 120, Color: "#777777", Radius: 0.3},
		{Name: "Jupiter", Kind: KindPlanet, Mass: 9.55e-4, SemiMajorAxis: 5.204, Color: "#C88B3A", Radius: 3},
		{Name: "Saturn", Kind: KindPlanet, Mass: 2.86e-4, SemiMajorAxis: 9.583, Color: "#E3D9B0", Radius: 2.6, Ring: true},
		{Name: "Uranus", Kind: KindPlanet, Mass: 4.37e-5, SemiMajorAxis: 19.19, Color: "#7FDBDB", Radius: 2},
		{Name: "Neptune", Kind: KindPlanet, Mass: 5.15e-5, SemiMajorAxis: 30.07, Color: "#3F54BA", Radius: 2},
	}
}

var presets = map[string]func() *System{
	"full": func() *System {
		return &System{Name: "full", Bodies: solarBodies()}
	},
	"inner": func() *System {
		return &System{Name: "inner", Bodies: solarBodies()[:5]}
	},
	"belt": func() *System {
		return &System{
			Name: "belt",
			Bodies: []BodySpec{
				{Name: "Sun", Kind: KindStar, Mass: 1.0, Color: "#FDB813", Radius: 5},
				{Name: "Belt", Kind: KindRing, Mass: 1e-12, SemiMajorAxis: 2.7, Spread: 0.6, Count: 300, Color: "#999999", Radius: 0.3},
				{Name: "Jupiter", Kind: KindPlanet, Mass: 9.55e-4, SemiMajorAxis: 5.204, Color: "#C88B3A", Radius: 3},
			},
		}
	},
	"binary": func() *System {
		return &System{
			Name: "binary",
			Bodies: []BodySpec{
				{Name: "Alpha", Kind: KindStar, Mass: 1.0, Color: "#FDB813", Radius: 5},
				{Name: "Beta", Kind: KindPlanet, Mass: 0.6, SemiMajorAxis: 30, Color: "#F4A9A0", Radius: 4},
				{Name: "Hearth", Kind: KindPlanet, Mass: 3e-6, SemiMajorAxis: 1.2, Color: "#2E86AB", Radius: 1.6},
			},
		}
	},
}

// GetPreset returns a normalized copy of a named preset, or nil when the
// name is unknown.
func GetPreset(name string) *System {
	fn, ok := presets[name]
	if !ok {
		return nil
	}
	cfg := fn()
	cfg.Normalize()
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
