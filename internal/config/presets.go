package config

import "strings"

// GravityPreset is a named surface gravity in m/s^2.
type GravityPreset struct {
	Name    string
	Label   string
	Gravity float64
	Key     string // tui shortcut, empty when the preset has none
}

// Presets are listed in display order.
var Presets = []GravityPreset{
	{Name: "earth", Label: "Earth", Gravity: 9.81, Key: "e"},
	{Name: "moon", Label: "Moon", Gravity: 1.62, Key: "m"},
	{Name: "mars", Label: "Mars", Gravity: 3.71, Key: "r"},
	{Name: "jupiter", Label: "Jupiter", Gravity: 24.79},
}

func GetPreset(name string) (GravityPreset, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range Presets {
		if p.Name == name {
			return p, true
		}
	}
	return GravityPreset{}, false
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for _, p := range Presets {
		names = append(names, p.Name)
	}
	return names
}
