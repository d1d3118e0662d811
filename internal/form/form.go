// Package form holds the three calculator forms shared by the terminal and
// desktop interfaces: their fields and defaults, gravity presets, the edit
// buffer, and the text shown after a calculation.
//
// Unparsable field text fails with the form's Malformed message. Negative
// values fail with the message of the energy package error, so the dialog
// names the offending quantity.
package form

import (
	"fmt"
	"strings"

	"github.com/san-kum/energycalc/internal/config"
	"github.com/san-kum/energycalc/internal/energy"
	"github.com/san-kum/energycalc/internal/input"
	"github.com/san-kum/energycalc/internal/report"
)

// DialogTitle heads every rejected-input dialog.
const DialogTitle = "Input Error"

type Field struct {
	Label string
	Unit  string
	Name  energy.Quantity
	Text  string
}

type Form struct {
	Title     string
	Formula   string
	Fields    []Field
	Malformed string // dialog text for unparsable input
	Result    string

	compute func(vals []float64, f report.Formatter) (string, error)
}

// New returns the kinetic, potential and total forms seeded from cfg.
func New(cfg *config.Config) []*Form {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	fv := report.Input
	return []*Form{
		{
			Title:   "Kinetic Energy Calculator",
			Formula: "KE = ½ × m × v²",
			Fields: []Field{
				{Label: "Mass", Unit: "kg", Name: energy.Mass, Text: fv(cfg.Forms.Kinetic.Mass)},
				{Label: "Velocity", Unit: "m/s", Name: energy.Velocity, Text: fv(cfg.Forms.Kinetic.Velocity)},
			},
			Malformed: "Please enter valid numbers for mass and velocity.",
			compute:   kineticResult,
		},
		{
			Title:   "Potential Energy Calculator",
			Formula: "PE = m × g × h",
			Fields: []Field{
				{Label: "Mass", Unit: "kg", Name: energy.Mass, Text: fv(cfg.Forms.Potential.Mass)},
				{Label: "Height", Unit: "m", Name: energy.Height, Text: fv(cfg.Forms.Potential.Height)},
				{Label: "Gravity", Unit: "m/s²", Name: energy.Gravity, Text: fv(cfg.Forms.Potential.Gravity)},
			},
			Malformed: "Please enter valid numbers for all fields.",
			compute:   potentialResult,
		},
		{
			Title:   "Total Mechanical Energy",
			Formula: "E_total = KE + PE",
			Fields: []Field{
				{Label: "Mass", Unit: "kg", Name: energy.Mass, Text: fv(cfg.Forms.Total.Mass)},
				{Label: "Velocity", Unit: "m/s", Name: energy.Velocity, Text: fv(cfg.Forms.Total.Velocity)},
				{Label: "Height", Unit: "m", Name: energy.Height, Text: fv(cfg.Forms.Total.Height)},
				{Label: "Gravity", Unit: "m/s²", Name: energy.Gravity, Text: fv(cfg.Forms.Total.Gravity)},
			},
			Malformed: "Please enter valid numbers for all fields.",
			compute:   totalResult,
		},
	}
}

// GravityField is the index of the gravity field, or -1.
func (f *Form) GravityField() int {
	for i, fl := range f.Fields {
		if fl.Name == energy.Gravity {
			return i
		}
	}
	return -1
}

// ApplyPreset writes the gravity of the preset bound to key into the
// gravity field. It reports whether anything changed.
func (f *Form) ApplyPreset(key string) bool {
	idx := f.GravityField()
	if idx < 0 || key == "" {
		return false
	}
	for _, p := range config.Presets {
		if p.Key == key {
			f.Fields[idx].Text = report.Input(p.Gravity)
			return true
		}
	}
	return false
}

// Calculate parses every field and runs the form's formula. On failure the
// previous result is kept and the dialog message is returned.
func (f *Form) Calculate(fm report.Formatter) (string, bool) {
	in := make([]input.Field, len(f.Fields))
	for i, fl := range f.Fields {
		in[i] = input.Field{Name: string(fl.Name), Text: fl.Text}
	}
	vals, err := input.Floats(in...)
	if err != nil {
		return f.Malformed, false
	}
	res, err := f.compute(vals, fm)
	if err != nil {
		return err.Error(), false
	}
	f.Result = res
	return "", true
}

func kineticResult(v []float64, f report.Formatter) (string, error) {
	mass, velocity := v[0], v[1]
	ke, err := energy.Kinetic(mass, velocity)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Mass: %s kg\nVelocity: %s m/s\n\nKinetic Energy = %s\n               = %s",
		report.Input(mass), report.Input(velocity), f.Joules(ke), f.KiloJoules(ke)), nil
}

func potentialResult(v []float64, f report.Formatter) (string, error) {
	mass, height, gravity := v[0], v[1], v[2]
	pe, err := energy.Potential(mass, height, gravity)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Mass: %s kg\nHeight: %s m\nGravity: %s m/s²\n\nPotential Energy = %s\n                 = %s",
		report.Input(mass), report.Input(height), report.Input(gravity), f.Joules(pe), f.KiloJoules(pe)), nil
}

func totalResult(v []float64, f report.Formatter) (string, error) {
	mass, velocity, height, gravity := v[0], v[1], v[2], v[3]
	b, err := energy.Mechanical(mass, velocity, height, gravity)
	if err != nil {
		return "", err
	}
	var s strings.Builder
	fmt.Fprintf(&s, "Mass: %s kg\nVelocity: %s m/s\nHeight: %s m\nGravity: %s m/s²\n\n",
		report.Input(mass), report.Input(velocity), report.Input(height), report.Input(gravity))
	fmt.Fprintf(&s, "Kinetic Energy   = %s (%s)\n", f.Joules(b.Kinetic), f.KiloJoules(b.Kinetic))
	fmt.Fprintf(&s, "Potential Energy = %s (%s)\n", f.Joules(b.Potential), f.KiloJoules(b.Potential))
	fmt.Fprintf(&s, "\nTotal Mechanical Energy = %s (%s)", f.Joules(b.Total), f.KiloJoules(b.Total))
	return s.String(), nil
}
