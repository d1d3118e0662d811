// Package scenario holds worked energy examples and closed-form
// falling-body profiles built on the energy package.
package scenario

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/energycalc/internal/config"
	"github.com/san-kum/energycalc/internal/energy"
	"github.com/san-kum/energycalc/internal/report"
)

const ruleWidth = 60

// Example is a titled worked calculation.
type Example struct {
	Title string
	lines func(f report.Formatter) ([]string, error)
}

// Lines evaluates the example and returns its text without indentation.
func (e Example) Lines(f report.Formatter) ([]string, error) {
	return e.lines(f)
}

// Examples returns the worked examples in presentation order.
func Examples() []Example {
	return []Example{
		{Title: "KINETIC ENERGY EXAMPLE", lines: kineticExample},
		{Title: "POTENTIAL ENERGY EXAMPLE (Earth)", lines: potentialExample("earth", "")},
		{Title: "POTENTIAL ENERGY EXAMPLE (Moon)", lines: potentialExample("moon", "(Note: Moon has 1/6 of Earth's gravity)")},
		{Title: "TOTAL MECHANICAL ENERGY EXAMPLE", lines: totalExample},
		{Title: "FALLING BALL - ENERGY CONSERVATION", lines: fallingBallExample},
		{Title: "MOVING VEHICLE EXAMPLE", lines: vehicleExample},
	}
}

// RenderAll writes every example to w.
func RenderAll(w io.Writer, f report.Formatter) error {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "KINETIC AND POTENTIAL ENERGY CALCULATOR - EXAMPLES")
	fmt.Fprintln(w, rule)

	for i, ex := range Examples() {
		lines, err := ex.Lines(f)
		if err != nil {
			return fmt.Errorf("example %d (%s): %w", i+1, ex.Title, err)
		}
		fmt.Fprintf(w, "\n%d. %s\n", i+1, ex.Title)
		fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
		for _, l := range lines {
			if l == "" {
				fmt.Fprintln(w)
				continue
			}
			fmt.Fprintf(w, "   %s\n", l)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "All calculations use SI units (kg, m/s, m, J)")
	_, err := fmt.Fprintln(w, rule)
	return err
}

func kineticExample(_ report.Formatter) ([]string, error) {
	const mass, velocity = 5.0, 10.0
	ke, err := energy.Kinetic(mass, velocity)
	if err != nil {
		return nil, err
	}
	return []string{
		fmt.Sprintf("Mass: %s kg", report.Input(mass)),
		fmt.Sprintf("Velocity: %s m/s", report.Input(velocity)),
		fmt.Sprintf("Kinetic Energy = 0.5 × %s × %s²", report.Input(mass), report.Input(velocity)),
		report.Line("Kinetic Energy", report.Exact(ke)+" J"),
	}, nil
}

func potentialExample(preset, note string) func(report.Formatter) ([]string, error) {
	return func(f report.Formatter) ([]string, error) {
		const mass, height = 10.0, 50.0
		p, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown gravity preset %q", preset)
		}
		pe, err := energy.Potential(mass, height, p.Gravity)
		if err != nil {
			return nil, err
		}
		lines := []string{
			fmt.Sprintf("Mass: %s kg", report.Input(mass)),
			fmt.Sprintf("Height: %s m", report.Input(height)),
			fmt.Sprintf("Gravity: %s m/s² (%s)", report.Input(p.Gravity), p.Label),
			fmt.Sprintf("Potential Energy = %s × %s × %s", report.Input(mass), report.Input(p.Gravity), report.Input(height)),
			report.Line("Potential Energy", f.Joules(pe)),
		}
		if note != "" {
			lines = append(lines, note)
		}
		return lines, nil
	}
}

func totalExample(f report.Formatter) ([]string, error) {
	const mass, velocity, height = 2.0, 8.0, 10.0
	b, err := energy.Mechanical(mass, velocity, height, energy.StandardGravity)
	if err != nil {
		return nil, err
	}
	return []string{
		fmt.Sprintf("Mass: %s kg", report.Input(mass)),
		fmt.Sprintf("Velocity: %s m/s", report.Input(velocity)),
		fmt.Sprintf("Height: %s m", report.Input(height)),
		"",
		report.Line("Kinetic Energy", report.Exact(b.Kinetic)+" J"),
		report.Line("Potential Energy", f.Joules(b.Potential)),
		report.Line("Total Mechanical Energy", f.Joules(b.Total)),
	}, nil
}

func fallingBallExample(f report.Formatter) ([]string, error) {
	const mass, height = 1.0, 20.0
	g := energy.StandardGravity

	initial, err := energy.Mechanical(mass, 0, height, g)
	if err != nil {
		return nil, err
	}
	v, err := energy.ImpactSpeed(height, g)
	if err != nil {
		return nil, err
	}
	final, err := energy.Mechanical(mass, v, 0, g)
	if err != nil {
		return nil, err
	}

	return []string{
		fmt.Sprintf("Initial State (at height %sm):", report.Input(height)),
		"   " + report.Line("Potential Energy", f.Joules(initial.Potential)),
		"   " + report.Line("Kinetic Energy", f.Joules(initial.Kinetic)),
		"   " + report.Line("Total Energy", f.Joules(initial.Total)),
		"",
		"Final State (at ground level):",
		"   " + report.Line("Final Velocity", f.Fixed(v)+" m/s"),
		"   " + report.Line("Potential Energy", f.Joules(final.Potential)),
		"   " + report.Line("Kinetic Energy", f.Joules(final.Kinetic)),
		"   " + report.Line("Total Energy", f.Joules(final.Total)),
		"",
		"Energy Conservation Check:",
		"   " + report.Line("Initial Total", f.Joules(initial.Total)),
		"   " + report.Line("Final Total", f.Joules(final.Total)),
		"   ✓ Energy is conserved (within rounding error)",
	}, nil
}

func vehicleExample(f report.Formatter) ([]string, error) {
	const mass, velocity, height = 1500.0, 25.0, 100.0
	b, err := energy.Mechanical(mass, velocity, height, energy.StandardGravity)
	if err != nil {
		return nil, err
	}
	kj := func(v float64) string {
		return fmt.Sprintf("%s J (%.1f kJ)", report.Grouped(v), v/1000)
	}
	return []string{
		fmt.Sprintf("Vehicle: Car (mass = %s kg)", report.Input(mass)),
		fmt.Sprintf("Velocity: %s m/s (%.0f km/h)", report.Input(velocity), velocity*3.6),
		fmt.Sprintf("Height: %s m", report.Input(height)),
		"",
		report.Line("Kinetic Energy", kj(b.Kinetic)),
		report.Line("Potential Energy", kj(b.Potential)),
		report.Line("Total Mechanical Energy", kj(b.Total)),
	}, nil
}
