package form

import (
	"fmt"
	"strings"

	"github.com/san-kum/energycalc/internal/config"
	"github.com/san-kum/energycalc/internal/energy"
	"github.com/san-kum/energycalc/internal/report"
)

// Info is the reference page: formulas, units, gravity presets and worked
// examples evaluated through the energy package.
func Info(f report.Formatter) string {
	var b strings.Builder
	section := func(name string) {
		fmt.Fprintf(&b, "\n%s\n%s\n", name, strings.Repeat("-", len(name)))
	}

	b.WriteString("ENERGY CALCULATOR - SI UNITS\n")

	section("FORMULAS:")
	b.WriteString("Kinetic Energy:     KE = ½ × m × v²\n")
	b.WriteString("Potential Energy:   PE = m × g × h\n")
	b.WriteString("Total Energy:       E_total = KE + PE\n")

	section("UNITS:")
	b.WriteString("Mass (m):           kilograms (kg)\n")
	b.WriteString("Velocity (v):       meters per second (m/s)\n")
	b.WriteString("Height (h):         meters (m)\n")
	b.WriteString("Gravity (g):        meters per second² (m/s²)\n")
	b.WriteString("Energy:             joules (J)\n")

	section("GRAVITY CONSTANTS:")
	for _, p := range config.Presets {
		fmt.Fprintf(&b, "%-20s%s m/s²\n", p.Label+":", report.Input(p.Gravity))
	}

	section("EXAMPLES:")
	if ke, err := energy.Kinetic(5, 10); err == nil {
		fmt.Fprintf(&b, "1. A 5 kg object moving at 10 m/s\n   KE = ½ × 5 × 10² = %s\n\n", f.Joules(ke))
	}
	if pe, err := energy.StandardPotential(10, 20); err == nil {
		fmt.Fprintf(&b, "2. A 10 kg object at 20 m height\n   PE = 10 × 9.81 × 20 = %s\n\n", f.Joules(pe))
	}
	if bd, err := energy.Mechanical(2, 8, 10, energy.StandardGravity); err == nil {
		fmt.Fprintf(&b, "3. A 2 kg object moving at 8 m/s at 10 m height\n")
		fmt.Fprintf(&b, "   KE = ½ × 2 × 8² = %s\n", f.Joules(bd.Kinetic))
		fmt.Fprintf(&b, "   PE = 2 × 9.81 × 10 = %s\n", f.Joules(bd.Potential))
		fmt.Fprintf(&b, "   Total = %s\n", f.Joules(bd.Total))
	}

	section("ENERGY CONSERVATION:")
	b.WriteString("When an object falls, potential energy\n")
	b.WriteString("converts to kinetic energy. The total\n")
	b.WriteString("mechanical energy remains constant (if\n")
	b.WriteString("we ignore air resistance).\n\n")
	if pe, err := energy.StandardPotential(1, 20); err == nil {
		v, _ := energy.ImpactSpeed(20, energy.StandardGravity)
		ke, _ := energy.Kinetic(1, v)
		fmt.Fprintf(&b, "Example: 1 kg ball dropped from 20 m\n")
		fmt.Fprintf(&b, "Initial: PE = %s, KE = %s\n", f.Joules(pe), f.Joules(0))
		fmt.Fprintf(&b, "Final:   PE = %s, KE = %s\n", f.Joules(0), f.Joules(ke))
		b.WriteString("Total energy is conserved!\n")
	}
	return b.String()
}
