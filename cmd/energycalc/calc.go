package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/san-kum/energycalc/internal/config"
	"github.com/san-kum/energycalc/internal/energy"
	"github.com/san-kum/energycalc/internal/report"
	"github.com/san-kum/energycalc/internal/scenario"
	"github.com/san-kum/energycalc/internal/viz"
)

// calcResult is the --json form of a one-shot calculation.
type calcResult struct {
	Mass      float64  `json:"mass"`
	Velocity  *float64 `json:"velocity,omitempty"`
	Height    *float64 `json:"height,omitempty"`
	Gravity   *float64 `json:"gravity,omitempty"`
	Kinetic   *float64 `json:"kinetic,omitempty"`
	Potential *float64 `json:"potential,omitempty"`
	Total     *float64 `json:"total,omitempty"`
}

// resolveGravity picks --preset, then --gravity, then the configured default.
func resolveGravity(cmd *cobra.Command, cfg *config.Config) (float64, error) {
	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return 0, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return p.Gravity, nil
	}
	if cmd.Flags().Changed("gravity") {
		return gravity, nil
	}
	return cfg.Gravity, nil
}

func runKinetic(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ke, err := energy.Kinetic(mass, velocity)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, calcResult{Mass: mass, Velocity: &velocity, Kinetic: &ke})
	}
	fmt.Fprintln(out, report.Line("Kinetic Energy", report.New(cfg.Precision).Joules(ke)))
	return nil
}

func runPotential(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	g, err := resolveGravity(cmd, cfg)
	if err != nil {
		return err
	}
	pe, err := energy.Potential(mass, height, g)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, calcResult{Mass: mass, Height: &height, Gravity: &g, Potential: &pe})
	}
	fmt.Fprintln(out, report.Line("Potential Energy", report.New(cfg.Precision).Joules(pe)))
	return nil
}

func runTotal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	g, err := resolveGravity(cmd, cfg)
	if err != nil {
		return err
	}
	b, err := energy.Mechanical(mass, velocity, height, g)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, calcResult{
			Mass: mass, Velocity: &velocity, Height: &height, Gravity: &g,
			Kinetic: &b.Kinetic, Potential: &b.Potential, Total: &b.Total,
		})
	}
	f := report.New(cfg.Precision)
	fmt.Fprintln(out, report.Line("Kinetic Energy", f.Joules(b.Kinetic)))
	fmt.Fprintln(out, report.Line("Potential Energy", f.Joules(b.Potential)))
	fmt.Fprintln(out, report.Line("Total Mechanical Energy", f.Joules(b.Total)))
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	g, err := resolveGravity(cmd, cfg)
	if err != nil {
		return err
	}
	p, err := scenario.FallProfile(mass, height, g, samples)
	if err != nil {
		return err
	}
	v, err := energy.ImpactSpeed(height, g)
	if err != nil {
		return err
	}

	f := report.New(cfg.Precision)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Heading("Energy Exchange"))
	fmt.Fprintf(out, "%s kg dropped from %s m at g = %s m/s²\n\n", report.Input(mass), report.Input(height), report.Input(g))
	fmt.Fprintln(out, viz.ExchangeChart(p, width, rows))
	fmt.Fprintln(out)
	fmt.Fprintln(out, report.Line("Initial Total", f.Joules(p.Total[0])))
	fmt.Fprintln(out, report.Line("Impact Velocity", f.Fixed(v)+" m/s"))
	fmt.Fprintln(out, report.Line("Final Total", f.Joules(p.Total[len(p.Total)-1])))
	fmt.Fprintf(out, "max drift: %.2e\n", p.MaxDrift())
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
