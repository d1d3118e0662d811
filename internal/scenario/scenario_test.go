package scenario

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/energycalc/internal/energy"
	"github.com/san-kum/energycalc/internal/report"
)

func TestExamplesEvaluate(t *testing.T) {
	f := report.New(2)
	examples := Examples()
	if len(examples) != 6 {
		t.Fatalf("expected 6 examples, got %d", len(examples))
	}
	for _, ex := range examples {
		lines, err := ex.Lines(f)
		if err != nil {
			t.Errorf("%s: %v", ex.Title, err)
		}
		if len(lines) == 0 {
			t.Errorf("%s: no output", ex.Title)
		}
	}
}

func TestRenderAll(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderAll(&buf, report.New(2)); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"1. KINETIC ENERGY EXAMPLE",
		"Kinetic Energy = 250.0 J",
		"Kinetic Energy = 64.0 J",
		"Potential Energy = 4905.00 J",
		"Gravity: 1.62 m/s² (Moon)",
		"Potential Energy = 810.00 J",
		"Total Mechanical Energy = 260.20 J",
		"Final Velocity = 19.81 m/s",
		"Initial Total = 196.20 J",
		"Final Total = 196.20 J",
		"Velocity: 25 m/s (90 km/h)",
		"Kinetic Energy = 468,750 J (468.8 kJ)",
		"Potential Energy = 1,471,500 J (1471.5 kJ)",
		"All calculations use SI units",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderAllEchoesExactKinetic(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderAll(&buf, report.New(0)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Kinetic Energy = 250.0 J") {
		t.Error("kinetic example should not depend on precision")
	}
	if !strings.Contains(out, "Potential Energy = 4905 J") {
		t.Error("potential example should follow precision")
	}
}

func TestFallProfileConserves(t *testing.T) {
	p, err := FallProfile(1, 20, energy.StandardGravity, 41)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}

	if len(p.Drop) != 41 || len(p.Total) != 41 {
		t.Fatalf("unexpected sample count %d", len(p.Drop))
	}
	if p.Kinetic[0] != 0 {
		t.Errorf("expected zero kinetic energy at release, got %f", p.Kinetic[0])
	}
	if p.Potential[40] != 0 {
		t.Errorf("expected zero potential energy at ground, got %f", p.Potential[40])
	}
	if math.Abs(p.Kinetic[40]-196.2) > 1e-9 {
		t.Errorf("expected 196.2 J at impact, got %f", p.Kinetic[40])
	}
	for i := 1; i < len(p.Potential); i++ {
		if p.Potential[i] > p.Potential[i-1] {
			t.Errorf("potential energy increased at sample %d", i)
		}
	}
	if d := p.MaxDrift(); d > 1e-12 {
		t.Errorf("expected no drift, got %e", d)
	}
}

func TestFallProfileErrors(t *testing.T) {
	if _, err := FallProfile(1, 10, 9.81, 1); err == nil {
		t.Error("expected error for too few samples")
	}

	_, err := FallProfile(-1, 10, 9.81, 10)
	if !errors.Is(err, energy.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}

	_, err = FallProfile(1, 10, -9.81, 10)
	if !errors.Is(err, energy.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestMaxDriftEmpty(t *testing.T) {
	p := &Profile{}
	if p.MaxDrift() != 0 {
		t.Error("expected zero drift for empty profile")
	}
}
