package scenario

import (
	"fmt"

	"github.com/san-kum/energycalc/internal/energy"
)

// Profile holds the energy terms of a body dropped from rest, sampled at
// evenly spaced fall distances from release to ground.
type Profile struct {
	Mass      float64
	Height    float64
	Gravity   float64
	Drop      []float64
	Kinetic   []float64
	Potential []float64
	Total     []float64
}

// FallProfile evaluates the closed-form energies at n points, n >= 2.
func FallProfile(mass, height, gravity float64, n int) (*Profile, error) {
	if n < 2 {
		return nil, fmt.Errorf("scenario: need at least 2 samples, got %d", n)
	}
	if _, err := energy.Potential(mass, height, gravity); err != nil {
		return nil, err
	}

	p := &Profile{
		Mass:      mass,
		Height:    height,
		Gravity:   gravity,
		Drop:      make([]float64, n),
		Kinetic:   make([]float64, n),
		Potential: make([]float64, n),
		Total:     make([]float64, n),
	}

	for i := 0; i < n; i++ {
		d := height * float64(i) / float64(n-1)
		// The last sample lands exactly on the ground.
		y := height - d
		if i == n-1 {
			y = 0
		}
		v, err := energy.ImpactSpeed(d, gravity)
		if err != nil {
			return nil, err
		}
		b, err := energy.Mechanical(mass, v, y, gravity)
		if err != nil {
			return nil, err
		}
		p.Drop[i] = d
		p.Kinetic[i] = b.Kinetic
		p.Potential[i] = b.Potential
		p.Total[i] = b.Total
	}
	return p, nil
}

// MaxDrift is the largest relative deviation of Total from its first sample.
func (p *Profile) MaxDrift() float64 {
	if len(p.Total) == 0 || p.Total[0] == 0 {
		return 0
	}
	ref := p.Total[0]
	drift := 0.0
	for _, e := range p.Total {
		d := (e - ref) / ref
		if d < 0 {
			d = -d
		}
		if d > drift {
			drift = d
		}
	}
	return drift
}
