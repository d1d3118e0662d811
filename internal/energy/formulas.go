package energy

import "math"

// StandardGravity is the default gravitational acceleration in m/s^2.
const StandardGravity = 9.81

// Breakdown holds both energy terms of a body and their sum, in joules.
type Breakdown struct {
	Kinetic   float64 `json:"kinetic"`
	Potential float64 `json:"potential"`
	Total     float64 `json:"total"`
}

// Kinetic returns 0.5 * mass * velocity^2 in joules.
func Kinetic(mass, velocity float64) (float64, error) {
	if err := nonNegative(Mass, mass); err != nil {
		return 0, err
	}
	if err := nonNegative(Velocity, velocity); err != nil {
		return 0, err
	}
	// v^2 is squared before scaling so rounding matches 0.5*m*(v*v).
	return 0.5 * mass * (velocity * velocity), nil
}

// Potential returns the gravitational potential energy mass * gravity * height
// in joules. Inputs are validated in the order mass, height, gravity.
func Potential(mass, height, gravity float64) (float64, error) {
	if err := nonNegative(Mass, mass); err != nil {
		return 0, err
	}
	if err := nonNegative(Height, height); err != nil {
		return 0, err
	}
	if err := nonNegative(Gravity, gravity); err != nil {
		return 0, err
	}
	return mass * gravity * height, nil
}

// StandardPotential is Potential at StandardGravity.
func StandardPotential(mass, height float64) (float64, error) {
	return Potential(mass, height, StandardGravity)
}

// Total returns the total mechanical energy. The kinetic term is validated
// before the potential term.
func Total(mass, velocity, height, gravity float64) (float64, error) {
	ke, err := Kinetic(mass, velocity)
	if err != nil {
		return 0, err
	}
	pe, err := Potential(mass, height, gravity)
	if err != nil {
		return 0, err
	}
	return ke + pe, nil
}

// StandardTotal is Total at StandardGravity.
func StandardTotal(mass, velocity, height float64) (float64, error) {
	return Total(mass, velocity, height, StandardGravity)
}

// Mechanical is Total with both terms kept.
func Mechanical(mass, velocity, height, gravity float64) (Breakdown, error) {
	ke, err := Kinetic(mass, velocity)
	if err != nil {
		return Breakdown{}, err
	}
	pe, err := Potential(mass, height, gravity)
	if err != nil {
		return Breakdown{}, err
	}
	return Breakdown{Kinetic: ke, Potential: pe, Total: ke + pe}, nil
}

// ImpactSpeed returns sqrt(2 * gravity * height), the ground speed of a
// body released from rest at height when no energy is lost.
func ImpactSpeed(height, gravity float64) (float64, error) {
	if err := nonNegative(Height, height); err != nil {
		return 0, err
	}
	if err := nonNegative(Gravity, gravity); err != nil {
		return 0, err
	}
	return math.Sqrt(2 * gravity * height), nil
}
