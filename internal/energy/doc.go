// Package energy computes classical mechanical energies from scalar SI
// inputs.
//
// The package exposes closed-form formulas for a point mass:
//
//   - [Kinetic]: 0.5 * m * v^2
//   - [Potential]: m * g * h
//   - [Total]: Kinetic + Potential
//
// Every input must be non-negative. A negative mass, velocity, height or
// gravitational acceleration yields an [*ArgumentError] that wraps
// [ErrInvalidArgument]. Mass is always checked first, so a negative mass
// is reported even when another input is negative too.
//
// # Example
//
//	ke, err := energy.Kinetic(2, 3)          // 9 J
//	pe, err := energy.StandardPotential(10, 2) // 196.2 J at 9.81 m/s^2
//	b, err := energy.Mechanical(2, 3, 1, energy.StandardGravity)
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package energy
