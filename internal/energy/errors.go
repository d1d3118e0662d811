package energy

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every validation failure in this package.
var ErrInvalidArgument = errors.New("energy: invalid argument")

// Quantity names a physical input.
type Quantity string

const (
	Mass     Quantity = "mass"
	Velocity Quantity = "velocity"
	Height   Quantity = "height"
	Gravity  Quantity = "gravity"
)

// ArgumentError reports the first input that failed validation.
type ArgumentError struct {
	Quantity Quantity
	Value    float64
}

func (e *ArgumentError) Error() string {
	switch e.Quantity {
	case Mass:
		return "Mass cannot be negative"
	case Velocity:
		return "Velocity cannot be negative"
	case Height:
		return "Height cannot be negative"
	case Gravity:
		return "Gravitational acceleration cannot be negative"
	}
	return fmt.Sprintf("%s cannot be negative", e.Quantity)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func nonNegative(q Quantity, v float64) error {
	if v < 0 {
		return &ArgumentError{Quantity: q, Value: v}
	}
	return nil
}
