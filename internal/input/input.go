// Package input parses numeric text typed by a user.
package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformed is wrapped when text is not a finite decimal number.
var ErrMalformed = errors.New("could not convert input to a number")

// Float parses s as a finite float64. Surrounding whitespace is ignored.
func Float(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrMalformed)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	return v, nil
}

// FloatOr is Float with def returned for blank input.
func FloatOr(s string, def float64) (float64, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return Float(s)
}

// Field is a labelled piece of text awaiting conversion.
type Field struct {
	Name string
	Text string
}

// Floats parses every field in order and stops at the first failure.
func Floats(fields ...Field) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := Float(f.Text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name, err)
		}
		out[i] = v
	}
	return out, nil
}
