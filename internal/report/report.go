// Package report formats energies and inputs for display.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

type Formatter struct {
	Precision int
}

func New(precision int) Formatter {
	if precision < 0 {
		precision = 0
	}
	return Formatter{Precision: precision}
}

// Joules formats v as "<v> J" with the configured number of decimals.
func (f Formatter) Joules(v float64) string {
	return strconv.FormatFloat(v, 'f', f.Precision, 64) + " J"
}

// KiloJoules uses one decimal more than Joules.
func (f Formatter) KiloJoules(v float64) string {
	return strconv.FormatFloat(v/1000, 'f', f.Precision+1, 64) + " kJ"
}

func (f Formatter) Fixed(v float64) string {
	return strconv.FormatFloat(v, 'f', f.Precision, 64)
}

// Input formats a user-supplied quantity with the shortest exact representation.
func Input(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Grouped formats v rounded to an integer with comma thousands separators.
func Grouped(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

// Exact formats v the way a plain float is echoed: shortest digits, and a
// trailing ".0" when v is whole.
func Exact(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if a := math.Abs(v); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Line renders "label = value" as used by every text surface.
func Line(label, value string) string {
	return fmt.Sprintf("%s = %s", label, value)
}
