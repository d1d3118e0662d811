// Package menu implements the line-based calculator loop.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/san-kum/energycalc/internal/config"
	"github.com/san-kum/energycalc/internal/energy"
	"github.com/san-kum/energycalc/internal/input"
	"github.com/san-kum/energycalc/internal/report"
)

// errClosed ends the loop when input runs out mid-prompt.
var errClosed = errors.New("menu: input closed")

type Menu struct {
	scanner *bufio.Scanner
	out     io.Writer
	gravity float64
	format  report.Formatter
	log     zerolog.Logger
}

func New(in io.Reader, out io.Writer, cfg *config.Config, logger zerolog.Logger) *Menu {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Menu{
		scanner: bufio.NewScanner(in),
		out:     out,
		gravity: cfg.Gravity,
		format:  report.New(cfg.Precision),
		log:     logger.With().Str("component", "menu").Logger(),
	}
}

// Run shows the menu until the user exits, input ends or ctx is done.
// Calculation errors are printed and never end the loop.
func (m *Menu) Run(ctx context.Context) error {
	m.banner()

	for {
		if err := ctx.Err(); err != nil {
			m.println("\nGoodbye!")
			return nil
		}

		m.printMenu()
		choice, err := m.prompt("\nEnter your choice (1-4): ")
		if err != nil {
			return m.closed(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = m.kinetic()
		case "2":
			err = m.potential()
		case "3":
			err = m.total()
		case "4":
			m.println("\nGoodbye!")
			return nil
		default:
			m.println("Invalid choice. Please try again.")
			continue
		}

		if errors.Is(err, errClosed) {
			return m.closed(err)
		}
		if err != nil {
			m.log.Debug().Err(err).Str("choice", choice).Msg("calculation rejected")
			m.printf("Error: %v\n", err)
		}
	}
}

func (m *Menu) banner() {
	rule := strings.Repeat("=", 50)
	m.println("\n" + rule)
	m.println("Energy Calculator - SI Units")
	m.println(rule)
}

func (m *Menu) printMenu() {
	m.println("\nSelect calculation:")
	m.println("1. Kinetic Energy (KE = 0.5 * m * v²)")
	m.println("2. Potential Energy (PE = m * g * h)")
	m.println("3. Total Mechanical Energy (KE + PE)")
	m.println("4. Exit")
}

func (m *Menu) kinetic() error {
	mass, err := m.number("Enter mass (kg): ")
	if err != nil {
		return err
	}
	velocity, err := m.number("Enter velocity (m/s): ")
	if err != nil {
		return err
	}
	ke, err := energy.Kinetic(mass, velocity)
	if err != nil {
		return err
	}
	m.println("\n" + report.Line("Kinetic Energy", m.format.Joules(ke)))
	return nil
}

func (m *Menu) potential() error {
	mass, err := m.number("Enter mass (kg): ")
	if err != nil {
		return err
	}
	height, err := m.number("Enter height (m): ")
	if err != nil {
		return err
	}
	gravity, err := m.gravityValue()
	if err != nil {
		return err
	}
	pe, err := energy.Potential(mass, height, gravity)
	if err != nil {
		return err
	}
	m.println("\n" + report.Line("Potential Energy", m.format.Joules(pe)))
	return nil
}

func (m *Menu) total() error {
	mass, err := m.number("Enter mass (kg): ")
	if err != nil {
		return err
	}
	velocity, err := m.number("Enter velocity (m/s): ")
	if err != nil {
		return err
	}
	height, err := m.number("Enter height (m): ")
	if err != nil {
		return err
	}
	gravity, err := m.gravityValue()
	if err != nil {
		return err
	}
	b, err := energy.Mechanical(mass, velocity, height, gravity)
	if err != nil {
		return err
	}
	m.println("\n" + report.Line("Kinetic Energy", m.format.Joules(b.Kinetic)))
	m.println(report.Line("Potential Energy", m.format.Joules(b.Potential)))
	m.println(report.Line("Total Mechanical Energy", m.format.Joules(b.Total)))
	return nil
}

func (m *Menu) number(label string) (float64, error) {
	text, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	return input.Float(text)
}

func (m *Menu) gravityValue() (float64, error) {
	label := fmt.Sprintf("Enter gravitational acceleration (m/s²) [default: %s]: ", report.Input(m.gravity))
	text, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	return input.FloatOr(text, m.gravity)
}

func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.scanner.Scan() {
		if err := m.scanner.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", errClosed, err)
		}
		return "", errClosed
	}
	return m.scanner.Text(), nil
}

// closed treats plain end of input as a normal exit and returns read failures.
func (m *Menu) closed(err error) error {
	m.println("")
	if err == errClosed {
		return nil
	}
	return err
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
