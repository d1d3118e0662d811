// Package viz renders terminal output: lipgloss styles shared by the
// interactive form and the CLI, and asciigraph charts of energy exchange.
package viz
