package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00cccc"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	// Formula lines under a title
	Formula = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888899")).
		Italic(true)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(1, 2)

	TabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#005f87")).
			Padding(0, 1)

	TabInactive = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555566")).
			Padding(0, 1)

	FieldLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	FieldLabelFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffffff"))

	FieldValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	Cursor = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Result = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#00aa66")).
		Foreground(lipgloss.Color("#00ff88")).
		Padding(0, 1)

	// Blocking error dialog
	Dialog = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("#ff4444")).
		Padding(1, 3)

	DialogTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))

	Key = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00aaaa"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#555566"))
)

// Hints renders "key action" pairs as a help line.
func Hints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(Key.Render(pairs[i]))
		b.WriteString(KeyHint.Render(" " + pairs[i+1]))
	}
	return b.String()
}

// Separator returns a decorated rule of the given width.
func Separator(width int) string {
	if width < 8 {
		return Subtle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return Subtle.Render(left + " ◆ " + right)
}

// Heading renders a title with a plain underline, for non-interactive output.
func Heading(title string) string {
	return Title.Render(title) + "\n" + Subtle.Render(strings.Repeat("─", lipgloss.Width(title)))
}
