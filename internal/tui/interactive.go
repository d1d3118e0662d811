package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/energycalc/internal/config"
	"github.com/san-kum/energycalc/internal/form"
	"github.com/san-kum/energycalc/internal/report"
	"github.com/san-kum/energycalc/internal/viz"
)

const (
	tabKinetic = iota
	tabPotential
	tabTotal
	tabInfo
)

var tabNames = form.TabNames

type dialog struct {
	title string
	text  string
}

type model struct {
	tab     int
	cursor  int
	forms   []*form.Form
	editing bool
	edit    form.Editor
	dialog  *dialog
	format  report.Formatter
	info    string

	width, height int
}

func NewModel(cfg *config.Config) model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	f := report.New(cfg.Precision)
	return model{
		forms:  form.New(cfg),
		format: f,
		info:   form.Info(f),
		width:  80,
		height: 24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch {
	case m.dialog != nil:
		// The dialog blocks the form until dismissed.
		m.dialog = nil
		return m, nil
	case m.editing:
		return m.editKey(msg), nil
	}
	return m.navKey(msg)
}

func (m model) navKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab", "right", "l":
		m.tab, m.cursor = (m.tab+1)%len(tabNames), 0
	case "shift+tab", "left", "h":
		m.tab, m.cursor = (m.tab+len(tabNames)-1)%len(tabNames), 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if f := m.current(); f != nil && m.cursor < len(f.Fields)-1 {
			m.cursor++
		}
	case "enter", " ":
		if f := m.current(); f != nil {
			m.editing = true
			m.edit.Start(f.Fields[m.cursor].Text)
		}
	case "c":
		m.calculate()
	default:
		if f := m.current(); f != nil {
			f.ApplyPreset(msg.String())
		}
	}
	return m, nil
}

func (m model) editKey(msg tea.KeyMsg) model {
	f := m.current()
	switch msg.String() {
	case "enter":
		f.Fields[m.cursor].Text = m.edit.Commit()
		m.editing = false
	case "esc":
		m.edit.Commit()
		m.editing = false
	case "backspace":
		m.edit.Backspace()
	case "ctrl+u":
		m.edit.Clear()
	default:
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				m.edit.Insert(r)
			}
		}
	}
	return m
}

func (m *model) calculate() {
	f := m.current()
	if f == nil {
		return
	}
	if msg, ok := f.Calculate(m.format); !ok {
		m.dialog = &dialog{title: form.DialogTitle, text: msg}
	}
}

func (m model) current() *form.Form {
	if m.tab < len(m.forms) {
		return m.forms[m.tab]
	}
	return nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString("\n  " + viz.Title.Render("ENERGY CALCULATOR") + viz.Subtle.Render("  SI units") + "\n\n  ")
	b.WriteString(m.viewTabs() + "\n  ")
	b.WriteString(viz.Separator(min(m.width-4, 60)) + "\n\n")

	var body string
	switch {
	case m.dialog != nil:
		body = m.viewDialog()
	case m.current() == nil:
		body = viz.Panel.Render(m.info)
	default:
		body = m.viewForm()
	}
	for _, line := range strings.Split(body, "\n") {
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("\n  " + m.viewHints() + "\n")
	return b.String()
}

func (m model) viewTabs() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if i == m.tab {
			tabs[i] = viz.TabActive.Render(name)
		} else {
			tabs[i] = viz.TabInactive.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m model) viewForm() string {
	f := m.current()
	var b strings.Builder
	b.WriteString(viz.Title.Render(f.Title) + "\n")
	b.WriteString(viz.Formula.Render(f.Formula) + "\n\n")

	for i, fl := range f.Fields {
		label := fmt.Sprintf("%-16s", fmt.Sprintf("%s (%s):", fl.Label, fl.Unit))
		val := fl.Text
		if m.editing && i == m.cursor {
			val = m.edit.String() + "_"
		}
		if i == m.cursor {
			b.WriteString(viz.Cursor.Render("▸ ") + viz.FieldLabelFocused.Render(label) + " " + viz.FieldValue.Render(val))
		} else {
			b.WriteString("  " + viz.FieldLabel.Render(label) + " " + viz.Subtle.Render(val))
		}
		b.WriteString("\n")
	}

	if f.GravityField() >= 0 {
		presets := make([]string, 0, len(config.Presets))
		for _, p := range config.Presets {
			if p.Key != "" {
				presets = append(presets, fmt.Sprintf("%s %s", viz.Key.Render(p.Key), viz.KeyHint.Render(p.Label)))
			}
		}
		b.WriteString("\n" + viz.Subtle.Render("gravity presets: ") + strings.Join(presets, "  ") + "\n")
	}

	panel := viz.Panel.Render(b.String())
	if f.Result == "" {
		return panel
	}
	return panel + "\n" + viz.Result.Render(f.Result)
}

func (m model) viewDialog() string {
	content := viz.DialogTitle.Render(m.dialog.title) + "\n\n" + m.dialog.text + "\n\n" + viz.KeyHint.Render("press any key")
	return viz.Dialog.Render(content)
}

func (m model) viewHints() string {
	switch {
	case m.dialog != nil:
		return viz.Hints("any key", "dismiss")
	case m.editing:
		return viz.Hints("enter", "save", "esc", "cancel", "ctrl+u", "clear")
	case m.current() == nil:
		return viz.Hints("tab", "next", "q", "quit")
	}
	return viz.Hints("tab", "next", "j/k", "select", "enter", "edit", "c", "calculate", "q", "quit")
}

func Run(cfg *config.Config) error {
	_, err := tea.NewProgram(NewModel(cfg), tea.WithAltScreen()).Run()
	return err
}
