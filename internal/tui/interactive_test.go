package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/energycalc/internal/config"
	"github.com/san-kum/energycalc/internal/form"
)

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func TestDefaults(t *testing.T) {
	m := NewModel(nil)

	want := [][]string{
		{"5", "10"},
		{"10", "20", "9.81"},
		{"2", "8", "10", "9.81"},
	}
	for i, vals := range want {
		for j, v := range vals {
			if got := m.forms[i].Fields[j].Text; got != v {
				t.Errorf("form %d field %d: expected %s, got %s", i, j, v, got)
			}
		}
	}
}

func TestCalculateKinetic(t *testing.T) {
	m := send(t, NewModel(nil), keys("c"))

	res := m.forms[tabKinetic].Result
	if !strings.Contains(res, "Kinetic Energy = 250.00 J") {
		t.Errorf("unexpected result %q", res)
	}
	if !strings.Contains(res, "= 0.250 kJ") {
		t.Errorf("expected kJ line in %q", res)
	}
	if m.dialog != nil {
		t.Errorf("unexpected dialog %+v", m.dialog)
	}
	if !strings.Contains(m.View(), "250.00 J") {
		t.Error("result should be rendered")
	}
}

func TestCalculateTotal(t *testing.T) {
	m := send(t, NewModel(nil), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, keys("c"))

	if m.tab != tabTotal {
		t.Fatalf("expected total tab, got %d", m.tab)
	}
	res := m.forms[tabTotal].Result
	for _, want := range []string{
		"Kinetic Energy   = 64.00 J (0.064 kJ)",
		"Potential Energy = 196.20 J (0.196 kJ)",
		"Total Mechanical Energy = 260.20 J (0.260 kJ)",
	} {
		if !strings.Contains(res, want) {
			t.Errorf("expected %q in %q", want, res)
		}
	}
}

func TestEditField(t *testing.T) {
	m := NewModel(nil)
	// velocity: clear, type 3, commit; mass: clear, type 2, commit
	m = send(t, m,
		keys("j"), tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyCtrlU}, keys("3"), tea.KeyMsg{Type: tea.KeyEnter},
		keys("k"), tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyBackspace}, keys("2"), tea.KeyMsg{Type: tea.KeyEnter},
		keys("c"),
	)

	f := m.forms[tabKinetic]
	if f.Fields[0].Text != "2" || f.Fields[1].Text != "3" {
		t.Fatalf("unexpected fields %q %q", f.Fields[0].Text, f.Fields[1].Text)
	}
	if !strings.Contains(f.Result, "Kinetic Energy = 9.00 J") {
		t.Errorf("unexpected result %q", f.Result)
	}
}

func TestEditCancel(t *testing.T) {
	m := send(t, NewModel(nil),
		tea.KeyMsg{Type: tea.KeyEnter}, keys("99"), tea.KeyMsg{Type: tea.KeyEsc},
	)
	if m.editing {
		t.Error("expected edit mode to end")
	}
	if got := m.forms[tabKinetic].Fields[0].Text; got != "5" {
		t.Errorf("expected mass unchanged, got %s", got)
	}
}

func TestEditIgnoresLetters(t *testing.T) {
	m := send(t, NewModel(nil),
		tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyCtrlU}, keys("1x2"), tea.KeyMsg{Type: tea.KeyEnter},
	)
	if got := m.forms[tabKinetic].Fields[0].Text; got != "12" {
		t.Errorf("expected 12, got %s", got)
	}
}

func TestMalformedInputDialog(t *testing.T) {
	m := send(t, NewModel(nil),
		tea.KeyMsg{Type: tea.KeyEnter}, keys(".."), tea.KeyMsg{Type: tea.KeyEnter},
		keys("c"),
	)

	if m.dialog == nil {
		t.Fatal("expected input error dialog")
	}
	if m.dialog.title != "Input Error" || m.dialog.text != "Please enter valid numbers for mass and velocity." {
		t.Errorf("unexpected dialog %+v", m.dialog)
	}
	if !strings.Contains(m.View(), "Please enter valid numbers") {
		t.Error("dialog should be rendered")
	}

	// Dialog swallows the next key.
	m = send(t, m, keys("q"))
	if m.dialog != nil {
		t.Error("expected dialog dismissed")
	}
}

func TestValidationErrorDialog(t *testing.T) {
	m := send(t, NewModel(nil),
		tea.KeyMsg{Type: tea.KeyTab},
		keys("j"), tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyCtrlU}, keys("-20"), tea.KeyMsg{Type: tea.KeyEnter},
		keys("c"),
	)

	if m.dialog == nil {
		t.Fatal("expected dialog")
	}
	if m.dialog.title != "Input Error" || m.dialog.text != "Height cannot be negative" {
		t.Errorf("unexpected dialog %+v", m.dialog)
	}
	if m.forms[tabPotential].Result != "" {
		t.Error("no result expected after validation failure")
	}
}

func TestGravityPresets(t *testing.T) {
	m := send(t, NewModel(nil), tea.KeyMsg{Type: tea.KeyTab})

	tests := []struct {
		key  string
		want string
	}{
		{"m", "1.62"},
		{"r", "3.71"},
		{"e", "9.81"},
	}
	for _, tt := range tests {
		m = send(t, m, keys(tt.key))
		if got := m.forms[tabPotential].Fields[2].Text; got != tt.want {
			t.Errorf("preset %s: expected %s, got %s", tt.key, tt.want, got)
		}
	}

	m = send(t, m, keys("m"), keys("c"))
	if !strings.Contains(m.forms[tabPotential].Result, "Potential Energy = 324.00 J") {
		t.Errorf("unexpected moon result %q", m.forms[tabPotential].Result)
	}
}

func TestPresetIgnoredWithoutGravity(t *testing.T) {
	m := send(t, NewModel(nil), keys("m"))
	f := m.forms[tabKinetic]
	if f.Fields[0].Text != "5" || f.Fields[1].Text != "10" {
		t.Error("kinetic form has no gravity field and must not change")
	}
}

func TestTabsWrap(t *testing.T) {
	m := send(t, NewModel(nil), tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.tab != tabInfo {
		t.Fatalf("expected info tab, got %d", m.tab)
	}
	view := m.View()
	if !strings.Contains(view, "GRAVITY CONSTANTS") || !strings.Contains(view, "24.79") {
		t.Errorf("info tab missing presets:\n%s", view)
	}

	// Calculate and edit are no-ops on the info tab.
	m = send(t, m, keys("c"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.dialog != nil || m.editing {
		t.Error("info tab should ignore form keys")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.tab != tabKinetic {
		t.Errorf("expected wrap to kinetic, got %d", m.tab)
	}
}

func TestQuit(t *testing.T) {
	_, cmd := NewModel(nil).Update(keys("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestConfiguredPrecision(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Precision = 0
	cfg.Forms.Kinetic.Mass = 2
	cfg.Forms.Kinetic.Velocity = 3

	m := send(t, NewModel(cfg), keys("c"))
	if !strings.Contains(m.forms[tabKinetic].Result, "Kinetic Energy = 9 J") {
		t.Errorf("unexpected result %q", m.forms[tabKinetic].Result)
	}
}

func TestInfoText(t *testing.T) {
	info := form.Info(NewModel(nil).format)
	for _, want := range []string{
		"KE = ½ × 5 × 10² = 250.00 J",
		"PE = 10 × 9.81 × 20 = 1962.00 J",
		"Total = 260.20 J",
		"Moon:",
		"Final:   PE = 0.00 J, KE = 196.20 J",
	} {
		if !strings.Contains(info, want) {
			t.Errorf("info missing %q", want)
		}
	}
}
