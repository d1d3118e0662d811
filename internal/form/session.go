package form

import (
	"github.com/san-kum/energycalc/internal/config"
	"github.com/san-kum/energycalc/internal/report"
)

// TabNames lists the pages of a session; the last one is Info.
var TabNames = []string{"Kinetic Energy", "Potential Energy", "Total Energy", "Info"}

// Session is the navigation state of a keyboard-driven form screen: the
// selected page and field, an open edit and an open dialog. Front ends map
// their key events onto its methods and draw from its fields.
type Session struct {
	Forms   []*Form
	Tab     int
	Cursor  int
	Editing bool
	Edit    Editor
	Dialog  string // non-empty while the error dialog is open

	Format report.Formatter
}

func NewSession(cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Session{
		Forms:  New(cfg),
		Format: report.New(cfg.Precision),
	}
}

// Current is the form on the selected page, nil on the Info page.
func (s *Session) Current() *Form {
	if s.Tab < len(s.Forms) {
		return s.Forms[s.Tab]
	}
	return nil
}

// Blocked reports whether key input other than dismissal is ignored.
func (s *Session) Blocked() bool { return s.Dialog != "" }

func (s *Session) NextTab() { s.switchTab(1) }

func (s *Session) PrevTab() { s.switchTab(len(TabNames) - 1) }

func (s *Session) switchTab(step int) {
	if s.Blocked() || s.Editing {
		return
	}
	s.Tab = (s.Tab + step) % len(TabNames)
	s.Cursor = 0
}

// Move shifts the field cursor by delta, clamped to the form.
func (s *Session) Move(delta int) {
	f := s.Current()
	if f == nil || s.Blocked() || s.Editing {
		return
	}
	s.Cursor = min(max(s.Cursor+delta, 0), len(f.Fields)-1)
}

func (s *Session) BeginEdit() {
	f := s.Current()
	if f == nil || s.Blocked() || s.Editing {
		return
	}
	s.Editing = true
	s.Edit.Start(f.Fields[s.Cursor].Text)
}

func (s *Session) CommitEdit() {
	if !s.Editing {
		return
	}
	s.Current().Fields[s.Cursor].Text = s.Edit.Commit()
	s.Editing = false
}

func (s *Session) CancelEdit() {
	s.Edit.Commit()
	s.Editing = false
}

// Calculate runs the current form and opens the dialog on failure.
func (s *Session) Calculate() bool {
	f := s.Current()
	if f == nil || s.Blocked() || s.Editing {
		return false
	}
	msg, ok := f.Calculate(s.Format)
	if !ok {
		s.Dialog = msg
	}
	return ok
}

// Preset applies the gravity preset bound to key on the current form.
func (s *Session) Preset(key string) bool {
	f := s.Current()
	if f == nil || s.Blocked() || s.Editing {
		return false
	}
	return f.ApplyPreset(key)
}

func (s *Session) Dismiss() { s.Dialog = "" }
