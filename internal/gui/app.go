package gui

import (
	"fmt"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/energycalc/internal/config"
	"github.com/san-kum/energycalc/internal/form"
)

const (
	screenW  = 960
	screenH  = 640
	fontPath = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
)

// Monochrome palette with one accent for results and one for errors
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColPanel   = rl.NewColor(22, 22, 26, 255)
	ColAccent  = rl.NewColor(0, 204, 204, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColResult  = rl.NewColor(0, 255, 136, 255)
	ColError   = rl.NewColor(255, 68, 68, 255)
)

type App struct {
	Session *form.Session
	Font    rl.Font
	info    []string
	quit    bool
}

func initWindow() {
	rl.InitWindow(screenW, screenH, "Energy Calculator - SI Units")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// loadFont uses Liberation Mono when installed and the raylib font otherwise.
func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(cfg *config.Config) *App {
	s := form.NewSession(cfg)
	return &App{
		Session: s,
		Font:    loadFont(),
		info:    strings.Split(form.Info(s.Format), "\n"),
	}
}

// Run opens the window and blocks until it is closed or q is pressed.
func Run(cfg *config.Config) {
	initWindow()
	defer rl.CloseWindow()
	app := NewApp(cfg)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !a.quit && !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	s := a.Session

	if s.Blocked() {
		if rl.GetKeyPressed() != 0 {
			s.Dismiss()
		}
		drainChars()
		return
	}

	if s.Editing {
		switch {
		case rl.IsKeyPressed(rl.KeyEnter):
			s.CommitEdit()
		case rl.IsKeyPressed(rl.KeyEscape):
			s.CancelEdit()
		case rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace):
			s.Edit.Backspace()
		case rl.IsKeyPressed(rl.KeyU) && ctrlDown():
			s.Edit.Clear()
		}
		for r := rl.GetCharPressed(); r != 0; r = rl.GetCharPressed() {
			s.Edit.Insert(rune(r))
		}
		return
	}
	drainChars()

	shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		a.quit = true
	case rl.IsKeyPressed(rl.KeyTab) && shift, rl.IsKeyPressed(rl.KeyLeft), rl.IsKeyPressed(rl.KeyH):
		s.PrevTab()
	case rl.IsKeyPressed(rl.KeyTab), rl.IsKeyPressed(rl.KeyRight), rl.IsKeyPressed(rl.KeyL):
		s.NextTab()
	case rl.IsKeyPressed(rl.KeyDown), rl.IsKeyPressed(rl.KeyJ):
		s.Move(1)
	case rl.IsKeyPressed(rl.KeyUp), rl.IsKeyPressed(rl.KeyK):
		s.Move(-1)
	case rl.IsKeyPressed(rl.KeyEnter), rl.IsKeyPressed(rl.KeySpace):
		s.BeginEdit()
	case rl.IsKeyPressed(rl.KeyC):
		s.Calculate()
	}

	for _, p := range config.Presets {
		if k, ok := presetKeys[p.Key]; ok && rl.IsKeyPressed(k) {
			s.Preset(p.Key)
		}
	}
}

var presetKeys = map[string]int32{
	"e": rl.KeyE,
	"m": rl.KeyM,
	"r": rl.KeyR,
}

func ctrlDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
}

// drainChars empties the char queue so keys typed outside edit mode do not
// show up in the next edit.
func drainChars() {
	for rl.GetCharPressed() != 0 {
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawText("energycalc", 40, 30, 32, ColSelect)
	a.drawText("SI units", 250, 42, 16, ColTextDim)
	a.drawTabs()

	if f := a.Session.Current(); f != nil {
		a.drawForm(f)
	} else {
		a.drawInfo()
	}
	if a.Session.Blocked() {
		a.drawDialog()
	}
	a.drawHints()

	rl.EndDrawing()
}

func (a *App) drawTabs() {
	x := 40
	for i, name := range form.TabNames {
		col := ColText
		if i == a.Session.Tab {
			col = ColSelect
			rl.DrawRectangle(int32(x-6), 108, int32(len(name)*10+12), 2, ColAccent)
		}
		a.drawText(name, x, 84, 18, col)
		x += len(name)*10 + 36
	}
}

func (a *App) drawForm(f *form.Form) {
	s := a.Session
	a.drawText(f.Title, 40, 130, 22, ColAccent)
	a.drawText(f.Formula, 40, 160, 16, ColText)

	y := 200
	for i, fl := range f.Fields {
		label := fmt.Sprintf("%s (%s):", fl.Label, fl.Unit)
		val := fl.Text
		if s.Editing && i == s.Cursor {
			val = s.Edit.String() + "_"
		}
		if i == s.Cursor {
			a.drawText(fmt.Sprintf("> %-16s %s", label, val), 40, y, 20, ColSelect)
		} else {
			a.drawText(fmt.Sprintf("  %-16s %s", label, val), 40, y, 20, ColText)
		}
		y += 30
	}

	if f.GravityField() >= 0 {
		var keys []string
		for _, p := range config.Presets {
			if p.Key != "" {
				keys = append(keys, fmt.Sprintf("%s: %s", strings.ToUpper(p.Key), p.Label))
			}
		}
		a.drawText("PRESETS  "+strings.Join(keys, "  "), 40, y+8, 14, ColTextDim)
		y += 30
	}

	if f.Result == "" {
		return
	}
	y += 20
	rl.DrawRectangle(30, int32(y-10), screenW-60, int32(strings.Count(f.Result, "\n")+1)*24+20, ColPanel)
	for _, line := range strings.Split(f.Result, "\n") {
		a.drawText(line, 40, y, 18, ColResult)
		y += 24
	}
}

func (a *App) drawInfo() {
	y := 130
	for _, line := range a.info {
		if y > screenH-60 {
			break
		}
		a.drawText(line, 40, y, 14, ColText)
		y += 17
	}
}

func (a *App) drawDialog() {
	rl.DrawRectangle(0, 0, screenW, screenH, rl.NewColor(0, 0, 0, 170))
	w, h := int32(560), int32(160)
	x, y := (screenW-w)/2, (screenH-h)/2
	rl.DrawRectangle(x, y, w, h, ColPanel)
	rl.DrawRectangleLines(x, y, w, h, ColError)
	a.drawText(form.DialogTitle, int(x)+24, int(y)+20, 22, ColError)
	a.drawText(a.Session.Dialog, int(x)+24, int(y)+70, 16, ColSelect)
	a.drawText("press any key", int(x)+24, int(y)+120, 14, ColTextDim)
}

func (a *App) drawHints() {
	hint := "TAB: PAGE  J/K: FIELD  ENTER: EDIT  C: CALCULATE  Q: QUIT"
	if a.Session.Editing {
		hint = "ENTER: SAVE  ESC: CANCEL  CTRL+U: CLEAR"
	}
	a.drawText(hint, 40, screenH-30, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
